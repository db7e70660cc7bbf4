package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// address resolves a memory operand to the address it refers to. The
// second return is false for operands that are not in memory.
func (c *CPU) address(op Src8) (uint16, bool) {
	switch o := op.(type) {
	case Indirect:
		return c.Read16(Reg16(o)), true
	case Absolute:
		return uint16(o), true
	case HighPage:
		return types.HighPage + uint16(o), true
	case HighIndirect:
		return types.HighPage + uint16(c.C), true
	}
	return 0, false
}

// read8 returns the value of an 8-bit operand.
func (c *CPU) read8(bus Bus, op Src8) (uint8, error) {
	switch o := op.(type) {
	case Imm8:
		return uint8(o), nil
	case Reg8:
		return c.Read8(o), nil
	}
	if address, ok := c.address(op); ok {
		return bus.Read(address)
	}
	panic(fmt.Sprintf("cpu: unhandled 8-bit source %T", op))
}

// write8 stores value into an 8-bit operand.
func (c *CPU) write8(bus Bus, op Dest8, value uint8) error {
	if r, ok := op.(Reg8); ok {
		c.Write8(r, value)
		return nil
	}
	if address, ok := c.address(op); ok {
		return bus.Write(address, value)
	}
	panic(fmt.Sprintf("cpu: unhandled 8-bit destination %T", op))
}

// modify8 reads an 8-bit operand, and writes back the result of f.
// Used by the read-modify-write instructions, e.g. INC (HL).
func (c *CPU) modify8(bus Bus, op Dest8, f func(uint8) uint8) error {
	value, err := c.read8(bus, op)
	if err != nil {
		return err
	}
	return c.write8(bus, op, f(value))
}

// load8 copies an 8-bit value from src to dst.
//
//	LD r, r'
//	LD r, d8
//	LD r, (rr)
//	LD (rr), r
//	LD A, (nn)
//	LD (nn), A
//	LDH A, (n)
//	LDH (n), A
//	LD A, (C)
//	LD (C), A
func (c *CPU) load8(bus Bus, dst Dest8, src Src8) error {
	value, err := c.read8(bus, src)
	if err != nil {
		return err
	}
	return c.write8(bus, dst, value)
}

// load16 loads a 16-bit value into a register.
//
//	LD rr, d16
//	LD SP, HL
//	LD HL, SP+e
func (c *CPU) load16(dst Reg16, src Src16) {
	switch s := src.(type) {
	case Imm16:
		c.Write16(dst, uint16(s))
	case Reg16:
		c.Write16(dst, c.Read16(s))
	case SPOffset:
		c.Write16(dst, c.addSPSigned(int8(s)))
	default:
		panic(fmt.Sprintf("cpu: unhandled 16-bit source %T", src))
	}
}
