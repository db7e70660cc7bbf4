package cpu

import "fmt"

// Src8 is the source of an 8-bit value.
//
//	Imm8, Reg8, Indirect, Absolute, HighPage, HighIndirect
type Src8 interface {
	fmt.Stringer
	src8()
}

// Dest8 is the destination of an 8-bit value. Every destination can
// also be read, which read-modify-write instructions rely on.
//
//	Reg8, Indirect, Absolute, HighPage, HighIndirect
type Dest8 interface {
	Src8
	dest8()
}

// Src16 is the source of a 16-bit value.
//
//	Imm16, Reg16, SPOffset
type Src16 interface {
	fmt.Stringer
	src16()
}

// Imm8 is an 8-bit immediate value.
type Imm8 uint8

// Indirect addresses memory through a register pair, e.g. (HL).
type Indirect Reg16

// Absolute addresses memory through a 16-bit immediate address.
type Absolute uint16

// HighPage addresses memory at 0xFF00 plus an 8-bit immediate.
type HighPage uint8

// HighIndirect addresses memory at 0xFF00 plus the C register.
type HighIndirect struct{}

// Imm16 is a 16-bit immediate value.
type Imm16 uint16

// SPOffset is the stack pointer plus a signed 8-bit offset.
type SPOffset int8

func (Imm8) src8() {}
func (Reg8) src8() {}
func (Indirect) src8() {}
func (Absolute) src8() {}
func (HighPage) src8() {}
func (HighIndirect) src8() {}

func (Reg8) dest8() {}
func (Indirect) dest8() {}
func (Absolute) dest8() {}
func (HighPage) dest8() {}
func (HighIndirect) dest8() {}

func (Imm16) src16() {}
func (Reg16) src16() {}
func (SPOffset) src16() {}

func (i Imm8) String() string { return fmt.Sprintf("0x%02X", uint8(i)) }
func (i Indirect) String() string { return "(" + Reg16(i).String() + ")" }
func (a Absolute) String() string { return fmt.Sprintf("(0x%04X)", uint16(a)) }
func (h HighPage) String() string { return fmt.Sprintf("(0xFF%02X)", uint8(h)) }
func (HighIndirect) String() string { return "(C)" }
func (i Imm16) String() string { return fmt.Sprintf("0x%04X", uint16(i)) }
func (o SPOffset) String() string { return "SP" + signed(int8(o)) }

// signed formats an 8-bit displacement with an explicit sign.
func signed(v int8) string {
	if v < 0 {
		return fmt.Sprintf("-0x%02X", -int(v))
	}
	return fmt.Sprintf("+0x%02X", v)
}

// operand returns the 8-bit operand selected by the 3-bit register
// field of an opcode.
//
//	000 B, 001 C, 010 D, 011 E, 100 H, 101 L, 110 (HL), 111 A
func operand(index uint8) Dest8 {
	index &= 0x7
	if index == 6 {
		return Indirect(HL)
	}
	return Reg8(index)
}

// pairSP returns the register pair selected by the 2-bit field at
// bits 5-4, where 3 selects the stack pointer.
func pairSP(op uint8) Reg16 {
	return [4]Reg16{BC, DE, HL, SP}[op>>4&0x3]
}

// pairAF returns the register pair selected by the 2-bit field at
// bits 5-4, where 3 selects AF (PUSH and POP).
func pairAF(op uint8) Reg16 {
	return [4]Reg16{BC, DE, HL, AF}[op>>4&0x3]
}
