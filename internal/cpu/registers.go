package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value. Both
// halves receive all 8 of their bits.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Reg8 designates one of the 8-bit registers. The values match the
// 3-bit register field used by the instruction encoding, where 6 is
// taken by (HL) and has no register.
type Reg8 uint8

const (
	B Reg8 = 0
	C Reg8 = 1
	D Reg8 = 2
	E Reg8 = 3
	H Reg8 = 4
	L Reg8 = 5
	A Reg8 = 7
)

func (r Reg8) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// Reg16 designates one of the 16-bit registers: the four register
// pairs, the stack pointer and the program counter.
type Reg16 uint8

const (
	BC Reg16 = iota
	DE
	HL
	SP
	AF
	PC
)

func (r Reg16) String() string {
	switch r {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case AF:
		return "AF"
	case PC:
		return "PC"
	}
	return fmt.Sprintf("Reg16(%d)", uint8(r))
}

// Registers holds all CPU-visible state.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// NewRegisters returns the power-on register file. Every register is
// zeroed, except for the program counter which points at the start of
// working RAM.
func NewRegisters() Registers {
	return Registers{
		PC: types.WRAMStart,
	}
}

// register returns a pointer to the 8-bit register.
func (r *Registers) register(reg Reg8) *Register {
	switch reg {
	case A:
		return &r.A
	case B:
		return &r.B
	case C:
		return &r.C
	case D:
		return &r.D
	case E:
		return &r.E
	case H:
		return &r.H
	case L:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register index: %d", reg))
}

// pair returns a view of the register pair.
func (r *Registers) pair(reg Reg16) RegisterPair {
	switch reg {
	case AF:
		return RegisterPair{&r.A, &r.F}
	case BC:
		return RegisterPair{&r.B, &r.C}
	case DE:
		return RegisterPair{&r.D, &r.E}
	case HL:
		return RegisterPair{&r.H, &r.L}
	}
	panic(fmt.Sprintf("invalid register pair: %s", reg))
}

// Read8 returns the value of the 8-bit register.
func (r *Registers) Read8(reg Reg8) uint8 {
	return *r.register(reg)
}

// Write8 sets the value of the 8-bit register.
func (r *Registers) Write8(reg Reg8, value uint8) {
	*r.register(reg) = value
}

// Read16 returns the value of the 16-bit register, with the high
// register of a pair in the most significant byte.
func (r *Registers) Read16(reg Reg16) uint16 {
	switch reg {
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	return r.pair(reg).Uint16()
}

// Write16 sets the value of the 16-bit register. The low nibble of
// F does not exist on hardware, so it always reads back as zero.
func (r *Registers) Write16(reg Reg16, value uint16) {
	switch reg {
	case SP:
		r.SP = value
	case PC:
		r.PC = value
	case AF:
		r.pair(reg).SetUint16(value & 0xFFF0)
	default:
		r.pair(reg).SetUint16(value)
	}
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC)
}
