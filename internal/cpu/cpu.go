package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
)

// Bus is the address space the CPU executes against. Every access may
// fail, in which case the CPU abandons the instruction.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	Read16(address uint16) (uint16, error)
	Write16(address uint16, value uint16) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the stack pointer and the
	// program counter.
	Registers

	// IME is the interrupt master enable. Nothing services interrupts
	// yet, DI, EI and RETI only toggle it.
	IME bool

	Debug bool
	log   log.Logger

	mode mode
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Debug logs every executed instruction.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// NewCPU returns a CPU with the power-on register file.
func NewCPU(opts ...Opt) *CPU {
	c := &CPU{
		Registers: NewRegisters(),
		log:       log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current mode of the CPU.
func (c *CPU) Mode() mode {
	return c.mode
}

// Halted returns true if the CPU executed HALT.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped returns true if the CPU executed STOP.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Tick fetches, decodes and executes a single instruction from bus.
//
// A tick is atomic: if the fetch or the execution faults, the register
// file is left exactly as it was before the tick and the fault is
// returned. A halted or stopped CPU does nothing, as nothing can wake
// it yet.
func (c *CPU) Tick(bus Bus) error {
	_, err := c.Step(bus)
	return err
}

// Step is Tick, but also returns the executed instruction. It returns
// a nil instruction when the CPU is halted or stopped, or when the
// fetch faulted.
func (c *CPU) Step(bus Bus) (Instruction, error) {
	if c.mode != ModeNormal {
		return nil, nil
	}

	saved := c.Registers
	src := &busCursor{bus: bus, pc: c.PC}
	instr := Decode(src)
	if src.err != nil {
		return nil, src.err
	}

	if c.Debug {
		c.log.Debugf("%04X %-16s %s", c.PC, instr, &c.Registers)
	}

	start := c.PC
	c.PC = src.pc
	if err := c.execute(bus, start, instr); err != nil {
		c.Registers = saved
		return instr, err
	}
	return instr, nil
}
