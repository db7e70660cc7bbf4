// Package apu provides the register file of the Game Boy's audio
// processing unit. The APU comprises 4 channels: 2 square channels, a
// wave channel and a noise channel, each controlled by a set of
// registers in 0xFF10 - 0xFF3F. Only the register state is modelled;
// no samples are generated.
package apu

import (
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// APU represents the GameBoy's audio processing unit.
type APU struct {
	enabled bool

	// NR50
	vinLeft, vinRight       bool
	volumeLeft, volumeRight uint8

	// NR51
	panning uint8

	chan1 *channel1
	chan2 *channel2
	chan3 *channel3
	chan4 *channel4

	registers *types.HardwareRegisters
	log       log.Logger
}

// NewAPU returns a new, powered off APU.
func NewAPU(logger log.Logger) *APU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	a := &APU{
		registers: types.NewHardwareRegisters(types.APUStart, int(types.WaveRAMEnd-types.APUStart)),
		log:       logger,
	}

	a.chan1 = newChannel1(a)
	a.chan2 = newChannel2(a)
	a.chan3 = newChannel3(a)
	a.chan4 = newChannel4(a)

	a.registerHardware(types.NR50, func(v uint8) {
		a.vinLeft = v&types.Bit7 != 0
		a.volumeLeft = bits.Field(v, 4, 3)
		a.vinRight = v&types.Bit3 != 0
		a.volumeRight = bits.Field(v, 0, 3)
	}, func() uint8 {
		b := a.volumeLeft<<4 | a.volumeRight
		if a.vinLeft {
			b |= types.Bit7
		}
		if a.vinRight {
			b |= types.Bit3
		}
		return b
	})
	a.registerHardware(types.NR51, func(v uint8) {
		a.panning = v
	}, func() uint8 {
		return a.panning
	})
	// NR52 is writable while the APU is off, so it bypasses
	// registerHardware
	a.registers.RegisterHardware(types.NR52, func(v uint8) {
		enabled := v&types.Bit7 != 0
		if a.enabled && !enabled {
			a.powerOff()
		} else if !a.enabled && enabled {
			a.log.Debugf("apu: powered on")
		}
		a.enabled = enabled
	}, a.status)

	return a
}

// registerHardware registers a sound register whose writes are
// ignored while the APU is powered off.
func (a *APU) registerHardware(address types.HardwareAddress, write func(v uint8), read func() uint8) {
	if write != nil {
		write = a.writeEnabled(write)
	}
	a.registers.RegisterHardware(address, write, read)
}

func (a *APU) writeEnabled(write func(v uint8)) func(v uint8) {
	return func(v uint8) {
		if a.enabled {
			write(v)
		}
	}
}

// status returns NR52: the power bit, and the status of each channel
// in bits 0-3.
func (a *APU) status() uint8 {
	b := uint8(0x70)
	if a.enabled {
		b |= types.Bit7
	}
	for _, c := range []*channel{a.chan1.channel, a.chan2.channel, a.chan3.channel, a.chan4.channel} {
		if c.isEnabled() {
			b |= c.channelBit
		}
	}
	return b
}

// powerOff clears every register from NR10 to NR51.
func (a *APU) powerOff() {
	a.log.Debugf("apu: powered off")
	a.chan1.reset()
	a.chan2.reset()
	a.chan3.reset()
	a.chan4.reset()
	a.vinLeft, a.vinRight = false, false
	a.volumeLeft, a.volumeRight = 0, 0
	a.panning = 0
}

// Enabled reports whether the APU is powered on.
func (a *APU) Enabled() bool {
	return a.enabled
}

// Read returns the value of the sound register at the given address.
// Addresses without a register read as 0xFF.
func (a *APU) Read(address uint16) uint8 {
	return a.registers.Read(address)
}

// Write writes the value to the sound register at the given address.
func (a *APU) Write(address uint16, value uint8) {
	a.registers.Write(address, value)
}

// Region returns the address space region covering the sound
// registers and wave RAM.
func (a *APU) Region() mmu.Region {
	return mmu.Region{
		Name:  "apu",
		Start: types.APUStart,
		Size:  int(types.WaveRAMEnd - types.APUStart),
		Read:  a.Read,
		Write: a.Write,
	}
}
