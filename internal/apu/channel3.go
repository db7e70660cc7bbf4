package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// channel3 is the wave channel, playing the 32 4-bit samples held in
// wave RAM.
type channel3 struct {
	*channel

	// NR32
	volumeCode uint8

	waveRAM [16]byte
}

func newChannel3(a *APU) *channel3 {
	c := &channel3{channel: newChannel(types.Bit2)}

	a.registerHardware(types.NR30, func(v uint8) {
		c.dacEnabled = v&types.Bit7 != 0
		if !c.dacEnabled {
			c.enabled = false
		}
	}, func() uint8 {
		if c.dacEnabled {
			return 0xFF
		}
		return 0x7F
	})
	a.registerHardware(types.NR31, func(v uint8) {
		c.lengthCounter = 0x100 - uint(v)
	}, nil)
	a.registerHardware(types.NR32, func(v uint8) {
		c.volumeCode = bits.Field(v, 5, 2)
	}, func() uint8 {
		return bits.SetField(0xFF, 5, 2, c.volumeCode)
	})
	a.registerHardware(types.NR33, c.setNRx3, nil)
	a.registerHardware(types.NR34, func(v uint8) {
		c.setNRx4(v, 0x100)
	}, c.getNRx4)

	// wave RAM stays accessible while the APU is powered off
	for i := types.WaveRAMStart; i < types.WaveRAMEnd; i++ {
		offset := i - types.WaveRAMStart
		a.registers.RegisterHardware(i, func(v uint8) {
			c.waveRAM[offset] = v
		}, func() uint8 {
			return c.waveRAM[offset]
		})
	}

	return c
}

// sample returns the 4-bit sample at the given position (0-31) in
// wave RAM. Even positions are the high nibble of each byte.
func (c *channel3) sample(position uint8) uint8 {
	b := c.waveRAM[position/2&0xF]
	if position%2 == 0 {
		return b >> 4
	}
	return b & types.LowNibble
}

func (c *channel3) reset() {
	c.channel.reset()
	c.volumeCode = 0
}
