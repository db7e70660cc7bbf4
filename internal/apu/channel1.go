package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// channel1 is the square channel with a frequency sweep.
type channel1 struct {
	*volumeChannel

	// NR10
	sweepPeriod uint8
	negate      bool
	shift       uint8

	sweepEnabled bool
	shadow       uint16
}

func newChannel1(a *APU) *channel1 {
	c := &channel1{volumeChannel: newVolumeChannel(newChannel(types.Bit0))}

	a.registerHardware(types.NR10, func(v uint8) {
		c.sweepPeriod = bits.Field(v, 4, 3)
		c.negate = v&types.Bit3 != 0
		c.shift = bits.Field(v, 0, 3)
	}, func() uint8 {
		b := uint8(0x80) | c.sweepPeriod<<4 | c.shift
		if c.negate {
			b |= types.Bit3
		}
		return b
	})
	a.registerHardware(types.NR11, func(v uint8) {
		c.setDuty(v)
		c.setLength(v)
	}, c.getNRx1)
	a.registerHardware(types.NR12, c.setNRx2, c.getNRx2)
	a.registerHardware(types.NR13, c.setNRx3, nil)
	a.registerHardware(types.NR14, func(v uint8) {
		if c.setNRx4(v, 0x40) {
			c.initVolumeEnvelope()
			c.shadow = c.frequency
			c.sweepEnabled = c.sweepPeriod > 0 || c.shift > 0
		}
	}, c.getNRx4)

	return c
}

func (c *channel1) reset() {
	c.volumeChannel.reset()
	c.sweepPeriod, c.negate, c.shift = 0, false, 0
	c.sweepEnabled, c.shadow = false, 0
}
