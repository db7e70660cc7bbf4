package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// channel4 is the noise channel, clocking a linear feedback shift
// register.
type channel4 struct {
	*volumeChannel

	// NR43
	clockShift  uint8
	widthMode   bool
	divisorCode uint8

	lfsr uint16
}

func newChannel4(a *APU) *channel4 {
	c := &channel4{volumeChannel: newVolumeChannel(newChannel(types.Bit3))}

	a.registerHardware(types.NR41, func(v uint8) {
		c.setLength(v)
	}, nil)
	a.registerHardware(types.NR42, c.setNRx2, c.getNRx2)
	a.registerHardware(types.NR43, func(v uint8) {
		c.clockShift = bits.Field(v, 4, 4)
		c.widthMode = v&types.Bit3 != 0
		c.divisorCode = bits.Field(v, 0, 3)
	}, func() uint8 {
		b := c.clockShift<<4 | c.divisorCode
		if c.widthMode {
			b |= types.Bit3
		}
		return b
	})
	a.registerHardware(types.NR44, func(v uint8) {
		if c.setNRx4(v, 0x40) {
			c.initVolumeEnvelope()
			c.lfsr = 0x7FFF
		}
	}, c.getNRx4)

	return c
}

func (c *channel4) reset() {
	c.volumeChannel.reset()
	c.clockShift, c.widthMode, c.divisorCode = 0, false, 0
}
