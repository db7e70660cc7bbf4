package apu

import "github.com/thelolagemann/gbcore/internal/types"

// channel2 is the plain square channel.
type channel2 struct {
	*volumeChannel
}

func newChannel2(a *APU) *channel2 {
	c := &channel2{volumeChannel: newVolumeChannel(newChannel(types.Bit1))}

	a.registerHardware(types.NR21, func(v uint8) {
		c.setDuty(v)
		c.setLength(v)
	}, c.getNRx1)
	a.registerHardware(types.NR22, c.setNRx2, c.getNRx2)
	a.registerHardware(types.NR23, c.setNRx3, nil)
	a.registerHardware(types.NR24, func(v uint8) {
		if c.setNRx4(v, 0x40) {
			c.initVolumeEnvelope()
		}
	}, c.getNRx4)

	return c
}
