package apu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// channel holds the state shared by all four sound channels.
type channel struct {
	enabled    bool
	dacEnabled bool

	// NRx1
	lengthCounter uint

	// NRx3/NRx4
	frequency            uint16
	lengthCounterEnabled bool

	// channelBit is the status bit of the channel in NR52.
	channelBit uint8
}

func newChannel(channelBit uint8) *channel {
	return &channel{channelBit: channelBit}
}

func (c *channel) isEnabled() bool {
	return c.enabled && c.dacEnabled
}

// setNRx3 sets the low 8 bits of the 11-bit frequency.
func (c *channel) setNRx3(v uint8) {
	c.frequency = c.frequency&0x700 | uint16(v)
}

// setNRx4 sets the high 3 bits of the frequency and the length enable,
// and returns true if the channel was triggered. maxLength is the
// length the counter is reloaded with when triggered at zero.
func (c *channel) setNRx4(v uint8, maxLength uint) bool {
	c.frequency = c.frequency&0x00FF | uint16(bits.Field(v, 0, 3))<<8
	c.lengthCounterEnabled = v&types.Bit6 != 0

	trigger := v&types.Bit7 != 0
	if trigger {
		c.enabled = c.dacEnabled
		if c.lengthCounter == 0 {
			c.lengthCounter = maxLength
		}
	}
	return trigger
}

// getNRx4 returns the readable part of NRx4, only the length enable.
func (c *channel) getNRx4() uint8 {
	b := uint8(0xBF)
	if c.lengthCounterEnabled {
		b |= types.Bit6
	}
	return b
}

// reset clears the channel, as powering off the APU does. The length
// counter survives a power cycle on the DMG.
func (c *channel) reset() {
	*c = channel{channelBit: c.channelBit, lengthCounter: c.lengthCounter}
}

// volumeChannel is a channel with a volume envelope (NRx2), shared by
// the two square channels and the noise channel.
type volumeChannel struct {
	*channel

	// NRx1
	duty       uint8
	lengthLoad uint8

	// NRx2
	startingVolume  uint8
	envelopeAddMode bool
	period          uint8

	currentVolume uint8
}

func newVolumeChannel(channel *channel) *volumeChannel {
	return &volumeChannel{
		channel: channel,
	}
}

func (v *volumeChannel) setDuty(b uint8) {
	v.duty = bits.Field(b, 6, 2)
}

func (v *volumeChannel) setLength(b uint8) {
	v.lengthLoad = bits.Field(b, 0, 6)
	v.lengthCounter = 0x40 - uint(v.lengthLoad)
}

// getNRx1 returns the readable part of NRx1, only the duty.
func (v *volumeChannel) getNRx1() uint8 {
	return bits.SetField(0xFF, 6, 2, v.duty)
}

func (v *volumeChannel) setNRx2(b uint8) {
	v.startingVolume = bits.Field(b, 4, 4)
	v.envelopeAddMode = b&types.Bit3 != 0
	v.period = bits.Field(b, 0, 3)
	v.dacEnabled = b&0xF8 > 0
	if !v.dacEnabled {
		v.enabled = false
	}
}

func (v *volumeChannel) getNRx2() uint8 {
	b := v.startingVolume<<4 | v.period
	if v.envelopeAddMode {
		b |= types.Bit3
	}
	return b
}

func (v *volumeChannel) initVolumeEnvelope() {
	v.currentVolume = v.startingVolume
}

func (v *volumeChannel) reset() {
	v.channel.reset()
	*v = volumeChannel{channel: v.channel}
}
