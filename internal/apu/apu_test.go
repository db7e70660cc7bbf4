package apu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func newPoweredAPU() *APU {
	a := NewAPU(nil)
	a.Write(types.NR52, 0x80)
	return a
}

func TestAPU_ReadMasks(t *testing.T) {
	a := newPoweredAPU()
	// write zero everywhere, so only the unreadable bits remain
	for addr := types.NR10; addr < types.NR52; addr++ {
		a.Write(addr, 0x00)
	}

	masks := map[uint16]uint8{
		types.NR10: 0x80, types.NR11: 0x3F, types.NR12: 0x00, types.NR13: 0xFF, types.NR14: 0xBF,
		types.NR21: 0x3F, types.NR22: 0x00, types.NR23: 0xFF, types.NR24: 0xBF,
		types.NR30: 0x7F, types.NR31: 0xFF, types.NR32: 0x9F, types.NR33: 0xFF, types.NR34: 0xBF,
		types.NR41: 0xFF, types.NR42: 0x00, types.NR43: 0x00, types.NR44: 0xBF,
		types.NR50: 0x00, types.NR51: 0x00, types.NR52: 0xF0,
	}
	for addr, want := range masks {
		if got := a.Read(addr); got != want {
			t.Errorf("0x%04X: expected 0x%02X, got 0x%02X", addr, want, got)
		}
	}

	for _, addr := range []uint16{0xFF15, 0xFF1F, 0xFF27, 0xFF2F} {
		a.Write(addr, 0x00)
		if got := a.Read(addr); got != 0xFF {
			t.Errorf("0x%04X: expected unmapped read 0xFF, got 0x%02X", addr, got)
		}
	}
}

func TestAPU_RoundTrip(t *testing.T) {
	a := newPoweredAPU()
	tests := []struct {
		addr  uint16
		write uint8
		read  uint8
	}{
		{types.NR10, 0x7F, 0xFF},
		{types.NR11, 0xC5, 0xFF},
		{types.NR12, 0xF3, 0xF3},
		{types.NR22, 0x4A, 0x4A},
		{types.NR32, 0x40, 0xDF},
		{types.NR43, 0xA5, 0xA5},
		{types.NR50, 0x77, 0x77},
		{types.NR51, 0xF3, 0xF3},
		{types.NR14, 0x40, 0xFF},
	}
	for _, tt := range tests {
		a.Write(tt.addr, tt.write)
		if got := a.Read(tt.addr); got != tt.read {
			t.Errorf("0x%04X: expected 0x%02X, got 0x%02X", tt.addr, tt.read, got)
		}
	}
}

func TestAPU_Trigger(t *testing.T) {
	t.Run("dac on", func(t *testing.T) {
		a := newPoweredAPU()
		a.Write(types.NR12, 0xF0)
		a.Write(types.NR13, 0x34)
		a.Write(types.NR14, 0x87)
		if a.Read(types.NR52)&types.Bit0 == 0 {
			t.Errorf("expected channel 1 to be enabled")
		}
		if a.chan1.frequency != 0x734 {
			t.Errorf("expected frequency 0x734, got 0x%03X", a.chan1.frequency)
		}
		if a.chan1.currentVolume != 0xF {
			t.Errorf("expected volume 0xF, got 0x%X", a.chan1.currentVolume)
		}

		// turning the DAC off disables the channel
		a.Write(types.NR12, 0x00)
		if a.Read(types.NR52)&types.Bit0 != 0 {
			t.Errorf("expected channel 1 to be disabled")
		}
	})
	t.Run("dac off", func(t *testing.T) {
		a := newPoweredAPU()
		a.Write(types.NR22, 0x00)
		a.Write(types.NR24, 0x80)
		if a.Read(types.NR52)&types.Bit1 != 0 {
			t.Errorf("expected channel 2 to stay disabled")
		}
	})
	t.Run("wave", func(t *testing.T) {
		a := newPoweredAPU()
		a.Write(types.NR30, 0x80)
		a.Write(types.NR34, 0x80)
		if a.Read(types.NR52) != 0xF4 {
			t.Errorf("expected NR52 0xF4, got 0x%02X", a.Read(types.NR52))
		}
		if a.chan3.lengthCounter != 0x100 {
			t.Errorf("expected length 0x100, got 0x%X", a.chan3.lengthCounter)
		}
	})
	t.Run("noise", func(t *testing.T) {
		a := newPoweredAPU()
		a.Write(types.NR42, 0x10)
		a.Write(types.NR44, 0x80)
		if a.Read(types.NR52) != 0xF8 {
			t.Errorf("expected NR52 0xF8, got 0x%02X", a.Read(types.NR52))
		}
		if a.chan4.lfsr != 0x7FFF {
			t.Errorf("expected lfsr to be reset, got 0x%04X", a.chan4.lfsr)
		}
	})
	t.Run("status is read only", func(t *testing.T) {
		a := newPoweredAPU()
		a.Write(types.NR52, 0x8F)
		if a.Read(types.NR52) != 0xF0 {
			t.Errorf("expected NR52 0xF0, got 0x%02X", a.Read(types.NR52))
		}
	})
}

func TestAPU_Power(t *testing.T) {
	a := newPoweredAPU()
	a.Write(types.NR11, 0x3F)
	a.Write(types.NR12, 0xF0)
	a.Write(types.NR14, 0x80)
	a.Write(types.NR50, 0x77)
	a.Write(types.NR51, 0xFF)

	a.Write(types.NR52, 0x00)
	if a.Enabled() {
		t.Fatal("expected APU to be off")
	}
	if a.Read(types.NR52) != 0x70 {
		t.Errorf("expected NR52 0x70, got 0x%02X", a.Read(types.NR52))
	}
	if a.Read(types.NR12) != 0x00 || a.Read(types.NR50) != 0x00 || a.Read(types.NR51) != 0x00 {
		t.Errorf("expected registers to be cleared")
	}
	if a.chan1.lengthCounter != 1 {
		t.Errorf("expected length counter to survive, got %d", a.chan1.lengthCounter)
	}

	// writes are ignored while off
	a.Write(types.NR50, 0x77)
	if a.Read(types.NR50) != 0x00 {
		t.Errorf("expected write to NR50 to be ignored, got 0x%02X", a.Read(types.NR50))
	}
}

func TestAPU_WaveRAM(t *testing.T) {
	a := NewAPU(nil)
	for i := uint16(0); i < 16; i++ {
		a.Write(types.WaveRAMStart+i, uint8(i<<4|(15-i)))
	}
	for i := uint16(0); i < 16; i++ {
		if got := a.Read(types.WaveRAMStart + i); got != uint8(i<<4|(15-i)) {
			t.Errorf("0x%04X: expected 0x%02X, got 0x%02X", types.WaveRAMStart+i, uint8(i<<4|(15-i)), got)
		}
	}
	if a.chan3.sample(2) != 1 || a.chan3.sample(3) != 14 {
		t.Errorf("expected samples 1 and 14, got %d and %d", a.chan3.sample(2), a.chan3.sample(3))
	}
}

func TestAPU_Region(t *testing.T) {
	r := NewAPU(nil).Region()
	if r.Start != 0xFF10 || r.Last() != 0xFF3F {
		t.Errorf("expected 0xFF10-0xFF3F, got %s", r.String())
	}
	if r.ReadOnly() {
		t.Errorf("expected region to be writable")
	}
}
