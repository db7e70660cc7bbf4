package cpu

import "testing"

func TestNewRegisters(t *testing.T) {
	r := NewRegisters()
	if r.PC != 0xC000 {
		t.Errorf("expected PC to be 0xC000, got 0x%04X", r.PC)
	}
	r.PC = 0
	if r != (Registers{}) {
		t.Errorf("expected all other registers to be zero, got %s", &r)
	}
}

func TestRegisters_8Bit(t *testing.T) {
	r := NewRegisters()
	for i, reg := range []Reg8{A, B, C, D, E, H, L} {
		r.Write8(reg, uint8(0x10+i))
	}
	for i, reg := range []Reg8{A, B, C, D, E, H, L} {
		if v := r.Read8(reg); v != uint8(0x10+i) {
			t.Errorf("expected %s to be 0x%02X, got 0x%02X", reg, 0x10+i, v)
		}
	}
}

func TestRegisters_16Bit(t *testing.T) {
	for _, reg := range []Reg16{BC, DE, HL, SP, PC} {
		reg := reg
		t.Run(reg.String(), func(t *testing.T) {
			r := NewRegisters()
			r.Write16(reg, 0x12AB)
			if v := r.Read16(reg); v != 0x12AB {
				t.Errorf("expected %s to be 0x12AB, got 0x%04X", reg, v)
			}
		})
	}

	t.Run("pair halves", func(t *testing.T) {
		r := NewRegisters()
		r.Write16(BC, 0x12AB)
		if r.B != 0x12 || r.C != 0xAB {
			t.Errorf("expected B=0x12 C=0xAB, got B=0x%02X C=0x%02X", r.B, r.C)
		}
		r.H, r.L = 0xD0, 0x0F
		if v := r.Read16(HL); v != 0xD00F {
			t.Errorf("expected HL to be 0xD00F, got 0x%04X", v)
		}
	})

	t.Run("AF", func(t *testing.T) {
		r := NewRegisters()
		r.Write16(AF, 0x12FF)
		if r.A != 0x12 || r.F != 0xF0 {
			t.Errorf("expected A=0x12 F=0xF0, got A=0x%02X F=0x%02X", r.A, r.F)
		}
		if v := r.Read16(AF); v != 0x12F0 {
			t.Errorf("expected AF to be 0x12F0, got 0x%04X", v)
		}
	})
}

func TestFlag(t *testing.T) {
	r := NewRegisters()
	for _, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
		r.SetFlag(flag, true)
		if !r.IsFlagSet(flag) {
			t.Errorf("expected flag %d to be set, got unset", flag)
		}
	}
	if r.F != 0xF0 {
		t.Errorf("expected F to be 0xF0, got 0x%02X", r.F)
	}
	if !r.isFlagsSet(FlagZero, FlagCarry) {
		t.Errorf("expected Z and C to be set")
	}
	r.SetFlag(FlagHalfCarry, false)
	if r.IsFlagSet(FlagHalfCarry) || r.isFlagsSet(FlagHalfCarry, FlagZero) {
		t.Errorf("expected H to be unset")
	}
	if r.carryBit() != 1 {
		t.Errorf("expected carry bit to be 1, got %d", r.carryBit())
	}
}
