package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears the given flag.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
}

// setFlags sets all four flags at once, in Z N H C order.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	r.SetFlag(FlagZero, zero)
	r.SetFlag(FlagSubtract, subtract)
	r.SetFlag(FlagHalfCarry, halfCarry)
	r.SetFlag(FlagCarry, carry)
}

// isFlagsSet returns true if all the given flags are set.
func (r *Registers) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !r.IsFlagSet(flag) {
			return false
		}
	}
	return true
}

// carryBit returns the carry flag as 0 or 1.
func (r *Registers) carryBit() uint8 {
	return r.F >> FlagCarry & 1
}
