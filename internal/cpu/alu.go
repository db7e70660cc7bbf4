package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&types.LowNibble > c.A&types.LowNibble, n > c.A)
}

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	carry := uint16(0)
	if shouldCarry {
		carry = uint16(c.carryBit())
	}
	sum := uint16(c.A) + uint16(n) + carry
	sumHalf := uint16(c.A&types.LowNibble) + uint16(n&types.LowNibble) + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub is a helper function for subtracting two bytes and setting the
// flags accordingly.
//
// Used by:
//
//	SUB n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	carry := int16(0)
	if shouldCarry {
		carry = int16(c.carryBit())
	}
	diff := int16(c.A) - int16(n) - carry
	diffHalf := int16(c.A&types.LowNibble) - int16(n&types.LowNibble) - carry

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.A = uint8(diff)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&types.LowNibble == 0xF, c.IsFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&types.LowNibble == 0, c.IsFlagSet(FlagCarry))
	return decremented
}

// addHL adds n to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.Read16(HL)
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.IsFlagSet(FlagZero), false, (hl&0xFFF)+(n&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.Write16(HL, uint16(sum))
}

// addSPSigned returns SP plus the signed offset e, with the half carry
// and carry flags taken from the unsigned addition of the low byte of
// SP and e.
//
// Used by:
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e int8) uint16 {
	result := uint16(int32(c.SP) + int32(e))
	carries := c.SP ^ uint16(e) ^ result

	c.setFlags(false, false, carries&0x10 == 0x10, carries&0x100 == 0x100)
	return result
}

// decimalAdjust adjusts the A Register so that it contains the binary
// coded decimal result of the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	if !c.IsFlagSet(FlagSubtract) {
		if c.IsFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.SetFlag(FlagCarry, true)
		}
		if c.IsFlagSet(FlagHalfCarry) || c.A&types.LowNibble > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.IsFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.IsFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}

	c.SetFlag(FlagZero, c.A == 0)
	c.SetFlag(FlagHalfCarry, false)
}

// complement flips all the bits in the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagHalfCarry, true)
}

// setCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarry() {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, true)
}

// complementCarry flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarry() {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, !c.IsFlagSet(FlagCarry))
}
