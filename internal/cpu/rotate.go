package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == types.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryBit()
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied to
// the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftLeftArithmetic shifts n left by 1 bit, into the carry flag. The
// least significant bit is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right by 1 bit, into the carry flag.
// The most significant bit is kept.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftRightLogical shifts n right by 1 bit, into the carry flag. The
// most significant bit is reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}

// shift applies the rotate, shift or swap op to n.
func (c *CPU) shift(op ShiftOp, n uint8) uint8 {
	switch op {
	case RLC:
		return c.rotateLeftCarry(n)
	case RRC:
		return c.rotateRightCarry(n)
	case RL:
		return c.rotateLeftThroughCarry(n)
	case RR:
		return c.rotateRightThroughCarry(n)
	case SLA:
		return c.shiftLeftArithmetic(n)
	case SRA:
		return c.shiftRightArithmetic(n)
	case SWAP:
		return c.swap(n)
	default:
		return c.shiftRightLogical(n)
	}
}

// rotateAccumulator rotates the A Register. The zero flag is always
// reset, unlike the escaped forms of the same rotate.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit rotated out.
func (c *CPU) rotateAccumulator(op ShiftOp) {
	c.A = c.shift(op, c.A)
	c.SetFlag(FlagZero, false)
}
