package cpu

// decodeCB decodes the byte following the 0xCB escape. Every one of
// the 256 values is defined, split by bits 7-6:
//
//	00 ooo rrr - rotate, shift or swap o of r
//	01 bbb rrr - BIT b, r
//	10 bbb rrr - RES b, r
//	11 bbb rrr - SET b, r
func decodeCB(op uint8) Instruction {
	dst := operand(op)
	bit := op >> 3 & 0x7
	switch op >> 6 {
	case 0:
		return Shift{Op: ShiftOp(bit), Dst: dst}
	case 1:
		return BitTest{Bit: bit, Dst: dst}
	case 2:
		return BitReset{Bit: bit, Dst: dst}
	default:
		return BitSet{Bit: bit, Dst: dst}
	}
}
