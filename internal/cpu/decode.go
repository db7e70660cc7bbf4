package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/bits"
)

// ByteSource yields successive instruction bytes, advancing its
// cursor by one on every call.
type ByteSource interface {
	Next() uint8
}

// decoder builds an instruction from its opcode, pulling any operand
// bytes it needs from src.
type decoder func(op uint8, src ByteSource) Instruction

// pattern matches an opcode against a bit pattern.
type pattern struct {
	mask, value uint8
	decode      decoder
}

// newPattern compiles an 8 character bit pattern, most significant bit
// first, where '0' and '1' must match and 'x' matches anything.
// Underscores are ignored.
//
//	"00xxx110" matches 0x06, 0x0E, 0x16, ... 0x3E
func newPattern(bits string, decode decoder) pattern {
	p := pattern{decode: decode}
	n := 0
	for _, b := range bits {
		if b == '_' {
			continue
		}
		p.mask <<= 1
		p.value <<= 1
		switch b {
		case '0':
			p.mask |= 1
		case '1':
			p.mask |= 1
			p.value |= 1
		case 'x':
		default:
			panic(fmt.Sprintf("cpu: invalid bit %q in pattern %q", b, bits))
		}
		n++
	}
	if n != 8 {
		panic(fmt.Sprintf("cpu: pattern %q is %d bits long", bits, n))
	}
	return p
}

func (p pattern) matches(op uint8) bool {
	return op&p.mask == p.value
}

// imm16 pulls a little-endian 16-bit operand.
func imm16(src ByteSource) uint16 {
	low := src.Next()
	return bits.Uint16(src.Next(), low)
}

// fixed returns a decoder for an instruction without operand bytes.
func fixed(i Instruction) decoder {
	return func(uint8, ByteSource) Instruction { return i }
}

// primaryTable is the unprefixed opcode table. Entries are tried in
// order, so fully specified opcodes come before the patterns they
// would otherwise fall into.
var primaryTable = []pattern{
	newPattern("1100_1011", func(_ uint8, src ByteSource) Instruction { return decodeCB(src.Next()) }),

	newPattern("0000_0000", fixed(Nop{})),
	newPattern("0001_0000", func(_ uint8, src ByteSource) Instruction {
		src.Next() // STOP is followed by a padding byte
		return Stop{}
	}),
	newPattern("0111_0110", fixed(Halt{})),
	newPattern("1111_0011", fixed(DisableInterrupts{})),
	newPattern("1111_1011", fixed(EnableInterrupts{})),

	// 8-bit loads through register pairs and absolute addresses
	newPattern("0000_0010", fixed(Load8{Indirect(BC), A})),
	newPattern("0001_0010", fixed(Load8{Indirect(DE), A})),
	newPattern("0010_0010", fixed(Load8Inc{Indirect(HL), A})),
	newPattern("0011_0010", fixed(Load8Dec{Indirect(HL), A})),
	newPattern("0000_1010", fixed(Load8{A, Indirect(BC)})),
	newPattern("0001_1010", fixed(Load8{A, Indirect(DE)})),
	newPattern("0010_1010", fixed(Load8Inc{A, Indirect(HL)})),
	newPattern("0011_1010", fixed(Load8Dec{A, Indirect(HL)})),
	newPattern("1110_0000", func(_ uint8, src ByteSource) Instruction { return Load8{HighPage(src.Next()), A} }),
	newPattern("1111_0000", func(_ uint8, src ByteSource) Instruction { return Load8{A, HighPage(src.Next())} }),
	newPattern("1110_0010", fixed(Load8{HighIndirect{}, A})),
	newPattern("1111_0010", fixed(Load8{A, HighIndirect{}})),
	newPattern("1110_1010", func(_ uint8, src ByteSource) Instruction { return Load8{Absolute(imm16(src)), A} }),
	newPattern("1111_1010", func(_ uint8, src ByteSource) Instruction { return Load8{A, Absolute(imm16(src))} }),

	// 16-bit loads and stack arithmetic
	newPattern("0000_1000", func(_ uint8, src ByteSource) Instruction { return StoreSP{imm16(src)} }),
	newPattern("1111_1001", fixed(Load16{SP, HL})),
	newPattern("1111_1000", func(_ uint8, src ByteSource) Instruction { return Load16{HL, SPOffset(int8(src.Next()))} }),
	newPattern("1110_1000", func(_ uint8, src ByteSource) Instruction { return AddSP{int8(src.Next())} }),

	// accumulator and flag operations
	newPattern("0010_0111", fixed(DecimalAdjust{})),
	newPattern("0010_1111", fixed(Complement{})),
	newPattern("0011_0111", fixed(SetCarry{})),
	newPattern("0011_1111", fixed(ComplementCarry{})),
	newPattern("000x_x111", func(op uint8, _ ByteSource) Instruction { return RotateA{ShiftOp(op >> 3 & 0x3)} }),

	// control flow
	newPattern("1100_0011", func(_ uint8, src ByteSource) Instruction { return Jump{Always, imm16(src)} }),
	newPattern("1110_1001", fixed(JumpHL{})),
	newPattern("0001_1000", func(_ uint8, src ByteSource) Instruction { return JumpRelative{Always, int8(src.Next())} }),
	newPattern("1100_1101", func(_ uint8, src ByteSource) Instruction { return Call{Always, imm16(src)} }),
	newPattern("1100_1001", fixed(Return{Always})),
	newPattern("1101_1001", fixed(ReturnInterrupt{})),
	newPattern("001x_x000", func(op uint8, src ByteSource) Instruction {
		return JumpRelative{condition(op), int8(src.Next())}
	}),
	newPattern("110x_x010", func(op uint8, src ByteSource) Instruction { return Jump{condition(op), imm16(src)} }),
	newPattern("110x_x100", func(op uint8, src ByteSource) Instruction { return Call{condition(op), imm16(src)} }),
	newPattern("110x_x000", func(op uint8, _ ByteSource) Instruction { return Return{condition(op)} }),
	newPattern("11xx_x111", func(op uint8, _ ByteSource) Instruction { return Restart{op & 0x38} }),

	// register pair operations
	newPattern("00xx_0001", func(op uint8, src ByteSource) Instruction { return Load16{pairSP(op), Imm16(imm16(src))} }),
	newPattern("00xx_0011", func(op uint8, _ ByteSource) Instruction { return Increment16{pairSP(op)} }),
	newPattern("00xx_1011", func(op uint8, _ ByteSource) Instruction { return Decrement16{pairSP(op)} }),
	newPattern("00xx_1001", func(op uint8, _ ByteSource) Instruction { return AddHL{pairSP(op)} }),
	newPattern("11xx_0101", func(op uint8, _ ByteSource) Instruction { return Push{pairAF(op)} }),
	newPattern("11xx_0001", func(op uint8, _ ByteSource) Instruction { return Pop{pairAF(op)} }),

	// 8-bit register operations
	newPattern("00xx_x100", func(op uint8, _ ByteSource) Instruction { return Increment{operand(op >> 3)} }),
	newPattern("00xx_x101", func(op uint8, _ ByteSource) Instruction { return Decrement{operand(op >> 3)} }),
	newPattern("00xx_x110", func(op uint8, src ByteSource) Instruction { return Load8{operand(op >> 3), Imm8(src.Next())} }),
	newPattern("01xx_xxxx", func(op uint8, _ ByteSource) Instruction { return Load8{operand(op >> 3), operand(op)} }),
	newPattern("10xx_xxxx", func(op uint8, _ ByteSource) Instruction { return alu(op, operand(op)) }),
	newPattern("11xx_x110", func(op uint8, src ByteSource) Instruction { return alu(op, Imm8(src.Next())) }),
}

// alu returns the accumulator operation selected by bits 5-3 of op.
//
//	ADD, ADC, SUB, SBC, AND, XOR, OR, CP
func alu(op uint8, src Src8) Instruction {
	switch op >> 3 & 0x7 {
	case 0:
		return Add{src}
	case 1:
		return AddCarry{src}
	case 2:
		return Sub{src}
	case 3:
		return SubCarry{src}
	case 4:
		return And{src}
	case 5:
		return Xor{src}
	case 6:
		return Or{src}
	default:
		return Compare{src}
	}
}

// Decode pulls one instruction from src. An opcode matching no table
// entry decodes to Unknown rather than failing, the fault is raised
// when the instruction is executed.
func Decode(src ByteSource) Instruction {
	op := src.Next()
	for _, p := range primaryTable {
		if p.matches(op) {
			return p.decode(op, src)
		}
	}
	return Unknown{Bytes: []byte{op}}
}
