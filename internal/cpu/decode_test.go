package cpu

import (
	"reflect"
	"testing"
)

// illegal are the primary opcodes with no instruction.
var illegal = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true,
	0xF4: true, 0xFC: true, 0xFD: true,
}

func decodeBytes(code ...byte) (Instruction, int) {
	src := &sliceCursor{code: code}
	return Decode(src), src.pos
}

func TestDecode(t *testing.T) {
	tests := []struct {
		code     []byte
		expected Instruction
		mnemonic string
	}{
		{[]byte{0x00}, Nop{}, "NOP"},
		{[]byte{0x01, 0x34, 0x12}, Load16{BC, Imm16(0x1234)}, "LD BC, 0x1234"},
		{[]byte{0x02}, Load8{Indirect(BC), A}, "LD (BC), A"},
		{[]byte{0x06, 0x42}, Load8{B, Imm8(0x42)}, "LD B, 0x42"},
		{[]byte{0x07}, RotateA{RLC}, "RLCA"},
		{[]byte{0x08, 0x00, 0xC0}, StoreSP{0xC000}, "LD (0xC000), SP"},
		{[]byte{0x10, 0x00}, Stop{}, "STOP"},
		{[]byte{0x18, 0xFE}, JumpRelative{Always, -2}, "JR -0x02"},
		{[]byte{0x1F}, RotateA{RR}, "RRA"},
		{[]byte{0x20, 0x05}, JumpRelative{NotZero, 5}, "JR NZ, +0x05"},
		{[]byte{0x22}, Load8Inc{Indirect(HL), A}, "LD (HL+), A"},
		{[]byte{0x27}, DecimalAdjust{}, "DAA"},
		{[]byte{0x31, 0xFE, 0xFF}, Load16{SP, Imm16(0xFFFE)}, "LD SP, 0xFFFE"},
		{[]byte{0x34}, Increment{Indirect(HL)}, "INC (HL)"},
		{[]byte{0x39}, AddHL{SP}, "ADD HL, SP"},
		{[]byte{0x3A}, Load8Dec{A, Indirect(HL)}, "LD A, (HL-)"},
		{[]byte{0x3B}, Decrement16{SP}, "DEC SP"},
		{[]byte{0x3D}, Decrement{A}, "DEC A"},
		{[]byte{0x46}, Load8{B, Indirect(HL)}, "LD B, (HL)"},
		{[]byte{0x70}, Load8{Indirect(HL), B}, "LD (HL), B"},
		{[]byte{0x76}, Halt{}, "HALT"},
		{[]byte{0x7F}, Load8{A, A}, "LD A, A"},
		{[]byte{0x86}, Add{Indirect(HL)}, "ADD A, (HL)"},
		{[]byte{0x89}, AddCarry{C}, "ADC A, C"},
		{[]byte{0x92}, Sub{D}, "SUB D"},
		{[]byte{0x9B}, SubCarry{E}, "SBC A, E"},
		{[]byte{0xA4}, And{H}, "AND H"},
		{[]byte{0xAD}, Xor{L}, "XOR L"},
		{[]byte{0xB7}, Or{A}, "OR A"},
		{[]byte{0xBE}, Compare{Indirect(HL)}, "CP (HL)"},
		{[]byte{0xC0}, Return{NotZero}, "RET NZ"},
		{[]byte{0xC1}, Pop{BC}, "POP BC"},
		{[]byte{0xC3, 0x50, 0x01}, Jump{Always, 0x0150}, "JP 0x0150"},
		{[]byte{0xC6, 0x01}, Add{Imm8(1)}, "ADD A, 0x01"},
		{[]byte{0xC9}, Return{Always}, "RET"},
		{[]byte{0xCA, 0x00, 0x02}, Jump{Zero, 0x0200}, "JP Z, 0x0200"},
		{[]byte{0xCD, 0x00, 0x40}, Call{Always, 0x4000}, "CALL 0x4000"},
		{[]byte{0xD4, 0x00, 0x40}, Call{NotCarry, 0x4000}, "CALL NC, 0x4000"},
		{[]byte{0xD9}, ReturnInterrupt{}, "RETI"},
		{[]byte{0xDF}, Restart{0x18}, "RST 0x18"},
		{[]byte{0xE0, 0x40}, Load8{HighPage(0x40), A}, "LD (0xFF40), A"},
		{[]byte{0xE2}, Load8{HighIndirect{}, A}, "LD (C), A"},
		{[]byte{0xE8, 0x80}, AddSP{-128}, "ADD SP, -0x80"},
		{[]byte{0xE9}, JumpHL{}, "JP HL"},
		{[]byte{0xEA, 0x00, 0xC0}, Load8{Absolute(0xC000), A}, "LD (0xC000), A"},
		{[]byte{0xEE, 0xFF}, Xor{Imm8(0xFF)}, "XOR 0xFF"},
		{[]byte{0xF0, 0x44}, Load8{A, HighPage(0x44)}, "LD A, (0xFF44)"},
		{[]byte{0xF1}, Pop{AF}, "POP AF"},
		{[]byte{0xF2}, Load8{A, HighIndirect{}}, "LD A, (C)"},
		{[]byte{0xF3}, DisableInterrupts{}, "DI"},
		{[]byte{0xF5}, Push{AF}, "PUSH AF"},
		{[]byte{0xF8, 0x02}, Load16{HL, SPOffset(2)}, "LD HL, SP+0x02"},
		{[]byte{0xF9}, Load16{SP, HL}, "LD SP, HL"},
		{[]byte{0xFA, 0x00, 0xC0}, Load8{A, Absolute(0xC000)}, "LD A, (0xC000)"},
		{[]byte{0xFB}, EnableInterrupts{}, "EI"},
		{[]byte{0xFF}, Restart{0x38}, "RST 0x38"},
		{[]byte{0xCB, 0x37}, Shift{SWAP, A}, "SWAP A"},
		{[]byte{0xCB, 0x7C}, BitTest{7, H}, "BIT 7, H"},
		{[]byte{0xCB, 0x86}, BitReset{0, Indirect(HL)}, "RES 0, (HL)"},
		{[]byte{0xCB, 0xFF}, BitSet{7, A}, "SET 7, A"},
		{[]byte{0xD3}, Unknown{[]byte{0xD3}}, "UNKNOWN D3"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.mnemonic, func(t *testing.T) {
			instr, n := decodeBytes(tt.code...)
			if !reflect.DeepEqual(instr, tt.expected) {
				t.Errorf("expected %#v, got %#v", tt.expected, instr)
			}
			if n != len(tt.code) {
				t.Errorf("expected %d bytes to be consumed, got %d", len(tt.code), n)
			}
			if instr.String() != tt.mnemonic {
				t.Errorf("expected mnemonic %q, got %q", tt.mnemonic, instr.String())
			}
		})
	}
}

func TestDecode_Primary(t *testing.T) {
	for op := 0; op < 0x100; op++ {
		instr, _ := decodeBytes(uint8(op), 0x00, 0x00)
		_, unknown := instr.(Unknown)
		if unknown != illegal[uint8(op)] {
			t.Errorf("opcode 0x%02X: expected unknown=%t, got %s", op, illegal[uint8(op)], instr)
		}
	}
}

func TestDecode_Escaped(t *testing.T) {
	seen := make(map[string]bool)
	for op := 0; op < 0x100; op++ {
		instr, n := decodeBytes(0xCB, uint8(op))
		if _, unknown := instr.(Unknown); unknown {
			t.Errorf("opcode CB %02X: expected an instruction, got %s", op, instr)
		}
		if n != 2 {
			t.Errorf("opcode CB %02X: expected 2 bytes to be consumed, got %d", op, n)
		}
		seen[instr.String()] = true
	}
	if len(seen) != 0x100 {
		t.Errorf("expected 256 distinct escaped instructions, got %d", len(seen))
	}
}

func TestNewPattern(t *testing.T) {
	p := newPattern("00xx_x110", nil)
	if p.mask != 0xC7 || p.value != 0x06 {
		t.Errorf("expected mask 0xC7 value 0x06, got mask 0x%02X value 0x%02X", p.mask, p.value)
	}
	for _, op := range []uint8{0x06, 0x0E, 0x36, 0x3E} {
		if !p.matches(op) {
			t.Errorf("expected pattern to match 0x%02X", op)
		}
	}
	if p.matches(0x46) {
		t.Errorf("expected pattern not to match 0x46")
	}

	for _, bad := range []string{"0000000", "000000001", "0000000z"} {
		bad := bad
		t.Run(bad, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected pattern %q to panic", bad)
				}
			}()
			newPattern(bad, nil)
		})
	}
}
