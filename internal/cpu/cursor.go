package cpu

import "fmt"

// busCursor reads instruction bytes from a Bus starting at pc. The
// first failed read is kept, and every byte after it reads as zero.
type busCursor struct {
	bus Bus
	pc  uint16
	err error
}

func (b *busCursor) Next() uint8 {
	if b.err != nil {
		return 0
	}
	v, err := b.bus.Read(b.pc)
	if err != nil {
		b.err = err
		return 0
	}
	b.pc++
	return v
}

// sliceCursor reads instruction bytes from a byte slice. Reading past
// the end yields zero and marks the cursor as exhausted.
type sliceCursor struct {
	code      []byte
	pos       int
	exhausted bool
}

func (s *sliceCursor) Next() uint8 {
	if s.pos >= len(s.code) {
		s.exhausted = true
		return 0
	}
	v := s.code[s.pos]
	s.pos++
	return v
}

// Disassemble decodes code as a sequence of instructions, and returns
// one listing line per instruction, prefixed by its address relative
// to origin. A trailing instruction cut short by the end of code is
// listed as unknown.
func Disassemble(code []byte, origin uint16) []string {
	var lines []string
	src := &sliceCursor{code: code}
	for src.pos < len(code) {
		start := src.pos
		instr := Decode(src)
		if src.exhausted {
			instr = Unknown{Bytes: append([]byte(nil), code[start:]...)}
		}
		lines = append(lines, formatLine(origin+uint16(start), code[start:src.pos], instr))
	}
	return lines
}

// formatLine renders a listing line, e.g.
//
//	0150  3E 0A     LD A, 0x0A
func formatLine(address uint16, raw []byte, instr Instruction) string {
	return fmt.Sprintf("%04X  %-9s %s", address, fmt.Sprintf("% X", raw), instr)
}
