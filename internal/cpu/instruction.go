package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a single decoded operation. The set of instructions
// is closed: every implementation lives in this file, and execute
// handles each of them.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// Condition is the flag predicate of a conditional jump, call or
// return.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

// condition returns the predicate encoded in bits 4-3 of an opcode.
func condition(op uint8) Condition {
	return NotZero + Condition(op>>3&0x3)
}

// Predicate returns the flag tested by the condition, and the state
// the flag must be in for the condition to hold.
func (c Condition) Predicate() (Flag, bool) {
	switch c {
	case NotZero:
		return FlagZero, false
	case Zero:
		return FlagZero, true
	case NotCarry:
		return FlagCarry, false
	case Carry:
		return FlagCarry, true
	}
	return 0, true
}

func (c Condition) String() string {
	return [...]string{"", "NZ", "Z", "NC", "C"}[c]
}

// prefix formats the condition as the first operand of a mnemonic.
func (c Condition) prefix() string {
	if c == Always {
		return ""
	}
	return c.String() + ", "
}

// ShiftOp is one of the eight rotate, shift and swap operations of the
// escaped table, in encoding order.
type ShiftOp uint8

const (
	RLC ShiftOp = iota
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
)

func (s ShiftOp) String() string {
	return [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}[s]
}

type (
	// Nop does nothing.
	Nop struct{}
	// Stop puts the CPU into stop mode.
	Stop struct{}
	// Halt puts the CPU into halt mode.
	Halt struct{}
	// DisableInterrupts clears the interrupt master enable.
	DisableInterrupts struct{}
	// EnableInterrupts sets the interrupt master enable.
	EnableInterrupts struct{}

	// Load8 copies Src into Dst.
	Load8 struct {
		Dst Dest8
		Src Src8
	}
	// Load8Inc copies Src into Dst, then increments HL.
	Load8Inc struct {
		Dst Dest8
		Src Src8
	}
	// Load8Dec copies Src into Dst, then decrements HL.
	Load8Dec struct {
		Dst Dest8
		Src Src8
	}
	// Load16 copies Src into the 16-bit register Dst.
	Load16 struct {
		Dst Reg16
		Src Src16
	}
	// StoreSP writes the stack pointer to Addr.
	StoreSP struct {
		Addr uint16
	}
	// Push pushes a register pair onto the stack.
	Push struct {
		Pair Reg16
	}
	// Pop pops a register pair from the stack.
	Pop struct {
		Pair Reg16
	}

	// Add adds Src to A.
	Add struct{ Src Src8 }
	// AddCarry adds Src and the carry flag to A.
	AddCarry struct{ Src Src8 }
	// Sub subtracts Src from A.
	Sub struct{ Src Src8 }
	// SubCarry subtracts Src and the carry flag from A.
	SubCarry struct{ Src Src8 }
	// And performs a bitwise AND of Src and A.
	And struct{ Src Src8 }
	// Xor performs a bitwise XOR of Src and A.
	Xor struct{ Src Src8 }
	// Or performs a bitwise OR of Src and A.
	Or struct{ Src Src8 }
	// Compare subtracts Src from A, discarding the result.
	Compare struct{ Src Src8 }

	// Increment adds one to Dst.
	Increment struct{ Dst Dest8 }
	// Decrement subtracts one from Dst.
	Decrement struct{ Dst Dest8 }
	// Increment16 adds one to a 16-bit register.
	Increment16 struct{ Pair Reg16 }
	// Decrement16 subtracts one from a 16-bit register.
	Decrement16 struct{ Pair Reg16 }
	// AddHL adds a 16-bit register to HL.
	AddHL struct{ Pair Reg16 }
	// AddSP adds a signed offset to the stack pointer.
	AddSP struct{ Offset int8 }

	// DecimalAdjust corrects A to packed BCD after an addition or
	// subtraction.
	DecimalAdjust struct{}
	// Complement inverts every bit of A.
	Complement struct{}
	// SetCarry sets the carry flag.
	SetCarry struct{}
	// ComplementCarry inverts the carry flag.
	ComplementCarry struct{}

	// RotateA is one of the four accumulator rotates RLCA, RRCA, RLA
	// and RRA, which always clear the zero flag.
	RotateA struct{ Op ShiftOp }
	// Shift is an escaped rotate, shift or swap of Dst.
	Shift struct {
		Op  ShiftOp
		Dst Dest8
	}
	// BitTest tests bit Bit of Dst.
	BitTest struct {
		Bit uint8
		Dst Dest8
	}
	// BitReset clears bit Bit of Dst.
	BitReset struct {
		Bit uint8
		Dst Dest8
	}
	// BitSet sets bit Bit of Dst.
	BitSet struct {
		Bit uint8
		Dst Dest8
	}

	// Jump jumps to Addr when Cond holds.
	Jump struct {
		Cond Condition
		Addr uint16
	}
	// JumpHL jumps to the address held in HL.
	JumpHL struct{}
	// JumpRelative adds Offset to the program counter when Cond holds.
	JumpRelative struct {
		Cond   Condition
		Offset int8
	}
	// Call pushes the program counter and jumps to Addr when Cond
	// holds.
	Call struct {
		Cond Condition
		Addr uint16
	}
	// Return pops the program counter when Cond holds.
	Return struct{ Cond Condition }
	// ReturnInterrupt pops the program counter and enables interrupts.
	ReturnInterrupt struct{}
	// Restart pushes the program counter and jumps to Vector.
	Restart struct{ Vector uint8 }

	// Unknown is a byte sequence that matched no table entry.
	Unknown struct{ Bytes []byte }
)

func (Nop) instruction() {}
func (Stop) instruction() {}
func (Halt) instruction() {}
func (DisableInterrupts) instruction() {}
func (EnableInterrupts) instruction() {}
func (Load8) instruction() {}
func (Load8Inc) instruction() {}
func (Load8Dec) instruction() {}
func (Load16) instruction() {}
func (StoreSP) instruction() {}
func (Push) instruction() {}
func (Pop) instruction() {}
func (Add) instruction() {}
func (AddCarry) instruction() {}
func (Sub) instruction() {}
func (SubCarry) instruction() {}
func (And) instruction() {}
func (Xor) instruction() {}
func (Or) instruction() {}
func (Compare) instruction() {}
func (Increment) instruction() {}
func (Decrement) instruction() {}
func (Increment16) instruction() {}
func (Decrement16) instruction() {}
func (AddHL) instruction() {}
func (AddSP) instruction() {}
func (DecimalAdjust) instruction() {}
func (Complement) instruction() {}
func (SetCarry) instruction() {}
func (ComplementCarry) instruction() {}
func (RotateA) instruction() {}
func (Shift) instruction() {}
func (BitTest) instruction() {}
func (BitReset) instruction() {}
func (BitSet) instruction() {}
func (Jump) instruction() {}
func (JumpHL) instruction() {}
func (JumpRelative) instruction() {}
func (Call) instruction() {}
func (Return) instruction() {}
func (ReturnInterrupt) instruction() {}
func (Restart) instruction() {}
func (Unknown) instruction() {}

func (Nop) String() string { return "NOP" }
func (Stop) String() string { return "STOP" }
func (Halt) String() string { return "HALT" }
func (DisableInterrupts) String() string { return "DI" }
func (EnableInterrupts) String() string { return "EI" }

func (i Load8) String() string {
	return fmt.Sprintf("LD %s, %s", i.Dst, i.Src)
}

func (i Load8Inc) String() string {
	return fmt.Sprintf("LD %s, %s", postIndex(i.Dst, "+"), postIndex(i.Src, "+"))
}

func (i Load8Dec) String() string {
	return fmt.Sprintf("LD %s, %s", postIndex(i.Dst, "-"), postIndex(i.Src, "-"))
}

// postIndex renders (HL) as (HL+) or (HL-).
func postIndex(s fmt.Stringer, sign string) string {
	if ind, ok := s.(Indirect); ok && Reg16(ind) == HL {
		return "(HL" + sign + ")"
	}
	return s.String()
}

func (i Load16) String() string {
	return fmt.Sprintf("LD %s, %s", i.Dst, i.Src)
}

func (i StoreSP) String() string {
	return fmt.Sprintf("LD %s, SP", Absolute(i.Addr))
}

func (i Push) String() string { return "PUSH " + i.Pair.String() }
func (i Pop) String() string { return "POP " + i.Pair.String() }

func (i Add) String() string { return "ADD A, " + i.Src.String() }
func (i AddCarry) String() string { return "ADC A, " + i.Src.String() }
func (i Sub) String() string { return "SUB " + i.Src.String() }
func (i SubCarry) String() string { return "SBC A, " + i.Src.String() }
func (i And) String() string { return "AND " + i.Src.String() }
func (i Xor) String() string { return "XOR " + i.Src.String() }
func (i Or) String() string { return "OR " + i.Src.String() }
func (i Compare) String() string { return "CP " + i.Src.String() }

func (i Increment) String() string { return "INC " + i.Dst.String() }
func (i Decrement) String() string { return "DEC " + i.Dst.String() }
func (i Increment16) String() string { return "INC " + i.Pair.String() }
func (i Decrement16) String() string { return "DEC " + i.Pair.String() }
func (i AddHL) String() string { return "ADD HL, " + i.Pair.String() }
func (i AddSP) String() string { return "ADD SP, " + strings.TrimPrefix(signed(i.Offset), "+") }

func (DecimalAdjust) String() string { return "DAA" }
func (Complement) String() string { return "CPL" }
func (SetCarry) String() string { return "SCF" }
func (ComplementCarry) String() string { return "CCF" }

func (i RotateA) String() string { return i.Op.String() + "A" }

func (i Shift) String() string {
	return fmt.Sprintf("%s %s", i.Op, i.Dst)
}

func (i BitTest) String() string {
	return fmt.Sprintf("BIT %d, %s", i.Bit, i.Dst)
}

func (i BitReset) String() string {
	return fmt.Sprintf("RES %d, %s", i.Bit, i.Dst)
}

func (i BitSet) String() string {
	return fmt.Sprintf("SET %d, %s", i.Bit, i.Dst)
}

func (i Jump) String() string {
	return fmt.Sprintf("JP %s0x%04X", i.Cond.prefix(), i.Addr)
}

func (JumpHL) String() string { return "JP HL" }

func (i JumpRelative) String() string {
	return fmt.Sprintf("JR %s%s", i.Cond.prefix(), signed(i.Offset))
}

func (i Call) String() string {
	return fmt.Sprintf("CALL %s0x%04X", i.Cond.prefix(), i.Addr)
}

func (i Return) String() string {
	return strings.TrimSuffix("RET "+i.Cond.String(), " ")
}

func (ReturnInterrupt) String() string { return "RETI" }

func (i Restart) String() string {
	return fmt.Sprintf("RST 0x%02X", i.Vector)
}

func (i Unknown) String() string {
	return fmt.Sprintf("UNKNOWN % X", i.Bytes)
}
