package cpu

import "fmt"

// execute performs instr, whose first byte was fetched from pc. By
// the time execute is called the program counter already points past
// the instruction.
func (c *CPU) execute(bus Bus, pc uint16, instr Instruction) error {
	switch i := instr.(type) {
	case Nop:
	case Stop:
		c.mode = ModeStop
	case Halt:
		c.mode = ModeHalt
	case DisableInterrupts:
		c.IME = false
	case EnableInterrupts:
		c.IME = true

	// loads
	case Load8:
		return c.load8(bus, i.Dst, i.Src)
	case Load8Inc:
		if err := c.load8(bus, i.Dst, i.Src); err != nil {
			return err
		}
		c.Write16(HL, c.Read16(HL)+1)
	case Load8Dec:
		if err := c.load8(bus, i.Dst, i.Src); err != nil {
			return err
		}
		c.Write16(HL, c.Read16(HL)-1)
	case Load16:
		c.load16(i.Dst, i.Src)
	case StoreSP:
		return bus.Write16(i.Addr, c.SP)
	case Push:
		return c.pushStack(bus, c.Read16(i.Pair))
	case Pop:
		value, err := c.popStack(bus)
		if err != nil {
			return err
		}
		c.Write16(i.Pair, value)

	// 8-bit arithmetic and logic
	case Add:
		return c.withSource(bus, i.Src, func(n uint8) { c.add(n, false) })
	case AddCarry:
		return c.withSource(bus, i.Src, func(n uint8) { c.add(n, true) })
	case Sub:
		return c.withSource(bus, i.Src, func(n uint8) { c.sub(n, false) })
	case SubCarry:
		return c.withSource(bus, i.Src, func(n uint8) { c.sub(n, true) })
	case And:
		return c.withSource(bus, i.Src, c.and)
	case Xor:
		return c.withSource(bus, i.Src, c.xor)
	case Or:
		return c.withSource(bus, i.Src, c.or)
	case Compare:
		return c.withSource(bus, i.Src, c.compare)
	case Increment:
		return c.modify8(bus, i.Dst, c.increment)
	case Decrement:
		return c.modify8(bus, i.Dst, c.decrement)

	// 16-bit arithmetic
	case Increment16:
		c.Write16(i.Pair, c.Read16(i.Pair)+1)
	case Decrement16:
		c.Write16(i.Pair, c.Read16(i.Pair)-1)
	case AddHL:
		c.addHL(c.Read16(i.Pair))
	case AddSP:
		c.SP = c.addSPSigned(i.Offset)

	// accumulator and flags
	case DecimalAdjust:
		c.decimalAdjust()
	case Complement:
		c.complement()
	case SetCarry:
		c.setCarry()
	case ComplementCarry:
		c.complementCarry()
	case RotateA:
		c.rotateAccumulator(i.Op)

	// escaped table
	case Shift:
		return c.modify8(bus, i.Dst, func(n uint8) uint8 { return c.shift(i.Op, n) })
	case BitTest:
		return c.withSource(bus, i.Dst, func(n uint8) { c.testBit(n, i.Bit) })
	case BitReset:
		return c.modify8(bus, i.Dst, func(n uint8) uint8 { return clearBit(n, i.Bit) })
	case BitSet:
		return c.modify8(bus, i.Dst, func(n uint8) uint8 { return setBit(n, i.Bit) })

	// control flow
	case Jump:
		c.jumpAbsolute(i.Cond, i.Addr)
	case JumpHL:
		c.PC = c.Read16(HL)
	case JumpRelative:
		c.jumpRelative(i.Cond, i.Offset)
	case Call:
		return c.call(bus, i.Cond, i.Addr)
	case Return:
		return c.ret(bus, i.Cond)
	case ReturnInterrupt:
		if err := c.ret(bus, Always); err != nil {
			return err
		}
		c.IME = true
	case Restart:
		return c.restart(bus, i.Vector)

	case Unknown:
		return &UnknownInstructionFault{Bytes: append([]byte(nil), i.Bytes...), PC: pc}
	default:
		panic(fmt.Sprintf("cpu: unhandled instruction %T", instr))
	}
	return nil
}

// withSource reads an 8-bit operand and hands it to f.
func (c *CPU) withSource(bus Bus, src Src8, f func(uint8)) error {
	n, err := c.read8(bus, src)
	if err != nil {
		return err
	}
	f(n)
	return nil
}
