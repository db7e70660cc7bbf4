package cpu

// pushStack pushes a 16 bit value onto the stack.
//
//	SP = SP - 2
//	(SP) = value low, (SP+1) = value high
func (c *CPU) pushStack(bus Bus, value uint16) error {
	if err := bus.Write16(c.SP-2, value); err != nil {
		return err
	}
	c.SP -= 2
	return nil
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack(bus Bus) (uint16, error) {
	value, err := bus.Read16(c.SP)
	if err != nil {
		return 0, err
	}
	c.SP += 2
	return value, nil
}

// taken returns true if the condition holds for the current flags.
func (c *CPU) taken(cond Condition) bool {
	if cond == Always {
		return true
	}
	flag, state := cond.Predicate()
	return c.IsFlagSet(flag) == state
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(bus Bus, cond Condition, address uint16) error {
	if !c.taken(cond) {
		return nil
	}
	if err := c.pushStack(bus, c.PC); err != nil {
		return err
	}
	c.PC = address
	return nil
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(cond Condition, address uint16) {
	if c.taken(cond) {
		c.PC = address
	}
}

// jumpRelative jumps to the address relative to the address of the next
// instruction.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(cond Condition, offset int8) {
	if c.taken(cond) {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(bus Bus, cond Condition) error {
	if !c.taken(cond) {
		return nil
	}
	address, err := c.popStack(bus)
	if err != nil {
		return err
	}
	c.PC = address
	return nil
}

// restart pushes the address of the next instruction onto the stack and
// jumps to one of the fixed vectors at the start of the address space.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(bus Bus, vector uint8) error {
	return c.call(bus, Always, uint16(vector))
}
