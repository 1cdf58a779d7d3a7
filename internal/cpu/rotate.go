package cpu

// rotateLeft/rotateRight/rotateLeftThroughCarry/rotateRightThroughCarry
// implement the CB-prefixed RLC/RRC/RL/RR family: C receives the
// displaced bit, N=0, H=0, Z per result. The plain accumulator forms
// (RLCA/RRCA/RLA/RRA) reuse these and force Z=0 afterwards, spec.md
// §4.1.
func (c *CPU) rotateLeft(v uint8) uint8 {
	carry := v&0x80 != 0
	r := v << 1
	if carry {
		r |= 1
	}
	c.setFlags(r == 0, false, false, carry)
	return r
}

func (c *CPU) rotateRight(v uint8) uint8 {
	carry := v&0x01 != 0
	r := v >> 1
	if carry {
		r |= 0x80
	}
	c.setFlags(r == 0, false, false, carry)
	return r
}

func (c *CPU) rotateLeftThroughCarry(v uint8) uint8 {
	oldCarry := c.isFlagSet(FlagCarry)
	carry := v&0x80 != 0
	r := v << 1
	if oldCarry {
		r |= 1
	}
	c.setFlags(r == 0, false, false, carry)
	return r
}

func (c *CPU) rotateRightThroughCarry(v uint8) uint8 {
	oldCarry := c.isFlagSet(FlagCarry)
	carry := v&0x01 != 0
	r := v >> 1
	if oldCarry {
		r |= 0x80
	}
	c.setFlags(r == 0, false, false, carry)
	return r
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU) {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})

	for r := uint8(0); r < 8; r++ {
		reg := r
		DefineInstructionCB(0x00+reg, "RLC "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.rotateLeft(c.readReg8(reg)))
		})
		DefineInstructionCB(0x08+reg, "RRC "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.rotateRight(c.readReg8(reg)))
		})
		DefineInstructionCB(0x10+reg, "RL "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.rotateLeftThroughCarry(c.readReg8(reg)))
		})
		DefineInstructionCB(0x18+reg, "RR "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.rotateRightThroughCarry(c.readReg8(reg)))
		})
	}
}
