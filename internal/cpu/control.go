package cpu

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})

	// STOP is a 2-byte opcode; hardware always fetches the padding byte
	// that follows it. The original implementation cleared the stopped
	// flag here instead of setting it (spec.md §9 "STOP semantics") -
	// this sets it, per the documented fix.
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.fetch()
		c.stopped = true
	})

	DefineInstruction(0x27, "DAA", func(c *CPU) {
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || c.A > 0x99 {
				c.A += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				c.A += 0x06
				c.clearFlag(FlagHalfCarry)
			}
		} else if c.isFlagSet(FlagCarry) && c.isFlagSet(FlagHalfCarry) {
			c.A += 0x9A
			c.clearFlag(FlagHalfCarry)
		} else if c.isFlagSet(FlagCarry) {
			c.A += 0xA0
		} else if c.isFlagSet(FlagHalfCarry) {
			c.A += 0xFA
			c.clearFlag(FlagHalfCarry)
		}
		c.shouldZeroFlag(c.A)
	})

	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})

	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.putFlag(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x76, "HALT", func(c *CPU) {
		c.halted = true
	})

	DefineInstruction(0xF3, "DI", func(c *CPU) {
		c.imeState = imeWaitOff
	})

	DefineInstruction(0xFB, "EI", func(c *CPU) {
		c.imeState = imeWaitOn
	})
}
