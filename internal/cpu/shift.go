package cpu

// shiftLeft implements CB SLA r: bit 0 fed with 0, C receives the
// displaced bit 7, Z per result, N=0, H=0.
func (c *CPU) shiftLeft(v uint8) uint8 {
	carry := v&0x80 != 0
	r := v << 1
	c.setFlags(r == 0, false, false, carry)
	return r
}

// shiftRightArith implements CB SRA r: bit 7 is preserved (arithmetic
// shift), C receives the displaced bit 0.
func (c *CPU) shiftRightArith(v uint8) uint8 {
	carry := v&0x01 != 0
	r := (v & 0x80) | (v >> 1)
	c.setFlags(r == 0, false, false, carry)
	return r
}

// shiftRightLogical implements CB SRL r: bit 7 fed with 0, C receives
// the displaced bit 0.
func (c *CPU) shiftRightLogical(v uint8) uint8 {
	carry := v&0x01 != 0
	r := v >> 1
	c.setFlags(r == 0, false, false, carry)
	return r
}

func init() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		DefineInstructionCB(0x20+reg, "SLA "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.shiftLeft(c.readReg8(reg)))
		})
		DefineInstructionCB(0x28+reg, "SRA "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.shiftRightArith(c.readReg8(reg)))
		})
		DefineInstructionCB(0x38+reg, "SRL "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.shiftRightLogical(c.readReg8(reg)))
		})
	}
}
