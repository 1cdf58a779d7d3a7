package cpu

// swap implements CB SWAP r: nibble swap, Z per result, N=0, H=0, C=0.
func (c *CPU) swap(v uint8) uint8 {
	r := v<<4 | v>>4
	c.setFlags(r == 0, false, false, false)
	return r
}

func init() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		DefineInstructionCB(0x30+reg, "SWAP "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.swap(c.readReg8(reg)))
		})
	}
}
