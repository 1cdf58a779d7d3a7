package cpu

// add implements the ADD/ADC A,x family, spec.md §4.1's canonical flag
// table: Z per result, N=0, H on carry from bit 3, C on carry from bit 7.
func (c *CPU) add(a, b uint8, useCarry bool) uint8 {
	var cin uint16
	if useCarry && c.isFlagSet(FlagCarry) {
		cin = 1
	}
	sum := uint16(a) + uint16(b) + cin
	half := (a&0xF)+(b&0xF)+uint8(cin) > 0xF
	c.setFlags(uint8(sum) == 0, false, half, sum > 0xFF)
	return uint8(sum)
}

// sub implements SUB/SBC/CP A,x: N=1, H set on borrow from bit 4, C set
// on borrow.
func (c *CPU) sub(a, b uint8, useCarry bool) uint8 {
	var cin int16
	if useCarry && c.isFlagSet(FlagCarry) {
		cin = 1
	}
	diff := int16(a) - int16(b) - cin
	half := int16(a&0xF)-int16(b&0xF)-cin < 0
	c.setFlags(uint8(diff) == 0, true, half, diff < 0)
	return uint8(diff)
}

func (c *CPU) and(a, b uint8) uint8 {
	r := a & b
	c.setFlags(r == 0, false, true, false)
	return r
}

func (c *CPU) or(a, b uint8) uint8 {
	r := a | b
	c.setFlags(r == 0, false, false, false)
	return r
}

func (c *CPU) xor(a, b uint8) uint8 {
	r := a ^ b
	c.setFlags(r == 0, false, false, false)
	return r
}

// increment implements INC r: Z per result, N=0, H set when the low
// nibble was 0xF before incrementing, C unchanged.
func (c *CPU) increment(v uint8) uint8 {
	r := v + 1
	c.setFlags(r == 0, false, v&0xF == 0xF, c.isFlagSet(FlagCarry))
	return r
}

// decrement implements DEC r: Z per result, N=1, H set when the low
// nibble was 0x0 before decrementing, C unchanged.
func (c *CPU) decrement(v uint8) uint8 {
	r := v - 1
	c.setFlags(r == 0, true, v&0xF == 0x0, c.isFlagSet(FlagCarry))
	return r
}

// addHL implements ADD HL,rr: N=0, H on carry from bit 11, C on carry
// from bit 15, Z unchanged.
func (c *CPU) addHL(v uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(v)
	half := (hl&0xFFF)+(v&0xFFF) > 0xFFF
	c.setFlags(c.isFlagSet(FlagZero), false, half, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
	c.tick(4)
}

// addSPOffset implements the shared arithmetic behind ADD SP,e and
// LD HL,SP+e: Z=0, N=0, H/C computed from the XOR trick against the
// signed 8-bit operand, per spec.md §4.1.
func (c *CPU) addSPOffset() uint16 {
	e := int8(c.fetch())
	result := uint16(int32(c.SP) + int32(e))
	tmp := c.SP ^ uint16(e) ^ result
	c.setFlags(false, false, tmp&0x10 != 0, tmp&0x100 != 0)
	c.tick(4)
	return result
}

var aluOpNames = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func init() {
	ops := [8]func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.A = c.add(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.add(c.A, v, true) },
		func(c *CPU, v uint8) { c.A = c.sub(c.A, v, false) },
		func(c *CPU, v uint8) { c.A = c.sub(c.A, v, true) },
		func(c *CPU, v uint8) { c.A = c.and(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.xor(c.A, v) },
		func(c *CPU, v uint8) { c.A = c.or(c.A, v) },
		func(c *CPU, v uint8) { c.sub(c.A, v, false) }, // CP: flags only
	}

	for opIdx := uint8(0); opIdx < 8; opIdx++ {
		op := ops[opIdx]
		name := aluOpNames[opIdx]

		for regIdx := uint8(0); regIdx < 8; regIdx++ {
			opcode := 0x80 + opIdx*8 + regIdx
			r := regIdx
			DefineInstruction(opcode, name+" A, "+regName(r), func(c *CPU) {
				op(c, c.readReg8(r))
			})
		}

		immOpcode := 0xC6 + opIdx*8
		DefineInstruction(immOpcode, name+" A, d8", func(c *CPU) {
			op(c, c.fetch())
		})
	}

	for r := uint8(0); r < 8; r++ {
		reg := r
		DefineInstruction(reg*8+0x04, "INC "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.increment(c.readReg8(reg)))
		})
		DefineInstruction(reg*8+0x05, "DEC "+regName(reg), func(c *CPU) {
			c.writeReg8(reg, c.decrement(c.readReg8(reg)))
		})
	}

	for idx := uint8(0); idx < 4; idx++ {
		i := idx
		DefineInstruction(i*0x10+0x03, "INC "+regPairName(i, true), func(c *CPU) {
			c.tick(4)
			if i == 3 {
				c.SP++
			} else {
				p := c.regPair(i)
				p.SetUint16(p.Uint16() + 1)
			}
		})
		DefineInstruction(i*0x10+0x0B, "DEC "+regPairName(i, true), func(c *CPU) {
			c.tick(4)
			if i == 3 {
				c.SP--
			} else {
				p := c.regPair(i)
				p.SetUint16(p.Uint16() - 1)
			}
		})
		DefineInstruction(i*0x10+0x09, "ADD HL, "+regPairName(i, true), func(c *CPU) {
			if i == 3 {
				c.addHL(c.SP)
			} else {
				c.addHL(c.regPair(i).Uint16())
			}
		})
	}

	DefineInstruction(0xE8, "ADD SP, e", func(c *CPU) {
		c.SP = c.addSPOffset()
		c.tick(4)
	})
}
