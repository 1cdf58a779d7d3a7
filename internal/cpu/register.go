package cpu

// Register is an 8-bit CPU register.
type Register = uint8

// RegisterPair aliases two 8-bit registers as a 16-bit value, high byte
// first, the way AF/BC/DE/HL are addressed by 16-bit instructions.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 reads the pair as a single 16-bit value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 writes the pair from a single 16-bit value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers holds the eight 8-bit registers and their four 16-bit pair
// views, spec.md §3.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register

	AF, BC, DE, HL *RegisterPair
}

// reset restores the register file to its post-boot-ROM values,
// spec.md §3.
func (r *Registers) reset() {
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}

	r.AF.SetUint16(0x01B0)
	r.BC.SetUint16(0x0013)
	r.DE.SetUint16(0x00D8)
	r.HL.SetUint16(0x014D)
}

// reg8 returns a pointer to one of B,C,D,E,H,L,A addressed by the
// standard 3-bit register index; index 6, which addresses (HL), is
// handled separately by callers since it requires a bus access.
func (c *CPU) reg8(index uint8) *Register {
	switch index & 0x7 {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

func regName(index uint8) string {
	switch index & 0x7 {
	case 0:
		return "B"
	case 1:
		return "C"
	case 2:
		return "D"
	case 3:
		return "E"
	case 4:
		return "H"
	case 5:
		return "L"
	case 6:
		return "(HL)"
	case 7:
		return "A"
	}
	return "?"
}

// regPair returns one of BC/DE/HL addressed by the 2-bit pair index used
// by the 0x00-0x3F block (INC/DEC rr, LD rr,d16, ADD HL,rr). Index 3 (SP)
// returns nil.
func (c *CPU) regPair(index uint8) *RegisterPair {
	switch index & 0x3 {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return nil // SP is handled by callers; it has no register-pair backing.
	}
}

// readReg8/writeReg8 address one of B,C,D,E,H,L,A or, at index 6, the
// byte pointed to by HL - the uniform "r8" operand every LD/ALU/CB
// opcode in the 0x40-0xFF ranges is built from.
func (c *CPU) readReg8(index uint8) uint8 {
	if index&0x7 == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.reg8(index)
}

func (c *CPU) writeReg8(index uint8, v uint8) {
	if index&0x7 == 6 {
		c.writeByte(c.HL.Uint16(), v)
		return
	}
	*c.reg8(index) = v
}

func regPairName(index uint8, withSP bool) string {
	switch index & 0x3 {
	case 0:
		return "BC"
	case 1:
		return "DE"
	case 2:
		return "HL"
	default:
		if withSP {
			return "SP"
		}
		return "AF"
	}
}
