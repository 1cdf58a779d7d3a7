package cpu

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x12
	sum := c.add(c.A, 0x08, false)
	if sum != 0x1A {
		t.Fatalf("expected 0x1A, got %#02x", sum)
	}
	diff := c.sub(sum, 0x08, false)
	if diff != 0x12 {
		t.Fatalf("expected ADD/SUB to round-trip to 0x12, got %#02x", diff)
	}
}

func TestCPSelfComparisonClearsCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x42
	c.setFlag(FlagCarry)
	c.sub(c.A, c.A, false)
	if !c.isFlagSet(FlagZero) {
		t.Fatalf("expected Z set for A-A")
	}
	if c.isFlagSet(FlagCarry) {
		t.Fatalf("expected C clear for A-A (no borrow)")
	}
}

func TestIncDecRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	v := c.increment(0x0F)
	if v != 0x10 {
		t.Fatalf("expected 0x10, got %#02x", v)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("expected H set crossing nibble boundary")
	}
	v = c.decrement(v)
	if v != 0x0F {
		t.Fatalf("expected INC/DEC to round-trip to 0x0F, got %#02x", v)
	}
}

func TestINCDECPreserveCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(FlagCarry)
	c.increment(0x01)
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("INC must not clear C")
	}
	c.decrement(0x01)
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("DEC must not clear C")
	}
}

func TestDAACorrectsAfterBCDAddition(t *testing.T) {
	// 0x45 + 0x38 in BCD should read 0x83, not the raw 0x7D binary sum.
	c, _ := newTestCPU()
	c.A = c.add(0x45, 0x38, false)
	InstructionSet[0x27].fn(c)
	if c.A != 0x83 {
		t.Fatalf("expected DAA to correct to 0x83, got %#02x", c.A)
	}
	if c.isFlagSet(FlagCarry) {
		t.Fatalf("expected no decimal carry out of this addition")
	}
}

func TestADDHLSetsCarryFromBit15(t *testing.T) {
	c, _ := newTestCPU()
	c.HL.SetUint16(0xFFFF)
	c.BC.SetUint16(0x0001)
	c.addHL(c.BC.Uint16())
	if c.HL.Uint16() != 0 {
		t.Fatalf("expected HL to wrap to 0, got %#04x", c.HL.Uint16())
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("expected carry out of bit 15")
	}
}

func TestSwapIsIdempotentAfterTwoApplications(t *testing.T) {
	c, _ := newTestCPU()
	v := c.swap(0xA5)
	if v != 0x5A {
		t.Fatalf("expected nibble swap to 0x5A, got %#02x", v)
	}
	if v := c.swap(v); v != 0xA5 {
		t.Fatalf("expected second swap to restore 0xA5, got %#02x", v)
	}
}

func TestRotateLeftCarryWraps(t *testing.T) {
	c, _ := newTestCPU()
	v := c.rotateLeft(0x80)
	if v != 0x01 {
		t.Fatalf("expected bit 7 to wrap into bit 0, got %#02x", v)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("expected C set from the displaced bit 7")
	}
}

func TestBitSetResClear(t *testing.T) {
	c, _ := newTestCPU()
	c.B = 0x00
	InstructionSetCB[0x40].fn(c) // BIT 0,B
	if !c.isFlagSet(FlagZero) {
		t.Fatalf("expected Z set, bit 0 of B is clear")
	}
	InstructionSetCB[0xC0].fn(c) // SET 0,B
	if c.B != 0x01 {
		t.Fatalf("expected SET 0,B to produce 0x01, got %#02x", c.B)
	}
	InstructionSetCB[0x80].fn(c) // RES 0,B
	if c.B != 0x00 {
		t.Fatalf("expected RES 0,B to clear bit 0, got %#02x", c.B)
	}
}
