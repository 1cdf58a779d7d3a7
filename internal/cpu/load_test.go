package cpu

import "testing"

func TestLDRegisterToRegisterRoundTrip(t *testing.T) {
	c, _ := newTestCPU(0x47, 0x78) // LD B,A ; LD A,B
	c.A = 0x99
	run(c, 2)
	if c.A != 0x99 || c.B != 0x99 {
		t.Fatalf("expected A and B both 0x99 after round trip, got A=%#02x B=%#02x", c.A, c.B)
	}
}

func TestLDHLIndirectUsesBus(t *testing.T) {
	c, bus := newTestCPU(0x36, 0x7A, 0x7E) // LD (HL),0x7A ; LD A,(HL)
	c.HL.SetUint16(0xC000)
	run(c, 2)
	if bus.mem[0xC000] != 0x7A {
		t.Fatalf("expected (HL) write to land in bus memory")
	}
	if c.A != 0x7A {
		t.Fatalf("expected LD A,(HL) to read back 0x7A, got %#02x", c.A)
	}
}

func TestPushPopAFMasksLowNibble(t *testing.T) {
	c, _ := newTestCPU(0xF5, 0xF1) // PUSH AF ; POP AF
	c.A = 0x5A
	c.F = 0xFF // low nibble of F is never settable by real flag ops
	run(c, 2)
	if c.F&0x0F != 0 {
		t.Fatalf("expected POP AF to mask the low nibble of F, got F=%#02x", c.F)
	}
	if c.F&0xF0 != 0xF0 {
		t.Fatalf("expected high nibble of F preserved, got F=%#02x", c.F)
	}
}

func TestLDHLSPPlusOffsetFlags(t *testing.T) {
	c, _ := newTestCPU(0xF8, 0x02) // LD HL,SP+2
	c.SP = 0xFFFE
	run(c, 1)
	if c.HL.Uint16() != 0x0000 {
		t.Fatalf("expected HL=0x0000 from SP+2 wrap, got %#04x", c.HL.Uint16())
	}
	if c.isFlagSet(FlagZero) {
		t.Fatalf("LD HL,SP+e always clears Z")
	}
}

func TestLDAtoA16RoundTrip(t *testing.T) {
	c, bus := newTestCPU(0xEA, 0x00, 0xC0, 0xFA, 0x00, 0xC0) // LD (0xC000),A ; LD A,(0xC000)
	c.A = 0x3C
	run(c, 1)
	if bus.mem[0xC000] != 0x3C {
		t.Fatalf("expected direct store to 0xC000")
	}
	c.A = 0
	run(c, 1)
	if c.A != 0x3C {
		t.Fatalf("expected direct load to read back 0x3C, got %#02x", c.A)
	}
}
