package cpu

import "testing"

func TestSRAPreservesSignBit(t *testing.T) {
	c, _ := newTestCPU()
	v := c.shiftRightArith(0x80)
	if v != 0xC0 {
		t.Fatalf("expected arithmetic shift to preserve bit 7, got %#02x", v)
	}
}

func TestSRLClearsSignBit(t *testing.T) {
	c, _ := newTestCPU()
	v := c.shiftRightLogical(0x80)
	if v != 0x40 {
		t.Fatalf("expected logical shift to clear bit 7, got %#02x", v)
	}
}

func TestSLACarriesOutBit7(t *testing.T) {
	c, _ := newTestCPU()
	v := c.shiftLeft(0x81)
	if v != 0x02 {
		t.Fatalf("expected 0x02, got %#02x", v)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("expected C set from displaced bit 7")
	}
}
