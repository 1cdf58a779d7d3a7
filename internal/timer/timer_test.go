package timer

import (
	"testing"

	"github.com/gomeboy/core/internal/interrupts"
)

func TestTimerIncrementsAtSelectedFrequency(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.SetTAC(0x05) // enabled, freq index 01 -> every 16 cycles

	c.Tick(300)

	if c.TIMA() != 18 {
		t.Fatalf("expected TIMA to have incremented by 18, got %d", c.TIMA())
	}
}

func TestTimerOverflowReloadsFromTMAAndRequestsInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	irq.Enable = interrupts.TimerFlag
	c := NewController(irq)
	c.SetTAC(0x05)
	c.SetTMA(0x10)
	c.SetTIMA(0xFF)

	c.Tick(16) // one increment: 0xFF -> overflow -> reload

	if c.TIMA() != 0x10 {
		t.Fatalf("expected TIMA to reload from TMA 0x10, got %#02x", c.TIMA())
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Fatalf("expected Timer interrupt to be requested on overflow")
	}
}

func TestDIVIncrementsEvery256Cycles(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)

	c.Tick(256)
	if c.DIV() != 1 {
		t.Fatalf("expected DIV == 1 after 256 cycles, got %d", c.DIV())
	}
}

func TestResetDIVIgnoresWrittenValue(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Tick(512)
	c.ResetDIV()
	if c.DIV() != 0 {
		t.Fatalf("expected DIV == 0 after reset, got %d", c.DIV())
	}
}

func TestTimerDisabledDoesNotIncrement(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.SetTAC(0x01) // freq select set but enable bit (2) clear
	c.Tick(1000)
	if c.TIMA() != 0 {
		t.Fatalf("expected TIMA to stay 0 while disabled, got %d", c.TIMA())
	}
}
