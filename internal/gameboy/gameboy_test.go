package gameboy

import (
	"testing"

	"github.com/gomeboy/core/internal/joypad"
	"github.com/gomeboy/core/internal/ppu"
)

// buildROM returns a minimal cartridge image: a valid header (no-MBC,
// untitled) followed by program bytes starting at the entry point 0x0100.
func buildROM(program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	rom[0x0147] = 0x00 // TypeROM
	return rom
}

func TestNewWiresAllComponents(t *testing.T) {
	rom := buildROM(0x00) // NOP
	g, err := New(rom, ppu.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}
	if g.CPU == nil || g.MMU == nil || g.PPU == nil || g.Timer == nil || g.Joypad == nil || g.IRQ == nil {
		t.Fatalf("expected every component wired, got %+v", g)
	}
}

func TestStepPropagatesCyclesToPPUAndTimer(t *testing.T) {
	rom := buildROM(0x00) // NOP, 4 cycles
	g, err := New(rom, ppu.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Timer.DIV() != 0 {
		t.Fatalf("expected DIV unchanged after a single 4-cycle step, got %d", g.Timer.DIV())
	}
}

func TestRunFrameStopsAtVBlankEntry(t *testing.T) {
	program := make([]uint8, 0)
	for i := 0; i < 20000; i++ {
		program = append(program, 0x00) // NOP, long enough to span a frame
	}
	program = append(program, 0x18, 0xFE) // JR -2: spin forever once NOPs run out
	rom := buildROM(program...)

	g, err := New(rom, ppu.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RunFrame(); err != nil {
		t.Fatal(err)
	}
	if g.PPU.Mode() != ppu.ModeVBlank {
		t.Fatalf("expected RunFrame to return with the PPU in VBlank, got mode %d", g.PPU.Mode())
	}
}

func TestPressKeyClearsStop(t *testing.T) {
	rom := buildROM(0x10, 0x00) // STOP
	g, err := New(rom, ppu.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if !g.CPU.Stopped() {
		t.Fatalf("expected CPU stopped after executing STOP")
	}
	g.PressKey(joypad.Start)
	if g.CPU.Stopped() {
		t.Fatalf("expected PressKey to clear STOP on a released->pressed edge")
	}
}

func TestBadCartridgeTypeRejected(t *testing.T) {
	rom := buildROM(0x00)
	rom[0x0147] = 0xFF // unsupported banking controller
	if _, err := New(rom, ppu.NewFramebuffer()); err == nil {
		t.Fatalf("expected New to reject an unsupported cartridge type byte")
	}
}
