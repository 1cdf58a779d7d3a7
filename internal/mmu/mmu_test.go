package mmu

import (
	"testing"

	"github.com/gomeboy/core/internal/interrupts"
)

type fakeCart struct {
	rom [0x8000]byte
	ram [0x2000]byte
}

func (c *fakeCart) Read(addr uint16) uint8 {
	if addr < 0x8000 {
		return c.rom[addr]
	}
	return c.ram[addr-0xA000]
}

func (c *fakeCart) Write(addr uint16, v uint8) {
	if addr >= 0xA000 && addr < 0xC000 {
		c.ram[addr-0xA000] = v
	}
}

type fakePPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte
	ly   uint8
	stat uint8
}

func (p *fakePPU) ReadVRAM(addr uint16) uint8     { return p.vram[addr] }
func (p *fakePPU) WriteVRAM(addr uint16, v uint8) { p.vram[addr] = v }
func (p *fakePPU) ReadOAM(addr uint16) uint8      { return p.oam[addr] }
func (p *fakePPU) WriteOAM(addr uint16, v uint8)  { p.oam[addr] = v }
func (p *fakePPU) LY() uint8                      { return p.ly }
func (p *fakePPU) ResetLY()                       { p.ly = 0 }
func (p *fakePPU) ReadSTAT() uint8                { return p.stat }
func (p *fakePPU) WriteSTAT(v uint8)              { p.stat = v }
func (p *fakePPU) WriteBGP(v uint8)               {}
func (p *fakePPU) WriteOBP0(v uint8)              {}
func (p *fakePPU) WriteOBP1(v uint8)              {}

type fakeTimer struct {
	div, tima, tma, tac uint8
}

func (t *fakeTimer) DIV() uint8       { return t.div }
func (t *fakeTimer) ResetDIV()        { t.div = 0 }
func (t *fakeTimer) TIMA() uint8      { return t.tima }
func (t *fakeTimer) SetTIMA(v uint8)  { t.tima = v }
func (t *fakeTimer) TMA() uint8       { return t.tma }
func (t *fakeTimer) SetTMA(v uint8)   { t.tma = v }
func (t *fakeTimer) TAC() uint8       { return t.tac }
func (t *fakeTimer) SetTAC(v uint8)   { t.tac = v }

type fakeJoypad struct{ written uint8 }

func (j *fakeJoypad) Write(v uint8) { j.written = v }
func (j *fakeJoypad) Read() uint8   { return 0xCF }

func newTestMMU() (*MMU, *fakePPU) {
	irq := interrupts.NewService()
	ppu := &fakePPU{}
	m := New(&fakeCart{}, ppu, &fakeTimer{}, &fakeJoypad{}, irq, nil)
	return m, ppu
}

func TestEchoRAMMirrorsWorkRAM(t *testing.T) {
	m, _ := newTestMMU()

	m.WriteByte(0xC010, 0x42)
	if got := m.ReadByte(0xE010); got != 0x42 {
		t.Fatalf("expected echo RAM to mirror work RAM, got %#02x", got)
	}

	m.WriteByte(0xE020, 0x7A)
	if got := m.ReadByte(0xC020); got != 0x7A {
		t.Fatalf("expected writes through the echo window to reach work RAM, got %#02x", got)
	}
}

func TestDIVWriteAlwaysResetsRegardlessOfValue(t *testing.T) {
	m, _ := newTestMMU()

	m.WriteByte(0xFF04, 0x99)
	if got := m.ReadByte(0xFF04); got != 0 {
		t.Fatalf("expected any write to 0xFF04 to reset DIV to 0, got %#02x", got)
	}
}

func TestOAMDMACopiesAllHundredSixtyBytes(t *testing.T) {
	m, ppu := newTestMMU()

	for i := uint16(0); i < 0xA0; i++ {
		m.WriteByte(0xC000+i, uint8(i+1))
	}

	m.WriteByte(0xFF46, 0xC0)

	for i := 0; i < 0xA0; i++ {
		if ppu.oam[i] != uint8(i+1) {
			t.Fatalf("expected OAM DMA to copy all 0xA0 bytes, byte %d missing", i)
		}
	}
}

func TestUnusableRegionReadsZeroAndIgnoresWrites(t *testing.T) {
	m, _ := newTestMMU()

	m.WriteByte(0xFEA5, 0x55)
	if got := m.ReadByte(0xFEA5); got != 0 {
		t.Fatalf("expected unusable region to read 0, got %#02x", got)
	}
}

func TestIEAndIFRouteToInterruptService(t *testing.T) {
	m, _ := newTestMMU()

	m.WriteByte(0xFFFF, 0x1F)
	if got := m.ReadByte(0xFFFF); got != 0x1F {
		t.Fatalf("expected 0xFFFF to round-trip through interrupts.Service.Enable, got %#02x", got)
	}

	m.WriteByte(0xFF0F, 0x05)
	if got := m.ReadByte(0xFF0F); got != 0x05 {
		t.Fatalf("expected 0xFF0F to round-trip through interrupts.Service.Flag, got %#02x", got)
	}
}
