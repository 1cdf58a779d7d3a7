// Package ppu implements the Game Boy's pixel processing unit: the
// scanline-driven mode state machine, STAT/VBlank interrupt generation,
// and the background/window/sprite compositor that produces a 160x144
// framebuffer (spec.md §4.4).
package ppu

import (
	"github.com/gomeboy/core/internal/interrupts"
	"github.com/gomeboy/core/internal/ppu/palette"
)

// Mode identifies one of the four PPU scanline modes.
type Mode = uint8

const (
	ModeHBlank   Mode = 0
	ModeVBlank   Mode = 1
	ModeOAMScan  Mode = 2
	ModeTransfer Mode = 3
)

// Cycle budgets per mode, spec.md §4.4.
const (
	cyclesHBlank   = 204
	cyclesVBlank   = 4560
	cyclesOAMScan  = 80
	cyclesTransfer = 172
	cyclesPerLine  = 456
)

// FrameSink is the host presenter contract: a pixel sink plus a
// once-per-frame present signal (spec.md §6).
type FrameSink interface {
	SetPixel(x, y int, rgba uint32)
	PresentFrame()
}

// Registers gives the PPU read access to the plain (untrapped) LCD
// registers the MMU stores directly: LCDC, SCY, SCX, LYC, WY, WX. Keeping
// these in the MMU's io array rather than duplicating them here follows
// spec.md §9's guidance against components aliasing interior references
// into each other's memory.
type Registers interface {
	IO(offset uint8) uint8
}

const (
	offLCDC = 0x40
	offSCY  = 0x42
	offSCX  = 0x43
	offLYC  = 0x45
	offWY   = 0x4A
	offWX   = 0x4B
)

// PPU is the pixel processing unit.
type PPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte

	mode       Mode
	cycleCount int
	lyCount    int
	ly         uint8
	statEnable uint8 // bits 3-6 of STAT, as last written

	bgMask [160][144]bool

	bgPalette  palette.LUT
	objPalette [2]palette.LUT

	irq  *interrupts.Service
	sink FrameSink
	regs Registers
}

// New returns a PPU in its post-reset state: mode 2 (OAM-scan), LY 0, all
// registers and VRAM/OAM zeroed.
func New(irq *interrupts.Service, sink FrameSink) *PPU {
	return &PPU{
		mode: ModeOAMScan,
		irq:  irq,
		sink: sink,
	}
}

// AttachRegisters wires the PPU to the MMU's plain I/O register storage.
// Called once during emulator construction.
func (p *PPU) AttachRegisters(r Registers) {
	p.regs = r
}

func (p *PPU) lcdc() uint8 { return p.regs.IO(offLCDC) }
func (p *PPU) scy() uint8  { return p.regs.IO(offSCY) }
func (p *PPU) scx() uint8  { return p.regs.IO(offSCX) }
func (p *PPU) lyc() uint8  { return p.regs.IO(offLYC) }
func (p *PPU) wy() uint8   { return p.regs.IO(offWY) }
func (p *PPU) wx() uint8   { return p.regs.IO(offWX) }

// ReadVRAM/WriteVRAM address VRAM relative to 0x8000.
func (p *PPU) ReadVRAM(addr uint16) uint8    { return p.vram[addr] }
func (p *PPU) WriteVRAM(addr uint16, v uint8) { p.vram[addr] = v }

// ReadOAM/WriteOAM address OAM relative to 0xFE00.
func (p *PPU) ReadOAM(addr uint16) uint8    { return p.oam[addr] }
func (p *PPU) WriteOAM(addr uint16, v uint8) { p.oam[addr] = v }

// LY returns the current scanline (0xFF44 read).
func (p *PPU) LY() uint8 { return p.ly }

// ResetLY forces LY to 0, the effect of any write to 0xFF44 regardless of
// the written value (spec.md §4.2). It does not disturb the mode FSM or
// cycle counters - it mirrors the original implementation's direct
// *ly = 0 assignment.
func (p *PPU) ResetLY() { p.ly = 0 }

// Mode returns the current PPU mode.
func (p *PPU) Mode() Mode { return p.mode }

// ReadSTAT composes the STAT register value: bit 7 always 1, bit 6-3 the
// stored interrupt-enable bits, bit 2 the LY==LYC coincidence flag, bits
// 1-0 the current mode.
func (p *PPU) ReadSTAT() uint8 {
	stat := uint8(0x80) | p.statEnable | p.mode
	if p.ly == p.lyc() {
		stat |= 0x04
	}
	return stat
}

// WriteSTAT applies a write to 0xFF41: the enable bits (3-6) of the
// written value replace the stored ones, and if the write sets the enable
// bit for whichever condition currently holds (current mode, or the
// LY==LYC coincidence), LCD-STAT is requested immediately - this mirrors
// the original GPU::OnSTAT, extended to bit 4 (VBlank) per spec.md §4.2.
func (p *PPU) WriteSTAT(v uint8) {
	fireNow := false
	switch p.mode {
	case ModeHBlank:
		fireNow = v&0x08 != 0
	case ModeVBlank:
		fireNow = v&0x10 != 0
	case ModeOAMScan:
		fireNow = v&0x20 != 0
	}
	if !fireNow && v&0x40 != 0 && p.ly == p.lyc() {
		fireNow = true
	}

	p.statEnable = v & 0x78

	if fireNow {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// WriteBGP recomputes the background palette LUT from a BGP write.
func (p *PPU) WriteBGP(v uint8) { p.bgPalette = palette.FromByte(v) }

// WriteOBP0 recomputes object palette 0 from an OBP0 write. Index 0 stays
// transparent.
func (p *PPU) WriteOBP0(v uint8) { p.objPalette[0] = palette.FromByteTransparent(v) }

// WriteOBP1 recomputes object palette 1 from an OBP1 write. Index 0 stays
// transparent.
func (p *PPU) WriteOBP1(v uint8) { p.objPalette[1] = palette.FromByteTransparent(v) }

// Tick advances the PPU by cycles T-cycles, the value returned by
// cpu.CPU.Step. It may cross several mode boundaries within one call if
// cycles exceeds the current mode's remaining budget (spec.md §9).
func (p *PPU) Tick(cycles int) {
	p.cycleCount += cycles
	p.lyCount += cycles

	for p.lyCount >= cyclesPerLine {
		p.lyCount -= cyclesPerLine

		if p.ly < 144 {
			p.renderScanline()
		}

		p.ly++
		if p.ly == 154 {
			p.ly = 0
		}
		if p.statEnable&0x40 != 0 && p.ly == p.lyc() {
			p.irq.Request(interrupts.LCDFlag)
		}
	}

	for {
		switch p.mode {
		case ModeOAMScan:
			if p.cycleCount < cyclesOAMScan {
				return
			}
			p.cycleCount -= cyclesOAMScan
			p.mode = ModeTransfer
		case ModeTransfer:
			if p.cycleCount < cyclesTransfer {
				return
			}
			p.cycleCount -= cyclesTransfer
			p.mode = ModeHBlank
			if p.statEnable&0x08 != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
		case ModeHBlank:
			if p.cycleCount < cyclesHBlank {
				return
			}
			p.cycleCount -= cyclesHBlank
			if p.ly == 144 {
				p.mode = ModeVBlank
				p.irq.Request(interrupts.VBlankFlag)
				if p.statEnable&0x10 != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
				p.sink.PresentFrame()
			} else {
				p.mode = ModeOAMScan
				if p.statEnable&0x20 != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
		case ModeVBlank:
			if p.cycleCount < cyclesVBlank {
				return
			}
			p.cycleCount -= cyclesVBlank
			p.ly = 0
			p.mode = ModeOAMScan
			if p.statEnable&0x20 != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
		}
	}
}

// renderScanline draws background, window and sprites for the current LY,
// in that compositing order (spec.md §4.4).
func (p *PPU) renderScanline() {
	lcdc := p.lcdc()

	p.drawBackground(lcdc)
	if lcdc&0x20 != 0 {
		p.drawWindow(lcdc)
	}
	if lcdc&0x02 != 0 {
		p.drawSprites(lcdc)
	}
}

func (p *PPU) tileLine(dataBase uint16, mapBase uint16, mapRow, mapCol, tileRow int) (lsb, msb uint8) {
	index := p.vram[mapBase+uint16(mapRow*32+mapCol)]
	var tileIndex int
	if dataBase == 0x1000 {
		tileIndex = int(int8(index))
	} else {
		tileIndex = int(index)
	}
	addr := int(dataBase) + tileIndex*16 + tileRow*2
	return p.vram[addr], p.vram[addr+1]
}
