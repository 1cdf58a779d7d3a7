// Package mmu implements the Game Boy's 16-bit memory bus: it routes
// reads and writes across cartridge ROM/RAM, VRAM, work RAM, OAM, the I/O
// register block, high RAM and the interrupt-enable register, applying
// the handful of address-specific side effects spec.md §4.2 calls out
// (DIV/LY reset-on-write, OAM DMA, the PPU register traps).
package mmu

import (
	"github.com/gomeboy/core/internal/interrupts"
	"github.com/gomeboy/core/pkg/log"
)

// Cartridge is what the MMU needs from a cartridge banking controller.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// PPU is what the MMU needs from the pixel processing unit: VRAM/OAM
// storage plus the handful of trapped LCD registers.
type PPU interface {
	ReadVRAM(addr uint16) uint8
	WriteVRAM(addr uint16, v uint8)
	ReadOAM(addr uint16) uint8
	WriteOAM(addr uint16, v uint8)
	LY() uint8
	ResetLY()
	ReadSTAT() uint8
	WriteSTAT(v uint8)
	WriteBGP(v uint8)
	WriteOBP0(v uint8)
	WriteOBP1(v uint8)
}

// Timer is what the MMU needs from the DIV/TIMA/TMA/TAC controller.
type Timer interface {
	DIV() uint8
	ResetDIV()
	TIMA() uint8
	SetTIMA(v uint8)
	TMA() uint8
	SetTMA(v uint8)
	TAC() uint8
	SetTAC(v uint8)
}

// Joypad is what the MMU needs from the joypad to service 0xFF00.
type Joypad interface {
	Write(value uint8)
	Read() uint8
}

// I/O register offsets (from 0xFF00) this module traps explicitly.
const (
	regJOYP   = 0x00
	regDIV    = 0x04
	regTIMA   = 0x05
	regTMA    = 0x06
	regTAC    = 0x07
	regIF     = 0x0F
	regSTAT   = 0x41
	regLY     = 0x44
	regDMA    = 0x46
	regBGP    = 0x47
	regOBP0   = 0x48
	regOBP1   = 0x49
)

// bootIO is the power-on state of the 0xFF00-0xFFFE I/O block, transcribed
// from the original implementation's Memory::Reset.
var bootIO = [0x100]byte{
	0x0F, 0x00, 0x7C, 0xFF, 0x00, 0x00, 0x00, 0xF8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01,
	0x80, 0xBF, 0xF3, 0xFF, 0xBF, 0xFF, 0x3F, 0x00, 0xFF, 0xBF, 0x7F, 0xFF, 0x9F, 0xFF, 0xBF, 0xFF,
	0xFF, 0x00, 0x00, 0xBF, 0x77, 0xF3, 0xF1, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
	0x91, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFC, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x7E, 0xFF, 0xFE,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x3E, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xC0, 0xFF, 0xC1, 0x00, 0xFE, 0xFF, 0xFF, 0xFF,
	0xF8, 0xFF, 0x00, 0x00, 0x00, 0x8F, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
	0x45, 0xEC, 0x52, 0xFA, 0x08, 0xB7, 0x07, 0x5D, 0x01, 0xFD, 0xC0, 0xFF, 0x08, 0xFC, 0x00, 0xE5,
	0x0B, 0xF8, 0xC2, 0xCE, 0xF4, 0xF9, 0x0F, 0x7F, 0x45, 0x6D, 0x3D, 0xFE, 0x46, 0x97, 0x33, 0x5E,
	0x08, 0xEF, 0xF1, 0xFF, 0x86, 0x83, 0x24, 0x74, 0x12, 0xFC, 0x00, 0x9F, 0xB4, 0xB7, 0x06, 0xD5,
	0xD0, 0x7A, 0x00, 0x9E, 0x04, 0x5F, 0x41, 0x2F, 0x1D, 0x77, 0x36, 0x75, 0x81, 0xAA, 0x70, 0x3A,
	0x98, 0xD1, 0x71, 0x02, 0x4D, 0x01, 0xC1, 0xFF, 0x0D, 0x00, 0xD3, 0x05, 0xF9, 0x00, 0x0B, 0x00,
}

// MMU is the Game Boy's 16-bit memory bus.
type MMU struct {
	cart Cartridge
	ppu  PPU
	tmr  Timer
	pad  Joypad
	irq  *interrupts.Service

	wram [0x2000]byte
	io   [0x80]byte
	hram [0x7F]byte

	log log.Logger
}

// New wires a bus around its collaborators and resets the I/O block to
// its power-on state (spec.md §5).
func New(cart Cartridge, ppu PPU, tmr Timer, pad Joypad, irq *interrupts.Service, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	m := &MMU{cart: cart, ppu: ppu, tmr: tmr, pad: pad, irq: irq, log: logger}
	copy(m.io[:], bootIO[:0x80])
	copy(m.hram[:], bootIO[0x80:0xFF])
	// Trapped registers are held by their components, so seed those from
	// the same table.
	m.pad.Write(bootIO[regJOYP])
	m.tmr.SetTIMA(bootIO[regTIMA])
	m.tmr.SetTMA(bootIO[regTMA])
	m.tmr.SetTAC(bootIO[regTAC])
	m.irq.Flag = bootIO[regIF]
	m.ppu.WriteBGP(bootIO[regBGP])
	m.ppu.WriteOBP0(bootIO[regOBP0])
	m.ppu.WriteOBP1(bootIO[regOBP1])
	return m
}

// IO returns the raw stored byte at I/O offset (from 0xFF00) for
// registers this module doesn't trap - satisfies ppu.Registers for the
// plain LCDC/SCY/SCX/LYC/WY/WX registers.
func (m *MMU) IO(offset uint8) uint8 { return m.io[offset] }

// ReadByte reads one byte from the 16-bit address space.
func (m *MMU) ReadByte(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		return m.cart.Read(addr)
	case addr <= 0x9FFF:
		return m.ppu.ReadVRAM(addr - 0x8000)
	case addr <= 0xBFFF:
		return m.cart.Read(addr)
	case addr <= 0xDFFF:
		return m.wram[addr-0xC000]
	case addr <= 0xFDFF:
		return m.wram[addr-0xE000]
	case addr <= 0xFE9F:
		return m.ppu.ReadOAM(addr - 0xFE00)
	case addr <= 0xFEFF:
		return 0x00
	case addr <= 0xFF7F:
		return m.readIO(uint8(addr - 0xFF00))
	case addr <= 0xFFFE:
		return m.hram[addr-0xFF80]
	default: // 0xFFFF
		return m.irq.Enable
	}
}

// ReadShort reads a little-endian 16-bit value.
func (m *MMU) ReadShort(addr uint16) uint16 {
	lo := uint16(m.ReadByte(addr))
	hi := uint16(m.ReadByte(addr + 1))
	return lo | hi<<8
}

// WriteByte writes one byte to the 16-bit address space.
func (m *MMU) WriteByte(addr uint16, v uint8) {
	switch {
	case addr <= 0x7FFF:
		m.cart.Write(addr, v)
	case addr <= 0x9FFF:
		m.ppu.WriteVRAM(addr-0x8000, v)
	case addr <= 0xBFFF:
		m.cart.Write(addr, v)
	case addr <= 0xDFFF:
		m.wram[addr-0xC000] = v
	case addr <= 0xFDFF:
		m.wram[addr-0xE000] = v
	case addr <= 0xFE9F:
		m.ppu.WriteOAM(addr-0xFE00, v)
	case addr <= 0xFEFF:
		// Unusable; writes ignored.
	case addr <= 0xFF7F:
		m.writeIO(uint8(addr-0xFF00), v)
	case addr <= 0xFFFE:
		m.hram[addr-0xFF80] = v
	default: // 0xFFFF
		m.irq.Enable = v
	}
}

// WriteShort writes a little-endian 16-bit value.
func (m *MMU) WriteShort(addr uint16, v uint16) {
	m.WriteByte(addr, uint8(v))
	m.WriteByte(addr+1, uint8(v>>8))
}

func (m *MMU) readIO(offset uint8) uint8 {
	switch offset {
	case regJOYP:
		return m.pad.Read()
	case regDIV:
		return m.tmr.DIV()
	case regTIMA:
		return m.tmr.TIMA()
	case regTMA:
		return m.tmr.TMA()
	case regTAC:
		return m.tmr.TAC()
	case regIF:
		return m.irq.Flag
	case regSTAT:
		return m.ppu.ReadSTAT()
	case regLY:
		return m.ppu.LY()
	}
	return m.io[offset]
}

func (m *MMU) writeIO(offset uint8, v uint8) {
	switch offset {
	case regJOYP:
		m.pad.Write(v)
		return
	case regDIV:
		m.tmr.ResetDIV()
		return
	case regTIMA:
		m.tmr.SetTIMA(v)
		return
	case regTMA:
		m.tmr.SetTMA(v)
		return
	case regTAC:
		m.tmr.SetTAC(v)
		return
	case regIF:
		m.irq.Flag = v
		return
	case regSTAT:
		m.ppu.WriteSTAT(v)
		return
	case regLY:
		m.ppu.ResetLY()
		return
	case regDMA:
		m.oamDMA(v)
		return
	case regBGP:
		m.ppu.WriteBGP(v)
		return
	case regOBP0:
		m.ppu.WriteOBP0(v)
		return
	case regOBP1:
		m.ppu.WriteOBP1(v)
		return
	}
	m.io[offset] = v
}

// oamDMA copies the 0xA0-byte OAM table from (v << 8) in one step,
// fixing the original implementation's `i < 0x9F` loop bound, which
// only ever copied 159 of the 160 bytes.
func (m *MMU) oamDMA(v uint8) {
	src := uint16(v) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.ppu.WriteOAM(i, m.ReadByte(src+i))
	}
	m.log.Debugf("mmu: OAM DMA from %#04x", src)
}
