package cartridge

import "github.com/gomeboy/core/pkg/log"

// basicCartridge is a no-MBC cartridge: ROM reads return the underlying
// byte, ROM writes are ignored, and external RAM access is an error
// (spec.md §4.3, §7 NoRAMOnBasicCart).
type basicCartridge struct {
	rom    []byte
	header Header
	log    log.Logger
}

func newBasicCartridge(rom []byte, header Header, logger log.Logger) *basicCartridge {
	return &basicCartridge{rom: rom, header: header, log: logger}
}

func (c *basicCartridge) Title() string { return c.header.Title }

func (c *basicCartridge) Read(address uint16) uint8 {
	if address >= 0xA000 && address < 0xC000 {
		c.log.Debugf("cartridge: read from external RAM on basic cart at %#04x", address)
		return 0
	}
	if int(address) >= len(c.rom) {
		return 0
	}
	return c.rom[address]
}

func (c *basicCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		c.log.Debugf("cartridge: write to external RAM on basic cart at %#04x ignored", address)
	}
	// ROM writes are silently ignored.
}
