// Package cartridge implements cartridge header parsing and the two
// banking controllers this module supports: no-MBC ("basic") and MBC1.
package cartridge

import (
	"github.com/gomeboy/core/pkg/log"
)

// Cartridge is the interface the MMU uses to route reads and writes in
// 0x0000-0x7FFF (ROM) and 0xA000-0xBFFF (external RAM).
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Title() string
}

// New constructs a Cartridge from a ROM image, selecting the banking
// controller named by the header's cartridge-type byte. It returns
// BadCartridgeHeaderError for any type byte this module doesn't implement
// (MBC2/3/5, RTC, etc - spec.md Non-goals).
func New(rom []byte, logger log.Logger) (Cartridge, error) {
	if logger == nil {
		logger = log.NewNullLogger()
	}

	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	logger.Infof("cartridge: %q type=%#02x ram=%dB cgb=%v", header.Title, header.CartridgeType, header.RAMSize, header.SupportsCGB)

	switch header.CartridgeType {
	case TypeROM:
		return newBasicCartridge(rom, header, logger), nil
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBattery:
		return newMBC1(rom, header), nil
	}

	return nil, &BadCartridgeHeaderError{TypeByte: uint8(header.CartridgeType)}
}
