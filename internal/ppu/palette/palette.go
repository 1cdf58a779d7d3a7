// Package palette derives the four-shade DMG colour lookup tables from the
// packed BGP/OBP0/OBP1 register bytes.
package palette

// Shades are the four fixed DMG grey levels, ARGB8888, light to dark
// (spec.md §6).
var Shades = [4]uint32{0xFFFFFFFF, 0xFF808080, 0xFF404040, 0xFF000000}

// LUT is a 4-entry colour lookup table indexed by a tile's 2-bit colour
// index.
type LUT [4]uint32

// FromByte derives a background palette LUT from a packed BGP-style byte:
// each 2-bit field selects one of the four Shades.
func FromByte(v uint8) LUT {
	var lut LUT
	for i := 0; i < 4; i++ {
		lut[i] = Shades[(v>>(uint(i)*2))&0x03]
	}
	return lut
}

// FromByteTransparent derives an object palette LUT from a packed
// OBP0/OBP1-style byte. Index 0 is always transparent (never drawn) and so
// is left unset, regardless of the byte's low 2 bits.
func FromByteTransparent(v uint8) LUT {
	lut := FromByte(v)
	lut[0] = 0
	return lut
}
