package ppu

// drawBackground renders the current scanline's background layer,
// spec.md §4.4. LCDC bit 0 disables the background entirely, filling the
// line white.
func (p *PPU) drawBackground(lcdc uint8) {
	ly := int(p.ly)

	if lcdc&0x01 == 0 {
		for x := 0; x < 160; x++ {
			p.sink.SetPixel(x, ly, white)
			p.bgMask[x][ly] = false
		}
		return
	}

	dataBase := uint16(0x1000)
	if lcdc&0x10 != 0 {
		dataBase = 0x0000
	}
	mapBase := uint16(0x1800)
	if lcdc&0x08 != 0 {
		mapBase = 0x1C00
	}

	yw := (ly + int(p.scy())) & 0xFF
	mapRow := yw / 8
	tileRow := yw % 8

	for x := 0; x < 160; x++ {
		xw := (x + int(p.scx())) & 0xFF
		mapCol := xw / 8
		tileCol := xw % 8

		lsb, msb := p.tileLine(dataBase, mapBase, mapRow, mapCol, tileRow)
		colorIndex := colorIndexAt(lsb, msb, tileCol)

		p.sink.SetPixel(x, ly, p.bgPalette[colorIndex])
		p.bgMask[x][ly] = colorIndex != 0
	}
}

// drawWindow renders the window layer over the background where it is
// visible on the current scanline, spec.md §4.4. Only called when LCDC
// bit 5 is set.
func (p *PPU) drawWindow(lcdc uint8) {
	wy, wx := p.wy(), p.wx()
	ly := int(p.ly)

	if wx > 166 || wy > 143 || int(wy) > ly {
		return
	}

	dataBase := uint16(0x1000)
	if lcdc&0x10 != 0 {
		dataBase = 0x0000
	}
	mapBase := uint16(0x1800)
	if lcdc&0x40 != 0 {
		mapBase = 0x1C00
	}

	yw := ly - int(wy)
	mapRow := yw / 8
	tileRow := yw % 8

	start := int(wx) - 7
	if start < 0 {
		start = 0
	}

	for x := start; x < 160; x++ {
		mapCol := x / 8
		tileCol := x % 8

		lsb, msb := p.tileLine(dataBase, mapBase, mapRow, mapCol, tileRow)
		colorIndex := colorIndexAt(lsb, msb, tileCol)

		p.bgMask[x][ly] = colorIndex != 0
		p.sink.SetPixel(x, ly, p.bgPalette[colorIndex])
	}
}

// colorIndexAt extracts the 2-bit colour index for tile column col (0-7)
// from a tile line's two bitplane bytes.
func colorIndexAt(lsb, msb uint8, col int) uint8 {
	bit := uint(7 - col)
	idx := uint8(0)
	if lsb&(1<<bit) != 0 {
		idx |= 1
	}
	if msb&(1<<bit) != 0 {
		idx |= 2
	}
	return idx
}

const white = uint32(0xFFFFFFFF)
