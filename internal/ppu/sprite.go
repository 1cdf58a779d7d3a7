package ppu

// drawSprites composites the 40 OAM sprites onto the current scanline,
// spec.md §4.4. Entries are visited from index 39 down to 0 so that
// lower-indexed sprites win on overlap (later draws overwrite earlier
// ones).
func (p *PPU) drawSprites(lcdc uint8) {
	is8x16 := lcdc&0x04 != 0
	height := 8
	if is8x16 {
		height = 16
	}

	ly := int(p.ly)

	for i := 39; i >= 0; i-- {
		base := i * 4
		y := int(p.oam[base])
		x := int(p.oam[base+1])
		tileIdx := p.oam[base+2]
		attr := p.oam[base+3]

		spriteY := y - 16
		spriteX := x - 8

		if ly < spriteY || ly >= spriteY+height {
			continue
		}
		if spriteX <= -8 || spriteX >= 160 {
			continue
		}

		if is8x16 {
			tileIdx &^= 1
		}

		xFlip := attr&0x20 != 0
		yFlip := attr&0x40 != 0
		behindBG := attr&0x80 != 0
		paletteIdx := (attr >> 4) & 0x01

		row := ly - spriteY
		if yFlip {
			row = (height - 1) - row
		}
		if row >= 8 {
			tileIdx |= 1
			row -= 8
		}

		addr := int(tileIdx)*16 + row*2
		lsb, msb := p.vram[addr], p.vram[addr+1]

		start := 0
		if spriteX < 0 {
			start = -spriteX
		}
		end := 8
		if spriteX+7 >= 160 {
			end = 160 - spriteX
		}

		for tx := start; tx < end; tx++ {
			bit := tx
			if !xFlip {
				bit = 7 - tx
			}
			colorIndex := uint8(0)
			if lsb&(1<<uint(bit)) != 0 {
				colorIndex |= 1
			}
			if msb&(1<<uint(bit)) != 0 {
				colorIndex |= 2
			}

			if colorIndex == 0 {
				continue
			}
			sx := spriteX + tx
			if behindBG && p.bgMask[sx][ly] {
				continue
			}
			p.sink.SetPixel(sx, ly, p.objPalette[paletteIdx][colorIndex])
		}
	}
}
