// This file is part of Go64.
//
// Go64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Go64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package vic

// draw is the ϕ1.2 half-cycle: it emits the 8 pixels of the current
// cycle's chunk, compositing border, graphics and sprites. Collision
// detection runs here too, since it needs the same per-pixel foreground
// information the priority decision does.
func (v *VIC) draw() {
	for i := 0; i < 8; i++ {
		x := v.xCounter + i
		sx := x - spriteCoordOffset

		v.updateBorderFF(sx)

		gColor, foreground := v.graphicsPixel(i)
		sColor, sDrawn, sBehind := v.spritesPixel(sx, foreground)

		color := gColor
		if sDrawn && (!sBehind || !foreground) {
			color = sColor
		}
		if v.mainBorderFF || v.vertBorderFF {
			color = v.borderColor
		}

		if v.frame != nil && x < v.frame.Width && v.rasterY < v.frame.Height {
			v.frame.SetPixel(x, v.rasterY, v.pal[color&0x0f])
		}
	}
}

// updateBorderFF evaluates the vertical and main border flip-flops at
// sprite-space coordinate sx. The comparison
// values depend on the 38/40-column and 24/25-row window bits.
func (v *VIC) updateBorderFF(sx int) {
	left, right := 31, 335
	if v.colSelect40() {
		left, right = 24, 344
	}
	top, bottom := 55, 247
	if v.rowSelect25() {
		top, bottom = 51, 251
	}

	if sx == right {
		v.mainBorderFF = true
	}
	if v.cycle == v.region.cyclesPerLine && sx&7 == 7 {
		// the vertical flip-flop is evaluated once per line, in the last
		// cycle
		if v.rasterY == bottom {
			v.vertBorderFF = true
		}
		if v.rasterY == top && v.denEnabled() {
			v.vertBorderFF = false
		}
	}
	if sx == left {
		if v.rasterY == bottom {
			v.vertBorderFF = true
		}
		if v.rasterY == top && v.denEnabled() {
			v.vertBorderFF = false
		}
		if !v.vertBorderFF {
			v.mainBorderFF = false
		}
	}
}

// graphicsPixel produces pixel i (0-7) of the current chunk: its colour
// and whether it counts as foreground for sprite priority and collision
// purposes. XSCROLL shifts the window right, borrowing the leftmost
// pixels from the previous chunk's data.
func (v *VIC) graphicsPixel(i int) (uint8, bool) {
	pos := 8 + i - v.xScroll()

	var data, char, color uint8
	var bitIdx int
	if pos >= 8 {
		data, char, color = v.gData, v.gChar, v.gColor
		bitIdx = pos - 8
	} else {
		data, char, color = v.gPrevData, v.gPrevChar, v.gPrevColor
		bitIdx = pos
	}

	bit := (data >> uint(7-bitIdx)) & 0x01
	pair := (data >> uint(6-2*(bitIdx/2))) & 0x03

	ecm, bmm, mcm := v.ecm(), v.bmm(), v.mcm()
	switch {
	case !ecm && !bmm && !mcm:
		// standard text
		if bit != 0 {
			return color, true
		}
		return v.bgColor[0], false

	case !ecm && !bmm && mcm:
		// multicolor text. colour RAM bit 3 selects per character whether
		// it renders multicolor or falls back to standard with a 3-bit
		// colour.
		if color&0x08 == 0 {
			if bit != 0 {
				return color & 0x07, true
			}
			return v.bgColor[0], false
		}
		switch pair {
		case 0:
			return v.bgColor[0], false
		case 1:
			return v.bgColor[1], false
		case 2:
			return v.bgColor[2], true
		default:
			return color & 0x07, true
		}

	case !ecm && bmm && !mcm:
		// standard bitmap: colours come from the video matrix byte
		if bit != 0 {
			return char >> 4, true
		}
		return char & 0x0f, false

	case !ecm && bmm && mcm:
		// multicolor bitmap
		switch pair {
		case 0:
			return v.bgColor[0], false
		case 1:
			return char >> 4, false
		case 2:
			return char & 0x0f, true
		default:
			return color, true
		}

	case ecm && !bmm && !mcm:
		// extended background colour text: char code bits 6-7 pick the
		// background register
		if bit != 0 {
			return color, true
		}
		return v.bgColor[char>>6], false

	default:
		// the three invalid mode combinations render black but still
		// produce foreground for the collision units
		fg := bit != 0
		if mcm {
			fg = pair >= 2
		}
		return 0, fg
	}
}

// spritesPixel composites the 8 sprites at sprite-space coordinate sx:
// the visible sprite's colour (lowest index wins), whether any sprite is
// visible here, and whether that sprite sits behind foreground graphics.
// The collision registers latch here: any two non-transparent sprite
// pixels collide, and any non-transparent sprite pixel over foreground
// graphics collides with the background.
func (v *VIC) spritesPixel(sx int, foreground bool) (color uint8, drawn bool, behind bool) {
	var drawnMask uint8
	top := -1
	var topColor uint8
	var topBehind bool

	for i := range v.sprites {
		s := &v.sprites[i]
		if !s.display {
			continue
		}
		c, ok := s.pixel(sx, v.spriteMC0, v.spriteMC1)
		if !ok {
			continue
		}
		drawnMask |= 1 << uint(i)
		if top == -1 {
			top, topColor, topBehind = i, c, s.priority
		}
		if foreground && !v.vertBorderFF {
			v.spBgCollision |= 1 << uint(i)
			v.latch(irqSpriteBg)
		}
	}

	if drawnMask != 0 && drawnMask&(drawnMask-1) != 0 {
		// more than one sprite here: all of them latch
		v.spSpCollision |= drawnMask
		v.latch(irqSpriteSp)
	}

	if top == -1 {
		return 0, false, false
	}
	return topColor, true, topBehind
}
