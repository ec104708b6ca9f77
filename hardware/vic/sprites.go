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

// sprite holds one of the 8 movable object blocks' registers and DMA
// state machine.
type sprite struct {
	x        int // sprite coordinate space: display window starts at 24
	y        int
	enabled  bool
	color    uint8
	expandX  bool
	expandY  bool
	expandYFF bool // set while expandY is clear; toggled at cycle 55 otherwise
	multicolor bool
	priority bool // true = sprite behind foreground graphics

	dma     bool // sprite DMA active
	display bool // sprite display active (lags dma by part of a line)
	mc      uint8
	mcbase  uint8
	pointer uint16
	shift   [3]uint8 // the three s-access bytes for the current line
}

// spritePointerAddr returns the p-access address for sprite n: the sprite
// pointers always live in the last 8 bytes of the video matrix.
func (v *VIC) spritePointerAddr(n int) uint16 {
	return v.videoMatrixBase() + 0x3f8 + uint16(n)
}

// spritePCycle returns the cycle (1-based within the line) of sprite n's
// p-access. Sprites 0-2 are serviced at the end of the line, 3-7 at the
// start of the next, per the documented PAL access map; NTSC's two extra
// cycles fall in the unused gap so the same table serves both regions.
func spritePCycle(n int) int {
	return [8]int{58, 60, 62, 1, 3, 5, 7, 9}[n]
}

// spriteLogic implements the per-cycle sprite DMA protocol: Y comparison
// and DMA switch-on at cycles 55/56, display enable and the p/s-accesses
// from cycle 58, and the MCBASE advance (with the Y-expansion flip-flop)
// at cycles 15/16.
func (v *VIC) spriteLogic() {
	switch v.cycle {
	case 55:
		for i := range v.sprites {
			s := &v.sprites[i]
			if s.expandY {
				s.expandYFF = !s.expandYFF
			}
		}
		v.spriteDMAOn()
	case 56:
		v.spriteDMAOn()
	case 58:
		for i := range v.sprites {
			s := &v.sprites[i]
			s.mc = s.mcbase
			if s.dma && v.rasterY&0xff == s.y {
				s.display = true
			}
		}
	case 15:
		for i := range v.sprites {
			s := &v.sprites[i]
			if s.expandYFF {
				s.mcbase += 2
			}
		}
	case 16:
		for i := range v.sprites {
			s := &v.sprites[i]
			if s.expandYFF {
				s.mcbase++
				if s.mcbase >= 63 {
					s.dma = false
					s.display = false
				}
			}
		}
	}

	// p-access (and, when DMA is on, the three s-accesses) for whichever
	// sprite is scheduled on this cycle
	for i := range v.sprites {
		if spritePCycle(i) != v.cycle {
			continue
		}
		s := &v.sprites[i]
		s.pointer = uint16(v.mem.Fetch(v.spritePointerAddr(i))) << 6
		if s.dma {
			for j := 0; j < 3; j++ {
				s.shift[j] = v.mem.Fetch(s.pointer + uint16(s.mc))
				s.mc = (s.mc + 1) & 0x3f
			}
		}
	}
}

// spriteDMAOn switches DMA on for any enabled sprite whose Y register
// matches the low 8 bits of the raster counter.
func (v *VIC) spriteDMAOn() {
	for i := range v.sprites {
		s := &v.sprites[i]
		if s.enabled && !s.dma && v.rasterY&0xff == s.y {
			s.dma = true
			s.mcbase = 0
			if s.expandY {
				s.expandYFF = false
			}
		}
	}
}

// spriteBAWindow reports whether any DMA-active sprite needs the bus this
// cycle or within the next three (BA drops 3 cycles before the first
// sprite access).
func (v *VIC) spriteBAWindow() bool {
	for i := range v.sprites {
		if !v.sprites[i].dma {
			continue
		}
		p := spritePCycle(i)
		start := p - 3
		end := p + 1
		c := v.cycle
		if start < 1 {
			// window wraps the line boundary
			if c >= start+v.region.cyclesPerLine || c <= end {
				return true
			}
			continue
		}
		if c >= start && c <= end {
			return true
		}
	}
	return false
}

// pixel returns sprite s's contribution at sprite-space coordinate sx on
// the current line, using the three bytes latched by this line's
// s-accesses. ok is false where the sprite is transparent.
func (s *sprite) pixel(sx int, mc0, mc1 uint8) (color uint8, ok bool) {
	width := 24
	if s.expandX {
		width = 48
	}
	d := sx - s.x
	if d < 0 || d >= width {
		return 0, false
	}
	if s.expandX {
		d /= 2
	}

	data := uint32(s.shift[0])<<16 | uint32(s.shift[1])<<8 | uint32(s.shift[2])

	if s.multicolor {
		pair := (data >> uint(22-(d&^1))) & 0x03
		switch pair {
		case 0:
			return 0, false
		case 1:
			return mc0, true
		case 2:
			return s.color, true
		default:
			return mc1, true
		}
	}

	if (data>>uint(23-d))&0x01 != 0 {
		return s.color, true
	}
	return 0, false
}
