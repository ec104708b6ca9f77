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

// Package display holds the VIC-II's pixel output: an RGBA8 frame buffer
// sized to the PAL/NTSC visible raster area, the fixed 16-colour palette,
// and the double-buffered frame swap between the emulation goroutine
// (producer) and the host's render loop (consumer).
package display

import "github.com/dirkwhoffmann/go64/assert"

// TextureSize is the edge length of the square RGBA8 surface handed to the
// host each frame. The VIC renders the full raster into the top-left
// corner; the visible area below is what a host should crop to and centre.
const TextureSize = 512

// PAL and NTSC visible raster dimensions: full frame including border,
// excluding only the non-visible blanking intervals.
const (
	PALWidth   = 405
	PALHeight  = 284
	NTSCWidth  = 428
	NTSCHeight = 235
)

// Frame is one complete rendered video frame. Pix is row-major RGBA8,
// length Width*Height*4.
type Frame struct {
	Width, Height int
	Pix           []uint8
}

// NewFrame allocates a zeroed frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]uint8, width*height*4)}
}

// SetPixel writes one opaque RGB pixel at (x, y). Out-of-range coordinates
// are silently ignored, since border timing edge cases can occasionally
// compute a coordinate one pixel past the edge.
func (f *Frame) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i+0] = uint8(rgb >> 16)
	f.Pix[i+1] = uint8(rgb >> 8)
	f.Pix[i+2] = uint8(rgb)
	f.Pix[i+3] = 0xff
}

// Palette holds the 16 VIC-II colours as packed 0xRRGGBB values. Colodore
// is used as the default, matching the "colodore" preference the prefs
// package defaults to.
type Palette [16]uint32

// Colodore is Philip Timmermann's widely adopted colour-accurate C64
// palette.
var Colodore = Palette{
	0x000000, 0xFFFFFF, 0x813338, 0x75CEC8,
	0x8E3C97, 0x56AC4D, 0x2E2C9B, 0xEDF171,
	0x8E5029, 0x553800, 0xC46C71, 0x4A4A4A,
	0x7B7B7B, 0xA9FF9F, 0x706DEB, 0xB2B2B2,
}

// Pepto is a commonly used alternative palette, slightly warmer than
// Colodore.
var Pepto = Palette{
	0x000000, 0xFFFFFF, 0x68372B, 0x70A4B2,
	0x6F3D86, 0x588D43, 0x352879, 0xB8C76F,
	0x6F4F25, 0x433900, 0x9A6759, 0x444444,
	0x6C6C6C, 0x9AD284, 0x6C5EB5, 0x959595,
}

// monochrome builds a single-hue palette from Colodore's luminance ramp:
// each colour keeps its perceived brightness but is re-tinted toward the
// given base colour, reproducing the look of a period monochrome monitor.
func monochrome(base uint32) Palette {
	var p Palette
	br := int(base >> 16)
	bg := int(base >> 8 & 0xff)
	bb := int(base & 0xff)
	for i, rgb := range Colodore {
		// BT.601 luma of the colour's own RGB
		r := int(rgb >> 16)
		g := int(rgb >> 8 & 0xff)
		b := int(rgb & 0xff)
		y := (299*r + 587*g + 114*b) / 1000
		p[i] = uint32(br*y/255)<<16 | uint32(bg*y/255)<<8 | uint32(bb*y/255)
	}
	return p
}

// The monochrome palettes replace the chroma with a constant tint,
// keeping only the luminance of each of the 16 colours.
var (
	MonoBW    = monochrome(0xffffff)
	MonoPaper = monochrome(0xf4f0e8)
	MonoGreen = monochrome(0x41ff00)
	MonoAmber = monochrome(0xffb000)
	MonoSepia = monochrome(0xc0a080)
)

// ByName resolves a preference string to a Palette, falling back to
// Colodore for anything unrecognised.
func ByName(name string) Palette {
	switch name {
	case "pepto":
		return Pepto
	case "mono-bw":
		return MonoBW
	case "mono-paper":
		return MonoPaper
	case "mono-green":
		return MonoGreen
	case "mono-amber":
		return MonoAmber
	case "mono-sepia":
		return MonoSepia
	default:
		return Colodore
	}
}

// Swap is the lock-free single-producer/single-consumer double buffer used
// to hand a completed frame from the emulation goroutine to the host
// render loop without blocking either side.
type Swap struct {
	buffers [2]*Frame
	front   int32 // index the consumer should read; flipped by Publish

	producerCheck, consumerCheck assert.SingleGoroutine
}

// NewSwap allocates a Swap with two same-sized frames.
func NewSwap(width, height int) *Swap {
	return &Swap{buffers: [2]*Frame{NewFrame(width, height), NewFrame(width, height)}}
}

// Back returns the frame the producer should currently be drawing into.
func (s *Swap) Back() *Frame {
	s.producerCheck.Check()
	return s.buffers[1-s.front]
}

// Publish makes the just-completed back buffer the new front buffer. Only
// the producer goroutine calls this.
func (s *Swap) Publish() {
	s.producerCheck.Check()
	s.front = 1 - s.front
}

// Front returns the most recently published complete frame. Only the
// consumer goroutine calls this.
func (s *Swap) Front() *Frame {
	s.consumerCheck.Check()
	return s.buffers[s.front]
}
