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

package vic_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/display"
	"github.com/dirkwhoffmann/go64/hardware/vic"
	"github.com/dirkwhoffmann/go64/test"
)

type fakeMemory struct{ data [0x4000]uint8 }

func (m *fakeMemory) Fetch(offset uint16) uint8 { return m.data[offset&0x3fff] }

type fakeColorRAM struct{ data [1024]uint8 }

func (c *fakeColorRAM) Read(offset uint16) uint8 { return c.data[offset&0x3ff] }

// tickTo advances the chip to the first cycle of the given raster line.
// Assumes a freshly reset chip (line 0, cycle 1) and PAL timing.
func tickTo(v *vic.VIC, line int) {
	for i := 0; i < line*63; i++ {
		v.Tick()
	}
}

func TestBadLineStealsBusForFortyCAccesses(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)

	v.ChipWrite(0x11, 0x1b) // DEN=1, RSEL=1, YSCROLL=3
	v.Tick()                // flush the delayed-register pipe

	// line $33 matches YSCROLL 3, so it is a bad line. count the cycles
	// with BA low across it: the 40 c-accesses (cycles 15-54) plus the
	// 3-cycle lead-in.
	tickTo(v, 0x33)
	low := 0
	for i := 0; i < 63; i++ {
		v.Tick()
		if !v.BA() {
			low++
		}
	}
	test.ExpectEquality(t, low, 43)

	// the following line does not match YSCROLL and steals nothing
	low = 0
	for i := 0; i < 63; i++ {
		v.Tick()
		if !v.BA() {
			low++
		}
	}
	test.ExpectEquality(t, low, 0)
}

func TestRasterIRQFiresAtCompareLine(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	var irq bool
	v := vic.New(mem, cram, func(b bool) { irq = b })

	v.ChipWrite(0x1a, 0x01) // enable raster IRQ
	v.ChipWrite(0x12, 0x64) // compare at line 100

	tickTo(v, 100)
	test.ExpectSuccess(t, !irq)

	// the IRQ line asserts within the first cycles of line 100
	v.Tick()
	v.Tick()
	test.ExpectSuccess(t, irq)
	irr := v.ChipReadRegister(0x19)
	test.ExpectSuccess(t, irr&0x01 != 0)
	test.ExpectSuccess(t, irr&0x80 != 0)

	// acknowledging the source drops the line
	v.ChipWrite(0x19, 0x01)
	test.ExpectSuccess(t, v.ChipReadRegister(0x19)&0x01 == 0)
}

func TestSpriteEnableRegisterRoundTrips(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)

	v.ChipWrite(0x15, 0x85) // sprites 0, 2, 7 enabled
	test.ExpectEquality(t, v.ChipReadRegister(0x15), uint8(0x85))
}

func TestBorderColorMasksToFourBits(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)

	v.ChipWrite(0x20, 0xff)
	test.ExpectEquality(t, v.ChipReadRegister(0x20), uint8(0xff)) // high nibble reads back as 1s
	test.ExpectEquality(t, v.ChipReadRegister(0x20)&0x0f, uint8(0x0f))
}

// placeSprite points sprite n's pointer at a solid 24x21 block and
// positions it at the given sprite coordinates.
func placeSprite(v *vic.VIC, mem *fakeMemory, n int, x, y int) {
	const block = 13 // sprite data at block*64
	mem.data[0x03f8+n] = block
	for i := 0; i < 63; i++ {
		mem.data[block*64+i] = 0xff
	}
	v.ChipWrite(uint16(n*2), uint8(x))
	v.ChipWrite(uint16(n*2+1), uint8(y))
}

func TestSpriteCollisionLatchesAndClearsOnRead(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)

	v.ChipWrite(0x11, 0x1b) // display on
	placeSprite(v, mem, 0, 100, 100)
	placeSprite(v, mem, 1, 110, 105) // overlaps sprite 0
	v.ChipWrite(0x15, 0x03)

	// run past the overlap region
	tickTo(v, 130)

	first := v.ChipReadRegister(0x1e)
	test.ExpectEquality(t, first, uint8(0x03))

	// read-then-read returns 0 until a new collision
	test.ExpectEquality(t, v.ChipReadRegister(0x1e), uint8(0))
}

func TestSpritePixelsReachTheFrame(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)
	frame := display.NewFrame(display.TextureSize, display.TextureSize)
	v.SetFrame(frame)

	v.ChipWrite(0x11, 0x1b)      // display on (border opens at line 51)
	placeSprite(v, mem, 2, 160, 120)
	v.ChipWrite(0x15, 0x04)      // enable sprite 2
	v.ChipWrite(0x29, 0x05)      // sprite 2 colour: green

	tickTo(v, 140)

	// sprite-space x 160 is texture column 160+104; the sprite displays
	// from the line after its first DMA line
	x := 160 + 104
	y := 122
	i := (y*frame.Width + x) * 4
	r, g, b := frame.Pix[i], frame.Pix[i+1], frame.Pix[i+2]
	green := display.Colodore[5]
	test.ExpectEquality(t, r, uint8(green>>16))
	test.ExpectEquality(t, g, uint8(green>>8))
	test.ExpectEquality(t, b, uint8(green))
}

func TestControlRegisterWritePropagatesNextCycle(t *testing.T) {
	mem := &fakeMemory{}
	cram := &fakeColorRAM{}
	v := vic.New(mem, cram, nil)

	v.ChipWrite(0x11, 0x1b)
	// the delayed-register pipe holds the write until the next Tick
	test.ExpectEquality(t, v.ChipReadRegister(0x11)&0x7f, uint8(0))
	v.Tick()
	test.ExpectEquality(t, v.ChipReadRegister(0x11)&0x7f, uint8(0x1b))
}
