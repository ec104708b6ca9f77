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

import (
	"github.com/dirkwhoffmann/go64/hardware/clocks"
	"github.com/dirkwhoffmann/go64/hardware/display"
	"github.com/dirkwhoffmann/go64/hardware/pipeline"
)

// Memory is the VIC's own 16 KiB bus window (hardware/memory.VICBus
// implements this).
type Memory interface {
	Fetch(offset uint16) uint8
}

// ColorRAM is the subset of the colour RAM the VIC needs for c-accesses.
type ColorRAM interface {
	Read(offset uint16) uint8
}

// region holds the PAL/NTSC per-line and per-frame cycle geometry.
type region struct {
	cyclesPerLine int
	linesPerFrame int
}

var palRegion = region{cyclesPerLine: clocks.PAL_CyclesPerLine, linesPerFrame: clocks.PAL_LinesPerFrame}
var ntscRegion = region{cyclesPerLine: clocks.NTSC_CyclesPerLine, linesPerFrame: clocks.NTSC_LinesPerFrame}

// spriteCoordOffset converts between sprite/border coordinate space (where
// the display window's left edge is at X=24) and the texture column
// produced by (cycle-1)*8.
const spriteCoordOffset = 104

// VIC implements the 6569/6567 video chip.
type VIC struct {
	mem      Memory
	colorRAM ColorRAM

	// assertIRQ is called with true when the chip's IRQ output should
	// assert, matching the cia.New(assertLine) convention. The scheduler
	// ORs it into the CPU's IRQ line.
	assertIRQ func(bool)

	region region
	ntsc   bool

	rasterY  int
	cycle    int // 1-based, wraps at region.cyclesPerLine
	xCounter int // texture column of the next 8-pixel chunk

	badLine      bool
	denLatch     bool // DEN seen at raster $30, required for any badline this frame
	displayState bool // graphics sequencer display (vs idle) state

	vc, vcbase int
	rc         int
	vmli       int
	vmBuf      [40]uint8 // video matrix line buffer: char codes latched by c-accesses
	vmColorBuf [40]uint8 // corresponding colour RAM nibbles

	// the graphics data pipeline: the g-access started in cycle n is
	// displayed during cycle n+1. gData/gChar/gColor describe the chunk
	// being drawn; gPrev* the one before it, still needed while XSCROLL
	// shifts the display window right.
	gData, gChar, gColor    uint8
	gPrevData               uint8
	gPrevChar, gPrevColor   uint8
	gNextData               uint8
	gNextChar, gNextColor   uint8

	mainBorderFF bool
	vertBorderFF bool

	ba  bool
	aec bool

	pipe pipeline.Pipeline

	sprites [8]sprite

	// registers
	ctrl1     uint8 // $D011
	ctrl2     uint8 // $D016
	memPtrs   uint8 // $D018
	irr       uint8 // $D019 latched interrupt sources
	imr       uint8 // $D01A mask
	rasterCmp uint8 // low 8 bits of raster compare; bit 9 lives in ctrl1

	spritePriority uint8 // $D01B
	spriteMCFlags  uint8 // $D01C
	spriteExpandY  uint8 // $D017
	spriteExpandX  uint8 // $D01D
	spSpCollision  uint8 // $D01E, clear on read
	spBgCollision  uint8 // $D01F, clear on read

	borderColor uint8
	bgColor     [4]uint8
	spriteMC0   uint8
	spriteMC1   uint8

	lastDataBus  uint8
	lastRegister string

	frame *display.Frame
	pal   display.Palette

	frameCount uint64
}

// New constructs a VIC wired to its own 16 KiB memory window, the shared
// colour RAM, and an IRQ line callback. Defaults to PAL timing.
func New(mem Memory, colorRAM ColorRAM, assertIRQ func(bool)) *VIC {
	v := &VIC{
		mem:       mem,
		colorRAM:  colorRAM,
		assertIRQ: assertIRQ,
		region:    palRegion,
		pal:       display.Colodore,
	}
	v.Reset()
	return v
}

// SetRegion switches PAL/NTSC timing: the per-line cycle count and
// raster geometry reset, register state stays intact. Callers are
// responsible for not doing this mid-frame.
func (v *VIC) SetRegion(ntsc bool) {
	v.ntsc = ntsc
	if ntsc {
		v.region = ntscRegion
	} else {
		v.region = palRegion
	}
	v.rasterY = 0
	v.cycle = 1
	v.xCounter = 0
}

// SetFrame installs the back buffer the VIC should render into this
// frame; the scheduler calls this once per frame from display.Swap.Back().
func (v *VIC) SetFrame(f *display.Frame) {
	v.frame = f
}

// SetPalette installs the 16-colour palette used to convert VIC colour
// register values to RGB.
func (v *VIC) SetPalette(p display.Palette) {
	v.pal = p
}

// Reset restores power-on state.
func (v *VIC) Reset() {
	v.rasterY = 0
	v.cycle = 1
	v.xCounter = 0
	v.badLine = false
	v.denLatch = false
	v.displayState = false
	v.vc, v.vcbase, v.rc, v.vmli = 0, 0, 0, 0
	v.gData, v.gChar, v.gColor = 0, 0, 0
	v.gPrevData, v.gPrevChar, v.gPrevColor = 0, 0, 0
	v.gNextData, v.gNextChar, v.gNextColor = 0, 0, 0
	v.mainBorderFF = true
	v.vertBorderFF = true
	v.ba = true
	v.aec = true
	v.pipe.Clear()
	v.sprites = [8]sprite{}
	for i := range v.sprites {
		// the Y-expansion flip-flop idles set while expansion is off
		v.sprites[i].expandYFF = true
	}
	v.ctrl1, v.ctrl2, v.memPtrs = 0, 0, 0
	v.irr, v.imr = 0, 0
	v.rasterCmp = 0
	v.spritePriority, v.spriteMCFlags, v.spriteExpandY, v.spriteExpandX = 0, 0, 0, 0
	v.spSpCollision, v.spBgCollision = 0, 0
	v.borderColor = 14
	v.bgColor = [4]uint8{6, 0, 0, 0}
	if v.assertIRQ != nil {
		v.assertIRQ(false)
	}
}

// BA reports the chip's bus-available line, which the scheduler feeds into
// the CPU's RdyFlg. It goes low (false) 3 cycles before the first DMA
// access of a steal (sprite DMA or bad-line c-access), per the recorded
// open-question decision.
func (v *VIC) BA() bool {
	return v.ba
}

// FrameCount reports how many complete frames have been rendered since
// the VIC was constructed; Reset does not clear it. The scheduler compares successive values to detect the
// frame boundary and publish the finished buffer through display.Swap.
func (v *VIC) FrameCount() uint64 {
	return v.frameCount
}

// RasterLine reports the current raster line, for the debugger.
func (v *VIC) RasterLine() int {
	return v.rasterY
}

// denEnabled reports whether the display is enabled (ctrl1 bit 4).
func (v *VIC) denEnabled() bool {
	return v.ctrl1&0x10 != 0
}

func (v *VIC) rowSelect25() bool {
	return v.ctrl1&0x08 != 0
}

func (v *VIC) colSelect40() bool {
	return v.ctrl2&0x08 != 0
}

func (v *VIC) yScroll() int {
	return int(v.ctrl1 & 0x07)
}

func (v *VIC) xScroll() int {
	return int(v.ctrl2 & 0x07)
}

func (v *VIC) ecm() bool { return v.ctrl1&0x40 != 0 }
func (v *VIC) bmm() bool { return v.ctrl1&0x20 != 0 }
func (v *VIC) mcm() bool { return v.ctrl2&0x10 != 0 }

func (v *VIC) rasterCompareLine() int {
	hi := 0
	if v.ctrl1&0x80 != 0 {
		hi = 0x100
	}
	return hi | int(v.rasterCmp)
}

// videoMatrixBase and charBase decode $D018.
func (v *VIC) videoMatrixBase() uint16 { return uint16(v.memPtrs&0xf0) << 6 }
func (v *VIC) charBase() uint16        { return uint16(v.memPtrs&0x0e) << 10 }

// isBadLineCandidate implements the badline predicate: Y in [$30,$F7]
// and (Y & 7) == yscroll and display enabled this frame (DEN latched at
// raster $30).
func (v *VIC) isBadLineCandidate() bool {
	return v.rasterY >= 0x30 && v.rasterY <= 0xf7 && (v.rasterY&0x07) == v.yScroll() && v.denLatch
}

// Tick advances the chip by exactly one master cycle, performing in
// fixed order: the ϕ2.5 fetch completion, the ϕ1 frame/draw logic, the
// ϕ1.3 fetch start, the ϕ2.1 raster IRQ check, the ϕ2.2 sprite logic,
// the ϕ2.3 VC/RC logic and the ϕ2.4 BA logic.
func (v *VIC) Tick() {
	v.pipe.Tick()

	if v.rasterY == 0x30 && v.cycle == 1 {
		v.denLatch = v.denEnabled()
	}
	if v.cycle == 1 {
		v.badLine = v.isBadLineCandidate()
		if v.badLine {
			v.displayState = true
		}
	}
	// DEN arriving mid-frame can still convert the current line
	if !v.denLatch && v.rasterY >= 0x30 && v.rasterY <= 0xf7 && v.denEnabled() {
		v.denLatch = true
		v.badLine = v.isBadLineCandidate()
		if v.badLine {
			v.displayState = true
		}
	}

	v.completeFetch()
	v.draw()
	v.startFetch()
	v.checkRasterIRQ()
	v.spriteLogic()
	v.vcrcLogic()
	v.baLogic()

	v.cycle++
	v.xCounter += 8
	if v.cycle > v.region.cyclesPerLine {
		v.cycle = 1
		v.rasterY++
		v.xCounter = 0
		if v.rasterY >= v.region.linesPerFrame {
			v.rasterY = 0
			v.frameCount++
			v.frame = nil // caller republishes via SetFrame for the next frame
		}
	}
}

// completeFetch finishes whatever access startFetch began on the previous
// cycle (the ϕ2.5 fetch): the graphics byte fetched during the
// previous cycle becomes the chunk drawn during this one.
func (v *VIC) completeFetch() {
	v.gPrevData, v.gPrevChar, v.gPrevColor = v.gData, v.gChar, v.gColor
	v.gData, v.gChar, v.gColor = v.gNextData, v.gNextChar, v.gNextColor
}

// startFetch begins the appropriate memory access for this cycle: the
// ϕ1 g-access producing the next 8-pixel chunk's graphics
// byte (or the idle fetch from $3FFF), then the ϕ2 c-access during a bad
// line's character-fetch window.
func (v *VIC) startFetch() {
	if v.displayState && v.cycle >= 16 && v.cycle <= 55 {
		col := v.vmli
		if col > 39 {
			col = 39
		}
		v.gNextChar = v.vmBuf[col]
		v.gNextColor = v.vmColorBuf[col]
		v.gNextData = v.mem.Fetch(v.gAccessAddress(v.gNextChar))
		v.vc = (v.vc + 1) & 0x3ff
		if v.vmli < 40 {
			v.vmli++
		}
	} else {
		idle := uint16(0x3fff)
		if v.ecm() {
			idle = 0x39ff
		}
		v.gNextData = v.mem.Fetch(idle)
		v.gNextChar, v.gNextColor = 0, 0
	}
	v.lastDataBus = v.gNextData

	if v.badLine && v.cycle >= 15 && v.cycle <= 54 && v.vmli < 40 {
		v.vmBuf[v.vmli] = v.mem.Fetch(v.videoMatrixBase() + uint16(v.vc))
		v.vmColorBuf[v.vmli] = v.colorRAM.Read(uint16(v.vc)) & 0x0f
	}
}

// gAccessAddress computes the graphics-data fetch address for the current
// display column: character generator data in the text modes, the bitmap
// in the bitmap modes. ECM forces address lines 9 and 10 low.
func (v *VIC) gAccessAddress(charCode uint8) uint16 {
	var addr uint16
	if v.bmm() {
		addr = (uint16(v.memPtrs&0x08) << 10) | uint16(v.vc)<<3 | uint16(v.rc)
	} else {
		addr = v.charBase() | uint16(charCode)<<3 | uint16(v.rc)
	}
	if v.ecm() {
		addr &^= 0x0600
	}
	return addr
}

// checkRasterIRQ is edge-triggered on the first cycle of the line
// matching the raster compare register.
func (v *VIC) checkRasterIRQ() {
	if v.cycle != 1 {
		return
	}
	if v.rasterY == v.rasterCompareLine() {
		v.latch(irqRaster)
	}
}

const (
	irqRaster   = 0x01
	irqSpriteBg = 0x02
	irqSpriteSp = 0x04
	irqLightpen = 0x08
)

// latch sets an interrupt source and, if masked in, schedules the IRQ
// line assertion for the next cycle.
func (v *VIC) latch(source uint8) {
	first := v.irr&source == 0
	v.irr |= source
	if v.imr&source != 0 && first {
		v.pipe.Schedule(0, func() {
			v.irr |= 0x80
			if v.assertIRQ != nil {
				v.assertIRQ(true)
			}
		}, "vic irq")
	}
}

// vcrcLogic reloads VC on cycle 14 (row start) and makes the RC
// increment / idle-state decision on cycle 58.
func (v *VIC) vcrcLogic() {
	switch v.cycle {
	case 14:
		v.vc = v.vcbase
		v.vmli = 0
		if v.badLine {
			v.rc = 0
		}
	case 58:
		if v.rc == 7 {
			v.vcbase = v.vc
			if !v.badLine {
				v.displayState = false
			}
		}
		if v.displayState {
			v.rc = (v.rc + 1) & 0x07
		}
	}
}

// baLogic drives BA low (false) 3 cycles before the first DMA access of
// a steal. Bad-line c-accesses run cycles 15-54, so BA
// drops at cycle 12; the sprite windows are derived from each sprite's
// p-access slot.
func (v *VIC) baLogic() {
	steal := false
	if v.badLine && v.cycle >= 12 && v.cycle <= 54 {
		steal = true
	}
	if v.spriteBAWindow() {
		steal = true
	}
	v.ba = !steal
	v.aec = !steal
}
