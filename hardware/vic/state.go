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
	"encoding/gob"

	"github.com/dirkwhoffmann/go64/hardware/memory/addresses"
	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
)

// ChipWrite implements bus.ChipBus. Offsets are register numbers from
// $D000, mirrored every 64 bytes across $D000-$D3FF as real hardware
// does; ChipWrite masks the offset to 6 bits itself.
func (v *VIC) ChipWrite(offset uint16, data uint8) {
	offset &= 0x3f
	v.lastRegister = addresses.VICWriteSymbols[offset]

	switch offset {
	case 0x00, 0x02, 0x04, 0x06, 0x08, 0x0a, 0x0c, 0x0e:
		n := offset / 2
		v.sprites[n].x = (v.sprites[n].x &^ 0xff) | int(data)
	case 0x01, 0x03, 0x05, 0x07, 0x09, 0x0b, 0x0d, 0x0f:
		n := offset / 2
		v.sprites[n].y = int(data)
	case 0x10: // MSIGX: bit n is sprite n's 9th X bit
		for n := range v.sprites {
			hi := data&(1<<uint(n)) != 0
			if hi {
				v.sprites[n].x |= 0x100
			} else {
				v.sprites[n].x &^= 0x100
			}
		}
	case 0x11:
		// control registers propagate through the delayed-register pipe:
		// the write takes effect at the start of the next cycle, not
		// within the chunk currently being drawn
		v.pipe.Schedule(0, func() { v.ctrl1 = data }, "vic ctrl1")
	case 0x12:
		v.rasterCmp = data
	case 0x15:
		for n := range v.sprites {
			v.sprites[n].enabled = data&(1<<uint(n)) != 0
		}
	case 0x16:
		v.pipe.Schedule(0, func() { v.ctrl2 = data }, "vic ctrl2")
	case 0x17:
		v.spriteExpandY = data
		for n := range v.sprites {
			s := &v.sprites[n]
			s.expandY = data&(1<<uint(n)) != 0
			// the expansion flip-flop is held set while expansion is off
			if !s.expandY {
				s.expandYFF = true
			}
		}
	case 0x18:
		v.pipe.Schedule(0, func() { v.memPtrs = data }, "vic memptrs")
	case 0x19:
		// writing 1 to a bit clears the corresponding latched source
		v.irr &^= data & 0x0f
		if v.irr&v.imr&0x0f == 0 {
			v.irr &^= 0x80
			if v.assertIRQ != nil {
				v.assertIRQ(false)
			}
		}
	case 0x1a:
		v.imr = data & 0x0f
	case 0x1b:
		v.spritePriority = data
		for n := range v.sprites {
			v.sprites[n].priority = data&(1<<uint(n)) != 0
		}
	case 0x1c:
		v.spriteMCFlags = data
		for n := range v.sprites {
			v.sprites[n].multicolor = data&(1<<uint(n)) != 0
		}
	case 0x1d:
		v.spriteExpandX = data
		for n := range v.sprites {
			v.sprites[n].expandX = data&(1<<uint(n)) != 0
		}
	case 0x1e, 0x1f:
		// read-only, writes ignored
	case 0x20:
		v.borderColor = data & 0x0f
	case 0x21, 0x22, 0x23, 0x24:
		v.bgColor[offset-0x21] = data & 0x0f
	case 0x25:
		v.spriteMC0 = data & 0x0f
	case 0x26:
		v.spriteMC1 = data & 0x0f
	default:
		if offset >= 0x27 && offset <= 0x2e {
			v.sprites[offset-0x27].color = data & 0x0f
		}
	}
}

// ChipReadRegister implements bus.ChipBus.
func (v *VIC) ChipReadRegister(offset uint16) uint8 {
	offset &= 0x3f
	switch offset {
	case 0x00, 0x02, 0x04, 0x06, 0x08, 0x0a, 0x0c, 0x0e:
		return uint8(v.sprites[offset/2].x)
	case 0x01, 0x03, 0x05, 0x07, 0x09, 0x0b, 0x0d, 0x0f:
		return uint8(v.sprites[offset/2].y)
	case 0x10:
		var b uint8
		for n := range v.sprites {
			if v.sprites[n].x&0x100 != 0 {
				b |= 1 << uint(n)
			}
		}
		return b
	case 0x11:
		b := v.ctrl1 & 0x7f
		if v.rasterY&0x100 != 0 {
			b |= 0x80
		}
		return b
	case 0x12:
		return uint8(v.rasterY)
	case 0x15:
		var b uint8
		for n := range v.sprites {
			if v.sprites[n].enabled {
				b |= 1 << uint(n)
			}
		}
		return b
	case 0x16:
		return v.ctrl2 | 0xc0
	case 0x17:
		return v.spriteExpandY
	case 0x18:
		return v.memPtrs | 0x01
	case 0x19:
		return v.irr | 0x70
	case 0x1a:
		return v.imr | 0xf0
	case 0x1b:
		return v.spritePriority
	case 0x1c:
		return v.spriteMCFlags
	case 0x1d:
		return v.spriteExpandX
	case 0x1e:
		b := v.spSpCollision
		v.spSpCollision = 0
		return b
	case 0x1f:
		b := v.spBgCollision
		v.spBgCollision = 0
		return b
	case 0x20:
		return v.borderColor | 0xf0
	case 0x21, 0x22, 0x23, 0x24:
		return v.bgColor[offset-0x21] | 0xf0
	case 0x25:
		return v.spriteMC0 | 0xf0
	case 0x26:
		return v.spriteMC1 | 0xf0
	}
	if offset >= 0x27 && offset <= 0x2e {
		return v.sprites[offset-0x27].color | 0xf0
	}
	return 0xff
}

// ChipRead implements bus.ChipBus. Nothing downstream polls the VIC for
// "was this register written", so it always reports false.
func (v *VIC) ChipRead() (bool, bus.ChipData) {
	return false, bus.ChipData{}
}

// LastReadRegister implements bus.ChipBus.
func (v *VIC) LastReadRegister() string {
	return v.lastRegister
}

// LastDataBus returns the VIC's internal data bus latch, which colour
// RAM's floating high nibble is wired to read (Open Questions decision:
// unconnected bits read back whatever the VIC last put on the bus).
func (v *VIC) LastDataBus() uint8 {
	return v.lastDataBus
}

// Peek implements bus.DebuggerBus: reads the collision registers without
// their clear-on-read side effect.
func (v *VIC) Peek(offset uint16) (uint8, error) {
	offset &= 0x3f
	switch offset {
	case 0x1e:
		return v.spSpCollision, nil
	case 0x1f:
		return v.spBgCollision, nil
	}
	return v.ChipReadRegister(offset), nil
}

// Poke implements bus.DebuggerBus.
func (v *VIC) Poke(offset uint16, value uint8) error {
	v.ChipWrite(offset, value)
	return nil
}

// state is the snapshot-serialisable subset of VIC fields.
type state struct {
	RasterY, Cycle, XCounter       int
	VC, VCBase, RC, VMLI           int
	BadLine, MainBorderFF, VertFF  bool
	DisplayState, DenLatch         bool
	GData, GChar, GColor           uint8
	Ctrl1, Ctrl2, MemPtrs          uint8
	IRR, IMR, RasterCmp            uint8
	SpritePriority, SpriteMC       uint8
	SpriteExpandY, SpriteExpandX   uint8
	SpSpCollision, SpBgCollision   uint8
	BorderColor                    uint8
	BgColor                        [4]uint8
	SpriteMC0, SpriteMC1           uint8
	Sprites                        [8]spriteSnap
	VMBuf, VMColorBuf              [40]uint8
}

func init() {
	gob.Register(state{})
}

// spriteSnap mirrors sprite with every field exported, so the snapshot
// package's gob encoding of a state value (which only sees exported
// struct fields) doesn't silently drop sprite state on a round trip to
// disk.
type spriteSnap struct {
	X, Y                                   int
	Enabled                                bool
	Color                                  uint8
	ExpandX, ExpandY, ExpandYFF            bool
	Multicolor, Priority                   bool
	DMA, Display                           bool
	MC, MCBase                             uint8
	Pointer                                uint16
	Shift                                  [3]uint8
}

func (s sprite) snap() spriteSnap {
	return spriteSnap{
		s.x, s.y, s.enabled, s.color,
		s.expandX, s.expandY, s.expandYFF,
		s.multicolor, s.priority,
		s.dma, s.display,
		s.mc, s.mcbase, s.pointer, s.shift,
	}
}

func (s spriteSnap) unsnap() sprite {
	return sprite{
		x: s.X, y: s.Y, enabled: s.Enabled, color: s.Color,
		expandX: s.ExpandX, expandY: s.ExpandY, expandYFF: s.ExpandYFF,
		multicolor: s.Multicolor, priority: s.Priority,
		dma: s.DMA, display: s.Display,
		mc: s.MC, mcbase: s.MCBase, pointer: s.Pointer, shift: s.Shift,
	}
}

// SaveState returns a serialisable snapshot of the VIC's registers,
// raster, border, display and sprite state. It does not capture the
// graphics sequencer's look-ahead latches (gPrev*/gNext*), the BA and AEC
// lines, the last data-bus byte or the frame counter, and RestoreState
// discards register writes still waiting in the pipe.
func (v *VIC) SaveState() interface{} {
	var sprites [8]spriteSnap
	for i, s := range v.sprites {
		sprites[i] = s.snap()
	}
	return state{
		RasterY: v.rasterY, Cycle: v.cycle, XCounter: v.xCounter,
		VC: v.vc, VCBase: v.vcbase, RC: v.rc, VMLI: v.vmli,
		BadLine: v.badLine, MainBorderFF: v.mainBorderFF, VertFF: v.vertBorderFF,
		DisplayState: v.displayState, DenLatch: v.denLatch,
		GData: v.gData, GChar: v.gChar, GColor: v.gColor,
		Ctrl1: v.ctrl1, Ctrl2: v.ctrl2, MemPtrs: v.memPtrs,
		IRR: v.irr, IMR: v.imr, RasterCmp: v.rasterCmp,
		SpritePriority: v.spritePriority, SpriteMC: v.spriteMCFlags,
		SpriteExpandY: v.spriteExpandY, SpriteExpandX: v.spriteExpandX,
		SpSpCollision: v.spSpCollision, SpBgCollision: v.spBgCollision,
		BorderColor: v.borderColor,
		BgColor:     v.bgColor,
		SpriteMC0:   v.spriteMC0, SpriteMC1: v.spriteMC1,
		Sprites: sprites,
		VMBuf:   v.vmBuf, VMColorBuf: v.vmColorBuf,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (v *VIC) RestoreState(s interface{}) bool {
	st, ok := s.(state)
	if !ok {
		return false
	}
	v.rasterY, v.cycle, v.xCounter = st.RasterY, st.Cycle, st.XCounter
	v.vc, v.vcbase, v.rc, v.vmli = st.VC, st.VCBase, st.RC, st.VMLI
	v.badLine, v.mainBorderFF, v.vertBorderFF = st.BadLine, st.MainBorderFF, st.VertFF
	v.displayState, v.denLatch = st.DisplayState, st.DenLatch
	v.gData, v.gChar, v.gColor = st.GData, st.GChar, st.GColor
	v.ctrl1, v.ctrl2, v.memPtrs = st.Ctrl1, st.Ctrl2, st.MemPtrs
	v.irr, v.imr, v.rasterCmp = st.IRR, st.IMR, st.RasterCmp
	v.spritePriority, v.spriteMCFlags = st.SpritePriority, st.SpriteMC
	v.spriteExpandY, v.spriteExpandX = st.SpriteExpandY, st.SpriteExpandX
	v.spSpCollision, v.spBgCollision = st.SpSpCollision, st.SpBgCollision
	v.borderColor = st.BorderColor
	v.bgColor = st.BgColor
	v.spriteMC0, v.spriteMC1 = st.SpriteMC0, st.SpriteMC1
	for i, s := range st.Sprites {
		v.sprites[i] = s.unsnap()
	}
	v.vmBuf, v.vmColorBuf = st.VMBuf, st.VMColorBuf
	v.pipe.Clear()
	return true
}
