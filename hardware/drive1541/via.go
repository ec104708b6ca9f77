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

package drive1541

import (
	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
)

// Port mirrors cia.Port: the external contribution to one of the VIA's
// 8-bit ports, sampled with the bits the VIA's own data register and DDR
// are currently driving.
type Port interface {
	Sample(driven uint8, ddr uint8) uint8
}

// PortWriter is implemented by Ports that need to observe output changes
// as they happen rather than at the next Sample: the IEC bus lines and the
// disk mechanism both react to the write itself (stepping the head, or
// yanking a bus line), not to a later read of the port.
type PortWriter interface {
	Update(driven uint8, ddr uint8)
}

type floatingHigh struct{}

func (floatingHigh) Sample(uint8, uint8) uint8 { return 0xff }

// VIA register offsets, relative to the chip's base address. Both 1541
// VIAs share this layout.
const (
	regORB = iota
	regORA
	regDDRB
	regDDRA
	regT1CL
	regT1CH
	regT1LL
	regT1LH
	regT2CL
	regT2CH
	regSR
	regACR
	regPCR
	regIFR
	regIER
	regORANH
)

// IFR/IER bits.
const (
	ifrCA2 = 0x01
	ifrCA1 = 0x02
	ifrSR  = 0x04
	ifrCB2 = 0x08
	ifrCB1 = 0x10
	ifrT2  = 0x20
	ifrT1  = 0x40
	ifrIRQ = 0x80
)

// VIA models one 6522 Versatile Interface Adapter as wired into a 1541:
// two 8-bit I/O ports, a free-running/one-shot 16-bit timer (T1), a
// cycle-down-only T2, and an 8-bit shift register used by VIA2 for
// GCR byte transfer. The CA1/CB1 edge-triggered latch inputs are driven
// externally (by the disk's byte-ready line, or by the IEC bus) via
// SetCA1/SetCB1.
type VIA struct {
	PortA Port
	PortB Port

	assertIRQ func(bool)

	ora, orb   uint8
	ddra, ddrb uint8

	t1c, t1l uint16
	t2c      uint16
	t2l      uint8

	sr uint8

	acr, pcr uint8
	ifr, ier uint8

	ca1 bool
	cb1 bool

	t1Armed bool
	t2Armed bool
}

// NewVIA constructs a VIA. assertIRQ is called with true/false as
// IFR&IER becomes non-zero/zero; the caller wires this into the 1541
// CPU's own IRQ line.
func NewVIA(assertIRQ func(bool)) *VIA {
	v := &VIA{PortA: floatingHigh{}, PortB: floatingHigh{}, assertIRQ: assertIRQ}
	v.Reset()
	return v
}

// Reset restores power-on state.
func (v *VIA) Reset() {
	v.ora, v.orb = 0, 0
	v.ddra, v.ddrb = 0, 0
	v.t1c, v.t1l = 0xffff, 0xffff
	v.t2c, v.t2l = 0xffff, 0xff
	v.sr = 0
	v.acr, v.pcr = 0, 0
	v.ifr, v.ier = 0, 0
	v.ca1 = false
	v.cb1 = false
	v.t1Armed, v.t2Armed = false, false
	if v.assertIRQ != nil {
		v.assertIRQ(false)
	}
}

// readPortA/readPortB compose the external Port's contribution with the
// VIA's own driven output bits, exactly as cia.CIA does.
func (v *VIA) readPortA() uint8 {
	driven := v.ora
	ext := uint8(0xff)
	if v.PortA != nil {
		ext = v.PortA.Sample(driven, v.ddra)
	}
	return (driven & v.ddra) | (ext &^ v.ddra)
}

func (v *VIA) readPortB() uint8 {
	driven := v.orb
	ext := uint8(0xff)
	if v.PortB != nil {
		ext = v.PortB.Sample(driven, v.ddrb)
	}
	return (driven & v.ddrb) | (ext &^ v.ddrb)
}

// Execute advances the timers by one cycle, called once per master cycle
// by the drive alongside its CPU.
func (v *VIA) Execute() {
	if v.t1c == 0 {
		v.underflowT1()
	} else {
		v.t1c--
	}

	if v.acr&0x20 == 0 { // T2 in one-shot (timed interrupt) mode, not pulse-counting
		if v.t2c == 0 {
			v.underflowT2()
		} else {
			v.t2c--
		}
	}

}

func (v *VIA) ca1Edge() bool { return v.pcr&0x01 != 0 } // 1 = rising edge active
func (v *VIA) cb1Edge() bool { return v.pcr&0x10 != 0 }

func (v *VIA) underflowT1() {
	v.setInterrupt(ifrT1)
	if v.acr&0x40 != 0 { // free-run
		v.t1c = v.t1l
	} else if !v.t1Armed {
		v.t1c = 0xffff
	} else {
		v.t1c = v.t1l
		v.t1Armed = false
	}
}

func (v *VIA) underflowT2() {
	v.setInterrupt(ifrT2)
	v.t2c = 0xffff
}

func (v *VIA) setInterrupt(bit uint8) {
	if v.ifr&bit != 0 {
		return
	}
	v.ifr |= bit
	if v.ier&bit != 0 {
		v.ifr |= ifrIRQ
		if v.assertIRQ != nil {
			v.assertIRQ(true)
		}
	}
}

// SetCA1 and SetCB1 drive the VIA's edge-sensitive control inputs, used
// by the disk mechanism (byte-ready on VIA2's CA1) and the IEC wiring
// (ATN on VIA1's CA1). The edge is recognised at the transition itself,
// so even a pulse shorter than one Execute period latches its interrupt.
func (v *VIA) SetCA1(level bool) {
	if level == v.ca1 {
		return
	}
	v.ca1 = level
	if level == v.ca1Edge() {
		v.setInterrupt(ifrCA1)
	}
}

func (v *VIA) SetCB1(level bool) {
	if level == v.cb1 {
		return
	}
	v.cb1 = level
	if level == v.cb1Edge() {
		v.setInterrupt(ifrCB1)
	}
}

// ShiftRegister returns the current SR contents, for the disk mechanism
// to inspect in shift-register-disabled ("free running") mode where the
// drive ROM polls SR directly rather than waiting for the SR-full
// interrupt.
func (v *VIA) ShiftRegister() uint8 { return v.sr }

// ORA returns the port A output register, which on VIA2 holds the byte
// the DOS wants written to disk while the head is in write mode.
func (v *VIA) ORA() uint8 { return v.ora }

// CB2ManualLow reports whether the PCR holds CB2 in manual low output
// mode, which on VIA2 is the read/write head control: low selects write.
func (v *VIA) CB2ManualLow() bool { return v.pcr&0xe0 == 0xc0 }

// LoadShiftRegister is called by the disk mechanism to deliver the next
// GCR byte read from the rotating disk.
func (v *VIA) LoadShiftRegister(b uint8) {
	v.sr = b
	v.setInterrupt(ifrSR)
}

// pushPortB notifies a PortWriter PortB of the freshly driven output
// bits. Only bits the DDR marks as outputs count as driven; a floating
// pin asserts nothing.
func (v *VIA) pushPortB() {
	if w, ok := v.PortB.(PortWriter); ok {
		w.Update(v.orb&v.ddrb, v.ddrb)
	}
}

func (v *VIA) pushPortA() {
	if w, ok := v.PortA.(PortWriter); ok {
		w.Update(v.ora&v.ddra, v.ddra)
	}
}

// ChipWrite implements bus.ChipBus.
func (v *VIA) ChipWrite(offset uint16, data uint8) {
	switch offset & 0x0f {
	case regORB:
		v.orb = data
		v.pushPortB()
	case regORA, regORANH:
		v.ora = data
		v.pushPortA()
	case regDDRB:
		v.ddrb = data
		v.pushPortB()
	case regDDRA:
		v.ddra = data
		v.pushPortA()
	case regT1CL:
		v.t1l = (v.t1l & 0xff00) | uint16(data)
	case regT1CH:
		v.t1l = (v.t1l & 0x00ff) | uint16(data)<<8
		v.t1c = v.t1l
		v.t1Armed = true
		v.ifr &^= ifrT1
	case regT1LL:
		v.t1l = (v.t1l & 0xff00) | uint16(data)
	case regT1LH:
		v.t1l = (v.t1l & 0x00ff) | uint16(data)<<8
		v.ifr &^= ifrT1
	case regT2CL:
		v.t2l = data
	case regT2CH:
		v.t2c = uint16(v.t2l) | uint16(data)<<8
		v.ifr &^= ifrT2
	case regSR:
		v.sr = data
	case regACR:
		v.acr = data
	case regPCR:
		v.pcr = data
	case regIFR:
		v.ifr &^= data & 0x7f
		if v.ifr&v.ier&0x7f == 0 {
			v.ifr = 0
			if v.assertIRQ != nil {
				v.assertIRQ(false)
			}
		}
	case regIER:
		if data&0x80 != 0 {
			v.ier |= data &^ 0x80
		} else {
			v.ier &^= data
		}
	}
}

// ChipReadRegister implements bus.ChipBus.
func (v *VIA) ChipReadRegister(offset uint16) uint8 {
	switch offset & 0x0f {
	case regORB:
		return v.readPortB()
	case regORA, regORANH:
		return v.readPortA()
	case regDDRB:
		return v.ddrb
	case regDDRA:
		return v.ddra
	case regT1CL:
		v.ifr &^= ifrT1
		return uint8(v.t1c)
	case regT1CH:
		return uint8(v.t1c >> 8)
	case regT1LL:
		return uint8(v.t1l)
	case regT1LH:
		return uint8(v.t1l >> 8)
	case regT2CL:
		v.ifr &^= ifrT2
		return uint8(v.t2c)
	case regT2CH:
		return uint8(v.t2c >> 8)
	case regSR:
		v.ifr &^= ifrSR
		return v.sr
	case regACR:
		return v.acr
	case regPCR:
		return v.pcr
	case regIFR:
		return v.ifr
	case regIER:
		return v.ier | 0x80
	}
	return 0xff
}

// ChipRead implements bus.ChipBus.
func (v *VIA) ChipRead() (bool, bus.ChipData) {
	return false, bus.ChipData{}
}

// LastReadRegister implements bus.ChipBus. VIAs aren't individually named
// in the address symbol tables, so this always returns an empty string.
func (v *VIA) LastReadRegister() string {
	return ""
}

// Peek implements bus.DebuggerBus. The interrupt flags a CPU read would
// clear are left as they were.
func (v *VIA) Peek(offset uint16) (uint8, error) {
	ifr := v.ifr
	data := v.ChipReadRegister(offset)
	v.ifr = ifr
	return data, nil
}

// Poke implements bus.DebuggerBus.
func (v *VIA) Poke(offset uint16, data uint8) error {
	v.ChipWrite(offset, data)
	return nil
}
