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

// Package cia implements the two 6526 Complex Interface Adapter chips: I/O
// ports, two 16-bit interval timers, a time-of-day clock and a serial
// shift register, each wired to a different interrupt line (CIA1 to the
// CPU's IRQ, CIA2 to NMI). Register-write side effects that take effect
// one cycle later than the write itself are modelled with the pipeline
// package, the same delay-pipe idiom the VIC's register pipeline uses:
// cycle-exact without a priority queue.
package cia

import (
	"encoding/gob"

	"github.com/dirkwhoffmann/go64/hardware/memory/addresses"
	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
	"github.com/dirkwhoffmann/go64/hardware/pipeline"
)

// Port is the external (non-CPU) contribution to one of a CIA's 8-bit I/O
// ports: the keyboard matrix and joysticks for CIA1, the VIC bank select
// and IEC lines for CIA2. driven is the bits the CIA's own data register
// and DDR are currently asserting on the other port, needed because the
// keyboard matrix is scanned by driving one port and reading the other.
type Port interface {
	Sample(driven uint8, ddr uint8) uint8
}

// PortWriter is implemented by Ports that must observe output changes as
// the register write happens rather than at the next read: CIA2's port A
// drives the IEC bus and the VIC bank select, both of which react to the
// write itself.
type PortWriter interface {
	Update(driven uint8, ddr uint8)
}

// floatingHigh is the default Port when none is plugged in: every external
// bit reads as a pulled-up 1.
type floatingHigh struct{}

func (floatingHigh) Sample(uint8, uint8) uint8 { return 0xff }

// control register bits shared by CRA and CRB.
const (
	crStart     = 0x01
	crPBOn      = 0x02 // PB6/PB7 toggles on underflow (not modelled as an output pin here)
	crOneShot   = 0x08
	crForceLoad = 0x10
	crInMode    = 0x20 // CRA: 0=phi2 1=CNT; CRB: bits 5-6 select mode
	crInModeHi  = 0x40
	crTODFreq   = 0x80 // CRA bit 7: TOD clock divider 50/60Hz
)

// ICR bits.
const (
	icrTA    = 0x01
	icrTB    = 0x02
	icrAlarm = 0x04
	icrSP    = 0x08
	icrFlag  = 0x10
	icrIR    = 0x80 // set on read when any latched source fired; set on write as the SET/CLEAR selector
)

// CIA models one 6526. assertLine is called (edge, level held until ICR is read)
// whenever the chip's own interrupt line should assert; the scheduler
// wires CIA1's to the CPU's IRQ line and CIA2's to NMI.
type CIA struct {
	PortA Port
	PortB Port

	assertLine func(bool)

	pra, prb   uint8
	ddra, ddrb uint8

	ta, tb           uint16
	taLatch, tbLatch uint16
	cra, crb         uint8

	// taUnderflowed marks that timer A underflowed on the current cycle;
	// timer B consumes it when counting TA underflows (CRB modes 2/3).
	// Without the edge flag, TB would miss every underflow: TA reloads
	// from its latch in the same cycle it underflows.
	taUnderflowed bool

	sdr uint8

	icr uint8 // latched, cleared on read
	imr uint8 // mask

	todTenths, todSec, todMin, todHour uint8
	todAlarmTenths, todAlarmSec, todAlarmMin, todAlarmHour uint8
	todLatched                                             bool
	todLatch                                               [4]uint8
	todHoldWrite                                           bool
	todSubCycle                                            int

	pipe pipeline.Pipeline

	lastRegister string
}

// New constructs a CIA. assertLine is called with true when the chip's
// interrupt output should go low (active) and false when it is released;
// it is the scheduler's job to OR this into the CPU's IRQ/NMI line.
func New(assertLine func(bool)) *CIA {
	c := &CIA{
		PortA:      floatingHigh{},
		PortB:      floatingHigh{},
		assertLine: assertLine,
	}
	c.Reset()
	return c
}

// Reset restores power-on state: timers stopped, ports floating, ICR/IMR
// clear.
func (c *CIA) Reset() {
	c.pra, c.prb = 0, 0
	c.ddra, c.ddrb = 0, 0
	c.ta, c.tb = 0xffff, 0xffff
	c.taLatch, c.tbLatch = 0xffff, 0xffff
	c.cra, c.crb = 0, 0
	c.sdr = 0
	c.icr, c.imr = 0, 0
	c.todTenths, c.todSec, c.todMin, c.todHour = 0, 0, 0, 0
	c.todAlarmTenths, c.todAlarmSec, c.todAlarmMin, c.todAlarmHour = 0, 0, 0, 0
	c.todLatched = false
	c.todHoldWrite = false
	c.todSubCycle = 0
	c.pipe.Clear()
	if c.assertLine != nil {
		c.assertLine(false)
	}
}

// readPortA/readPortB implement the (pra&ddr)|(external&~ddr) composition,
// with the cross-port driven bits passed through so a keyboard
// Port can tell which columns/rows are being scanned.
func (c *CIA) readPortA() uint8 {
	driven := c.pra & c.ddra
	return driven | (c.PortA.Sample(c.prb&c.ddrb, c.ddrb) &^ c.ddra)
}

func (c *CIA) readPortB() uint8 {
	driven := c.prb & c.ddrb
	return driven | (c.PortB.Sample(c.pra&c.ddra, c.ddra) &^ c.ddrb)
}

// pushPortA and pushPortB notify a PortWriter of freshly driven output
// bits; floating pins assert nothing.
func (c *CIA) pushPortA() {
	if w, ok := c.PortA.(PortWriter); ok {
		w.Update(c.pra&c.ddra, c.ddra)
	}
}

func (c *CIA) pushPortB() {
	if w, ok := c.PortB.(PortWriter); ok {
		w.Update(c.prb&c.ddrb, c.ddrb)
	}
}

// Execute advances the chip by one master (ϕ2) cycle: decrements running
// timers, ticks TOD, and runs any pipelined register side effects
// scheduled by the previous cycle's register writes.
func (c *CIA) Execute() {
	c.pipe.Tick()

	c.taUnderflowed = false
	c.tickTimerA()
	c.tickTimerB()
	c.tickTOD()
}

func (c *CIA) tickTimerA() {
	if c.cra&crStart == 0 {
		return
	}
	// CRA bit 5: 0 = count phi2 cycles, 1 = count CNT pulses (unmodelled:
	// no CNT source in this core, so mode 1 never counts).
	if c.cra&crInMode != 0 {
		return
	}
	c.countDownA()
}

// countDownA decrements TA and handles underflow, setting taUnderflowed so
// that tickTimerB's "count TA underflows" modes can count the same edge.
func (c *CIA) countDownA() bool {
	if c.ta == 0 {
		c.reloadA()
		c.underflowA()
		c.taUnderflowed = true
		return true
	}
	c.ta--
	return false
}

func (c *CIA) reloadA() {
	c.ta = c.taLatch
}

func (c *CIA) underflowA() {
	if c.cra&crOneShot != 0 {
		c.cra &^= crStart
	}
	c.setInterrupt(icrTA)
}

func (c *CIA) tickTimerB() {
	if c.crb&crStart == 0 {
		return
	}

	mode := (c.crb >> 5) & 0x03
	switch mode {
	case 0: // count phi2
		c.countDownB()
	case 1: // count CNT pulses (unmodelled)
	case 2, 3:
		// count TA underflows; mode 3 additionally requires CNT high,
		// and CNT floats high with nothing driving it
		if c.taUnderflowed {
			c.countDownB()
		}
	}
}

func (c *CIA) countDownB() {
	if c.tb == 0 {
		c.tb = c.tbLatch
		if c.crb&crOneShot != 0 {
			c.crb &^= crStart
		}
		c.setInterrupt(icrTB)
		return
	}
	c.tb--
}

// setInterrupt latches source in ICR and, if its IMR bit is set, asserts
// the chip's interrupt line. The assertion itself is scheduled one cycle
// out via the pipeline, matching real 6526 behaviour where IRQ follows the
// timer underflow by a cycle.
func (c *CIA) setInterrupt(source uint8) {
	c.icr |= source
	if c.imr&source != 0 {
		c.pipe.Schedule(0, func() {
			c.icr |= icrIR
			if c.assertLine != nil {
				c.assertLine(true)
			}
		}, "cia irq")
	}
}

// tickTOD advances the BCD time-of-day clock at 1/10s resolution, derived
// from the phi2 clock: one tenth every 98525 cycles with CRA bit 7 set,
// every 118230 cycles with it clear (PAL clock rate in both cases).
func (c *CIA) tickTOD() {
	// the TOD pin is fed from the 50Hz PAL mains in this machine; the chip
	// divides it by 5 (CRA bit 7 set, 50Hz selected) or 6 (bit clear,
	// 60Hz assumed) to derive tenths. with a 50Hz supply and the 60Hz
	// divider the clock runs slow, exactly as on real hardware.
	div := 98525 // 5 mains periods at PAL's ~985249Hz ϕ2 rate
	if c.cra&crTODFreq == 0 {
		div = 118230 // 6 mains periods
	}

	c.todSubCycle++
	if c.todSubCycle < div {
		return
	}
	c.todSubCycle = 0

	if c.todHoldWrite {
		return
	}

	c.todTenths = bcdInc(c.todTenths, 9, func() {
		c.todSec = bcdInc(c.todSec, 0x59, func() {
			c.todMin = bcdInc(c.todMin, 0x59, func() {
				c.todHour = bcdIncHour(c.todHour)
			})
		})
	})

	if c.todTenths == c.todAlarmTenths && c.todSec == c.todAlarmSec &&
		c.todMin == c.todAlarmMin && c.todHour == c.todAlarmHour {
		c.setInterrupt(icrAlarm)
	}
}

func bcdInc(v uint8, max uint8, onWrap func()) uint8 {
	lo := v & 0x0f
	hi := v >> 4
	lo++
	if lo > 9 {
		lo = 0
		hi++
	}
	v = hi<<4 | lo
	if v > max {
		v = 0
		if onWrap != nil {
			onWrap()
		}
	}
	return v
}

// bcdIncHour wraps 12-hour BCD with bit 7 as AM/PM, the format the 6526
// and the KERNAL jiffy clock both use.
func bcdIncHour(v uint8) uint8 {
	pm := v & 0x80
	h := v & 0x7f
	lo := h & 0x0f
	hi := h >> 4
	lo++
	if lo > 9 {
		lo = 0
		hi++
	}
	h = hi<<4 | lo
	if h == 0x12 {
		pm ^= 0x80
	}
	if h > 0x12 {
		h = 0x01
	}
	return h | pm
}

// ChipWrite implements bus.ChipBus.
func (c *CIA) ChipWrite(offset uint16, data uint8) {
	c.lastRegister = addresses.CIAWriteSymbols[offset]

	switch addresses.ChipRegister(offset) {
	case addresses.PRA:
		c.pra = data
		c.pushPortA()
	case addresses.PRB:
		c.prb = data
		c.pushPortB()
	case addresses.DDRA:
		c.ddra = data
		c.pushPortA()
	case addresses.DDRB:
		c.ddrb = data
		c.pushPortB()
	case addresses.TALO:
		c.taLatch = (c.taLatch & 0xff00) | uint16(data)
	case addresses.TAHI:
		c.taLatch = (c.taLatch & 0x00ff) | uint16(data)<<8
		if c.cra&crStart == 0 {
			c.ta = c.taLatch
		}
	case addresses.TBLO:
		c.tbLatch = (c.tbLatch & 0xff00) | uint16(data)
	case addresses.TBHI:
		c.tbLatch = (c.tbLatch & 0x00ff) | uint16(data)<<8
		if c.crb&crStart == 0 {
			c.tb = c.tbLatch
		}
	case addresses.TOD10THS:
		if c.crb&0x80 != 0 {
			c.todAlarmTenths = data & 0x0f
		} else {
			c.todTenths = data & 0x0f
			c.todHoldWrite = false
		}
	case addresses.TODSEC:
		if c.crb&0x80 != 0 {
			c.todAlarmSec = data & 0x7f
		} else {
			c.todSec = data & 0x7f
		}
	case addresses.TODMIN:
		if c.crb&0x80 != 0 {
			c.todAlarmMin = data & 0x7f
		} else {
			c.todMin = data & 0x7f
		}
	case addresses.TODHR:
		if c.crb&0x80 != 0 {
			c.todAlarmHour = data & 0x9f
		} else {
			c.todHour = data & 0x9f
			c.todHoldWrite = true
		}
	case addresses.SDR:
		c.sdr = data
		c.setInterrupt(icrSP)
	case addresses.ICR:
		// bit 7 selects SET (1) or CLEAR (0) for the bits named in the rest
		// of the byte, applied to the mask register.
		if data&icrIR != 0 {
			c.imr |= data &^ icrIR
		} else {
			c.imr &^= data
		}
	case addresses.CRA:
		c.cra = data &^ crForceLoad
		if data&crForceLoad != 0 {
			c.pipe.Schedule(0, func() { c.ta = c.taLatch }, "cia ta force load")
		}
	case addresses.CRB:
		c.crb = data &^ crForceLoad
		if data&crForceLoad != 0 {
			c.pipe.Schedule(0, func() { c.tb = c.tbLatch }, "cia tb force load")
		}
	}
}

// ChipReadRegister implements bus.ChipBus.
func (c *CIA) ChipReadRegister(offset uint16) uint8 {
	switch addresses.ChipRegister(offset) {
	case addresses.PRA:
		return c.readPortA()
	case addresses.PRB:
		return c.readPortB()
	case addresses.DDRA:
		return c.ddra
	case addresses.DDRB:
		return c.ddrb
	case addresses.TALO:
		return uint8(c.ta)
	case addresses.TAHI:
		return uint8(c.ta >> 8)
	case addresses.TBLO:
		return uint8(c.tb)
	case addresses.TBHI:
		return uint8(c.tb >> 8)
	case addresses.TOD10THS:
		if !c.todLatched {
			c.latchTOD()
		}
		v := c.todLatch[0]
		c.todLatched = false
		return v
	case addresses.TODSEC:
		if !c.todLatched {
			c.latchTOD()
		}
		return c.todLatch[1]
	case addresses.TODMIN:
		if !c.todLatched {
			c.latchTOD()
		}
		return c.todLatch[2]
	case addresses.TODHR:
		c.latchTOD()
		return c.todLatch[3]
	case addresses.SDR:
		return c.sdr
	case addresses.ICR:
		v := c.icr
		c.icr = 0
		if c.assertLine != nil {
			c.assertLine(false)
		}
		return v
	case addresses.CRA:
		return c.cra
	case addresses.CRB:
		return c.crb
	}
	return 0xff
}

// latchTOD snapshots the current time into todLatch; reading the hours
// register is what triggers the latch (it's read last in the canonical
// KERNAL access pattern); tenths unlatches it.
func (c *CIA) latchTOD() {
	c.todLatch = [4]uint8{c.todTenths, c.todSec, c.todMin, c.todHour}
	c.todLatched = true
}

// ChipRead implements bus.ChipBus. Nothing downstream of the CIA polls for
// "was this register written", so it always reports false.
func (c *CIA) ChipRead() (bool, bus.ChipData) {
	return false, bus.ChipData{}
}

// LastReadRegister implements bus.ChipBus.
func (c *CIA) LastReadRegister() string {
	return c.lastRegister
}

// Peek implements bus.DebuggerBus: reads ICR/TOD without the side effects
// of ChipReadRegister (ICR clear-on-read, TOD latch-on-read).
func (c *CIA) Peek(offset uint16) (uint8, error) {
	switch addresses.ChipRegister(offset) {
	case addresses.ICR:
		return c.icr, nil
	case addresses.TOD10THS:
		return c.todTenths, nil
	case addresses.TODSEC:
		return c.todSec, nil
	case addresses.TODMIN:
		return c.todMin, nil
	case addresses.TODHR:
		return c.todHour, nil
	}
	return c.ChipReadRegister(offset), nil
}

// Poke implements bus.DebuggerBus. It writes through ChipWrite, so it has
// the same side effects (including pipelined ones) as a CPU write.
func (c *CIA) Poke(offset uint16, value uint8) error {
	c.ChipWrite(offset, value)
	return nil
}

// state is the snapshot-serialisable subset of CIA fields.
type state struct {
	PRA, PRB, DDRA, DDRB                         uint8
	TA, TB, TALatch, TBLatch                      uint16
	CRA, CRB, SDR, ICR, IMR                       uint8
	TODTenths, TODSec, TODMin, TODHour             uint8
	AlarmTenths, AlarmSec, AlarmMin, AlarmHour     uint8
}

func init() {
	gob.Register(state{})
}

// SaveState returns a serialisable snapshot of the ports, timers, ICR/IMR
// and TOD clock/alarm registers. The TOD read latch, the TOD write-hold
// flag and the TOD divider phase are not included. The pipeline's in-flight events are intentionally not part of the
// snapshot: they only ever span a single cycle, so a snapshot taken
// between cycles never has one pending.
func (c *CIA) SaveState() interface{} {
	return state{
		c.pra, c.prb, c.ddra, c.ddrb,
		c.ta, c.tb, c.taLatch, c.tbLatch,
		c.cra, c.crb, c.sdr, c.icr, c.imr,
		c.todTenths, c.todSec, c.todMin, c.todHour,
		c.todAlarmTenths, c.todAlarmSec, c.todAlarmMin, c.todAlarmHour,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (c *CIA) RestoreState(v interface{}) bool {
	s, ok := v.(state)
	if !ok {
		return false
	}
	c.pra, c.prb, c.ddra, c.ddrb = s.PRA, s.PRB, s.DDRA, s.DDRB
	c.ta, c.tb, c.taLatch, c.tbLatch = s.TA, s.TB, s.TALatch, s.TBLatch
	c.cra, c.crb, c.sdr, c.icr, c.imr = s.CRA, s.CRB, s.SDR, s.ICR, s.IMR
	c.todTenths, c.todSec, c.todMin, c.todHour = s.TODTenths, s.TODSec, s.TODMin, s.TODHour
	c.todAlarmTenths, c.todAlarmSec, c.todAlarmMin, c.todAlarmHour = s.AlarmTenths, s.AlarmSec, s.AlarmMin, s.AlarmHour
	c.pipe.Clear()
	return true
}
