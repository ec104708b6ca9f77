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

package cia_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/cia"
	"github.com/dirkwhoffmann/go64/hardware/memory/addresses"
	"github.com/dirkwhoffmann/go64/test"
)

func TestTimerAUnderflowRaisesIRQ(t *testing.T) {
	var irq bool
	c := cia.New(func(v bool) { irq = v })

	c.ChipWrite(uint16(addresses.TALO), 0x02)
	c.ChipWrite(uint16(addresses.TAHI), 0x00)
	c.ChipWrite(uint16(addresses.ICR), 0x81) // SET bit + TA interrupt
	c.ChipWrite(uint16(addresses.CRA), 0x01) // start, phi2, continuous

	for i := 0; i < 8; i++ {
		c.Execute()
	}

	test.ExpectSuccess(t, irq)

	icr := c.ChipReadRegister(uint16(addresses.ICR))
	test.ExpectSuccess(t, icr&0x01 != 0)

	// reading ICR clears the latch and releases the line
	test.ExpectSuccess(t, !irq)
}

func TestTimerAContinuousReloadsFromLatch(t *testing.T) {
	c := cia.New(nil)
	c.ChipWrite(uint16(addresses.TALO), 0x03)
	c.ChipWrite(uint16(addresses.TAHI), 0x00)
	c.ChipWrite(uint16(addresses.CRA), 0x01)

	for i := 0; i < 4; i++ {
		c.Execute()
	}
	lo := c.ChipReadRegister(uint16(addresses.TALO))
	hi := c.ChipReadRegister(uint16(addresses.TAHI))
	test.ExpectSuccess(t, lo <= 0x03)
	test.ExpectEquality(t, hi, uint8(0))
}

func TestOneShotStopsAfterUnderflow(t *testing.T) {
	c := cia.New(nil)
	c.ChipWrite(uint16(addresses.TALO), 0x01)
	c.ChipWrite(uint16(addresses.TAHI), 0x00)
	c.ChipWrite(uint16(addresses.CRA), 0x01|0x08) // start + one-shot

	for i := 0; i < 4; i++ {
		c.Execute()
	}

	cra := c.ChipReadRegister(uint16(addresses.CRA))
	test.ExpectEquality(t, cra&0x01, uint8(0))
}

func TestTimerBCountsTimerAUnderflows(t *testing.T) {
	c := cia.New(nil)

	// TA underflows every 4 cycles; TB counts those underflows
	c.ChipWrite(uint16(addresses.TALO), 0x03)
	c.ChipWrite(uint16(addresses.TAHI), 0x00)
	c.ChipWrite(uint16(addresses.TBLO), 0x10)
	c.ChipWrite(uint16(addresses.TBHI), 0x00)
	c.ChipWrite(uint16(addresses.CRB), 0x01|0x40) // start, count TA underflows
	c.ChipWrite(uint16(addresses.CRA), 0x01)      // start, phi2, continuous

	// 12 cycles = exactly 3 TA underflows, so TB must have decremented by
	// exactly 3 regardless of how TA reloads
	for i := 0; i < 12; i++ {
		c.Execute()
	}

	tb := uint16(c.ChipReadRegister(uint16(addresses.TBLO))) |
		uint16(c.ChipReadRegister(uint16(addresses.TBHI)))<<8
	test.ExpectEquality(t, tb, uint16(0x10-3))
}

func TestPortReadComposesDataAndDDR(t *testing.T) {
	c := cia.New(nil)
	c.ChipWrite(uint16(addresses.DDRA), 0x0f) // low nibble output
	c.ChipWrite(uint16(addresses.PRA), 0x05)

	v := c.ChipReadRegister(uint16(addresses.PRA))
	test.ExpectEquality(t, v&0x0f, uint8(0x05))
	test.ExpectEquality(t, v&0xf0, uint8(0xf0)) // floating input bits read high
}

type fixedPort uint8

func (f fixedPort) Sample(uint8, uint8) uint8 { return uint8(f) }

func TestExternalPortContributesInputBits(t *testing.T) {
	c := cia.New(nil)
	c.PortB = fixedPort(0xaa)
	c.ChipWrite(uint16(addresses.DDRB), 0x0f)
	c.ChipWrite(uint16(addresses.PRB), 0x05)

	v := c.ChipReadRegister(uint16(addresses.PRB))
	test.ExpectEquality(t, v, uint8(0xa5))
}

func TestResetClearsTimersAndInterrupts(t *testing.T) {
	var irq bool
	c := cia.New(func(v bool) { irq = v })
	c.ChipWrite(uint16(addresses.ICR), 0x81)
	c.ChipWrite(uint16(addresses.TALO), 0x01)
	c.ChipWrite(uint16(addresses.CRA), 0x01)
	for i := 0; i < 4; i++ {
		c.Execute()
	}

	c.Reset()

	test.ExpectSuccess(t, !irq)
	test.ExpectEquality(t, c.ChipReadRegister(uint16(addresses.CRA)), uint8(0))
}
