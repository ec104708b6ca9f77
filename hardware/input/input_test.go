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

package input_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/input"
	"github.com/dirkwhoffmann/go64/test"
)

func TestKeyboardColumnScan(t *testing.T) {
	k := input.NewKeyboard()
	k.Press(1, 4) // e.g. the "S" key in the standard matrix layout

	cols := input.KeyboardColumns{Keyboard: k}
	// row select drives row 1 low (active-low: bit1=0), everything else high
	v := cols.Sample(0xfd, 0)
	test.ExpectEquality(t, v&(1<<4), uint8(0))
	test.ExpectEquality(t, v&(1<<0), uint8(1<<0))
}

func TestKeyboardReleaseAll(t *testing.T) {
	k := input.NewKeyboard()
	k.Press(0, 0)
	k.ReleaseAll()

	cols := input.KeyboardColumns{Keyboard: k}
	v := cols.Sample(0xfe, 0)
	test.ExpectEquality(t, v, uint8(0xff))
}

func TestJoystickSampleLeavesUpperBitsHigh(t *testing.T) {
	j := &input.Joystick{}
	j.Set(input.JoyUp, true)

	v := j.Sample(0, 0)
	test.ExpectEquality(t, v&0x01, uint8(0))
	test.ExpectEquality(t, v&0xe0, uint8(0xe0))
}

type fakeIEC struct {
	atn, clock, data bool
}

func (f *fakeIEC) Sample() (bool, bool, bool)  { return f.atn, f.clock, f.data }
func (f *fakeIEC) DriveATN(v bool)             { f.atn = v }
func (f *fakeIEC) DriveClock(v bool)           { f.clock = v }
func (f *fakeIEC) DriveData(v bool)            { f.data = v }

type fakeBank struct{ bank int }

func (f *fakeBank) SetVICBank(b int) { f.bank = b }

func TestCIA2PortASelectsVICBank(t *testing.T) {
	iec := &fakeIEC{}
	bank := &fakeBank{}
	p := &input.CIA2PortA{IEC: iec, Bank: bank}

	p.Update(0x00, 0x03) // both bank bits driven low -> inverted = bank 3
	test.ExpectEquality(t, bank.bank, 3)

	p.Update(0x02, 0x03) // bit0 low, bit1 high -> inverted = bank 1
	test.ExpectEquality(t, bank.bank, 1)
}

func TestCIA2PortADrivesIECOnWrite(t *testing.T) {
	iec := &fakeIEC{atn: false}
	p := &input.CIA2PortA{IEC: iec}

	// bit 3 set pulls ATN low through the inverting driver; the write
	// itself reaches the bus, no read required
	p.Update(0x08, 0x3f)
	test.ExpectSuccess(t, iec.atn)

	p.Update(0x00, 0x3f)
	test.ExpectSuccess(t, !iec.atn)
}

func TestCIA2PortAReflectsIECLines(t *testing.T) {
	// clock line pulled low, data line released
	iec := &fakeIEC{clock: false, data: true}
	p := &input.CIA2PortA{IEC: iec}

	v := p.Sample(0, 0)
	test.ExpectEquality(t, v&0x40, uint8(0))
	test.ExpectEquality(t, v&0x80, uint8(0x80))
}
