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
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/instance"
	"github.com/dirkwhoffmann/go64/test"
)

type fakeIEC struct {
	clockDriven, dataDriven bool
	atn, clock, data        bool
}

func (f *fakeIEC) Sample() (atn, clock, data bool) { return f.atn, f.clock, f.data }
func (f *fakeIEC) DriveClock(asserted bool)        { f.clockDriven = asserted }
func (f *fakeIEC) DriveData(asserted bool)         { f.dataDriven = asserted }

func newTestInstance(t *testing.T) *instance.Instance {
	t.Helper()
	ins, err := instance.NewInstance(nil)
	test.ExpectSuccess(t, err)
	return ins
}

func TestStepHeadClampsToValidTrackRange(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))

	for i := 0; i < 100; i++ {
		d.StepHead(-1)
	}
	test.ExpectEquality(t, d.Track(), 1)

	for i := 0; i < 100; i++ {
		d.StepHead(1)
	}
	test.ExpectEquality(t, d.Track(), 42)
	test.ExpectEquality(t, d.HalfTrack(), 84)
}

func TestStepperPhaseMovesHeadByHalfTracks(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))
	start := d.HalfTrack()

	// VIA2 PB0-1 cycle the stepper phase; each increment is one half-track
	d.via2.ChipWrite(regDDRB, 0xff)
	d.via2.ChipWrite(regORB, 0x01)
	test.ExpectEquality(t, d.HalfTrack(), start+1)
	d.via2.ChipWrite(regORB, 0x02)
	test.ExpectEquality(t, d.HalfTrack(), start+2)
	d.via2.ChipWrite(regORB, 0x01) // phase backwards
	test.ExpectEquality(t, d.HalfTrack(), start+1)
}

func TestMotorFollowsVIA2PortB(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))

	d.via2.ChipWrite(regDDRB, 0xff)
	d.via2.ChipWrite(regORB, 0x04)
	test.ExpectSuccess(t, d.MotorOn())
	d.via2.ChipWrite(regORB, 0x00)
	test.ExpectSuccess(t, !d.MotorOn())
}

func TestInsertDiskRejectsWrongSizedImage(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))
	err := d.InsertDisk(make([]byte, 100))
	test.ExpectFailure(t, err)
}

func TestInsertDiskAcceptsStandardD64Size(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))
	err := d.InsertDisk(make([]byte, 174848))
	test.ExpectSuccess(t, err)

	// every full track is now GCR-formatted, half-tracks are not
	test.ExpectSuccess(t, d.Disk().TrackLen(2*18-1) > 0)
	test.ExpectEquality(t, d.Disk().TrackLen(2*18), 0)
}

func TestGCREncodingMatchesKnownCodes(t *testing.T) {
	// $00 nibbles use code 01010: 8 repetitions pack to this pattern
	var out [5]uint8
	encodeGCR(out[:], []uint8{0x00, 0x00, 0x00, 0x00})
	test.ExpectEquality(t, out, [5]uint8{0x52, 0x94, 0xa5, 0x29, 0x4a})

	// $FF nibbles use code 10101
	encodeGCR(out[:], []uint8{0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, out, [5]uint8{0xad, 0x6b, 0x5a, 0xd6, 0xb5})
}

func TestSyncRunInhibitsByteReady(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))
	test.ExpectSuccess(t, d.InsertDisk(make([]byte, 174848)) == nil)

	// spin the motor and park over track 1's leading sync run
	d.via2.ChipWrite(regDDRB, 0xff)
	d.via2.ChipWrite(regORB, 0x04)
	d.halfTrack = 1
	d.headPos = 0

	// one byte cell: first $FF read, not yet a sync run
	for i := 0; i < d.cyclesPerByte(); i++ {
		d.tickByteClock()
	}
	test.ExpectSuccess(t, !d.syncActive)

	// second $FF: ten one-bits seen, SYNC asserts
	for i := 0; i < d.cyclesPerByte(); i++ {
		d.tickByteClock()
	}
	test.ExpectSuccess(t, d.syncActive)
}

func TestATNTransitionRaisesVIA1CA1(t *testing.T) {
	bus := &fakeIEC{atn: true, clock: true, data: true}
	d := New(8, bus, newTestInstance(t))
	if err := d.LoadROM(make([]byte, 0x4000)); err != nil {
		t.Fatalf("unexpected LoadROM error: %v", err)
	}
	d.Reset()

	// CA1 interrupt enabled, rising edge (the inverted ATN input)
	d.via1.ChipWrite(regPCR, 0x01)
	d.via1.ChipWrite(regIER, 0x80|ifrCA1)

	bus.atn = false // host pulls ATN low
	test.ExpectSuccess(t, d.Tick() == nil)

	test.ExpectSuccess(t, d.via1.ifr&ifrCA1 != 0)

	// the auto-acknowledge circuit answers with DATA low before the DOS
	// has touched the VIA
	test.ExpectSuccess(t, bus.dataDriven)
}

func TestTickAdvancesWithoutPanicking(t *testing.T) {
	d := New(8, &fakeIEC{atn: true, clock: true, data: true}, newTestInstance(t))
	if err := d.LoadROM(make([]byte, 0x4000)); err != nil {
		t.Fatalf("unexpected LoadROM error: %v", err)
	}
	d.Reset()

	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, d.Tick() == nil)
	}
}
