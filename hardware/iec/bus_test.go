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

package iec_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/iec"
	"github.com/dirkwhoffmann/go64/test"
)

func TestLineIsLowIfAnyParticipantAssertsIt(t *testing.T) {
	bus := iec.NewBus()
	host := bus.View(iec.Host)
	drive := bus.View(iec.Drive8)

	_, clock, _ := host.Sample()
	test.ExpectSuccess(t, clock)

	drive.DriveClock(true)
	_, clock, _ = host.Sample()
	test.ExpectSuccess(t, !clock)

	drive.DriveClock(false)
	_, clock, _ = host.Sample()
	test.ExpectSuccess(t, clock)
}

func TestOwnAssertionIsVisibleToSelf(t *testing.T) {
	bus := iec.NewBus()
	host := bus.View(iec.Host)

	host.DriveATN(true)
	atn, _, _ := host.Sample()
	test.ExpectSuccess(t, !atn)
}

func TestBusGoesIdleAfterThresholdWithNoActivity(t *testing.T) {
	bus := iec.NewBus()
	view := bus.View(iec.Drive8)
	view.DriveData(true)

	test.ExpectSuccess(t, !bus.Idle())
	for i := 0; i < 30; i++ {
		bus.Tick()
	}
	test.ExpectSuccess(t, bus.Idle())
}

func TestActivityResetsIdleCountdown(t *testing.T) {
	bus := iec.NewBus()
	view := bus.View(iec.Drive8)
	view.DriveData(true)

	for i := 0; i < 30; i++ {
		bus.Tick()
	}
	test.ExpectSuccess(t, bus.Idle())

	view.DriveData(false)
	test.ExpectSuccess(t, !bus.Idle())
}
