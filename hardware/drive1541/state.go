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
	"encoding/gob"

	"github.com/dirkwhoffmann/go64/hardware/cpu"
)

// driveState is the snapshot-serialisable subset of Drive fields. The
// disk image itself is not part of the snapshot: reattaching it is
// the host application's responsibility, exactly as for cartridges.
type driveState struct {
	HalfTrack, HeadPos, ByteTimer int
	StepperPhase                  int
	MotorOn, LedOn, DiskInserted  bool
	ClockOut, DataOut, ATNA       bool
	SyncRun                       int
	SyncActive                    bool
	LastHeadByte                  uint8
	CycleDebt                     int
}

func init() {
	gob.Register(driveState{})
}

// SaveState returns a serialisable snapshot of the drive's mechanical
// and timing state. The CPU and VIA snapshots are taken separately by
// the scheduler, which owns references to them via Drive's accessors.
func (d *Drive) SaveState() interface{} {
	return driveState{
		HalfTrack: d.halfTrack, HeadPos: d.headPos, ByteTimer: d.byteTimer,
		StepperPhase: d.stepperPhase,
		MotorOn:      d.motorOn, LedOn: d.ledOn, DiskInserted: d.diskInserted,
		ClockOut: d.clockOut, DataOut: d.dataOut, ATNA: d.atna,
		SyncRun: d.syncRun, SyncActive: d.syncActive,
		LastHeadByte: d.lastHeadByte,
		CycleDebt:    d.cycleDebt,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (d *Drive) RestoreState(v interface{}) bool {
	s, ok := v.(driveState)
	if !ok {
		return false
	}
	d.halfTrack, d.headPos, d.byteTimer = s.HalfTrack, s.HeadPos, s.ByteTimer
	d.stepperPhase = s.StepperPhase
	d.motorOn, d.ledOn, d.diskInserted = s.MotorOn, s.LedOn, s.DiskInserted
	d.clockOut, d.dataOut, d.atna = s.ClockOut, s.DataOut, s.ATNA
	d.syncRun, d.syncActive = s.SyncRun, s.SyncActive
	d.lastHeadByte = s.LastHeadByte
	d.cycleDebt = s.CycleDebt
	d.reevaluateIEC()
	return true
}

// VIA1 and VIA2 expose the drive's two I/O chips so the snapshot package
// and debugger can reach their own SaveState/RestoreState and register
// windows without the drive needing to proxy every method.
func (d *Drive) VIA1() *VIA { return d.via1 }
func (d *Drive) VIA2() *VIA { return d.via2 }

// CPU exposes the drive's own 6502-family core for the debugger and
// snapshot package.
func (d *Drive) CPU() *cpu.CPU { return d.cpu }
