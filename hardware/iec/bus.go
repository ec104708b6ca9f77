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

package iec

// Participant identifies one node on the bus. Host is the C64 itself
// (wired in via its CIA2 port A); Drive8-Drive11 correspond to the four
// device numbers a 1541-class drive can be jumpered to.
type Participant int

const (
	Host Participant = iota
	Drive8
	Drive9
	Drive10
	Drive11
	participantCount
)

// idleThreshold is the number of consecutive cycles with no line change
// before the bus is considered idle.
const idleThreshold = 30

// Bus is the wire-ANDed IEC serial bus shared by the host and every
// attached drive.
type Bus struct {
	atn, clock, data [participantCount]bool
	idleCountdown    int
}

// NewBus returns a bus with all lines released (high) and the idle
// countdown already expired, since nothing has happened yet.
func NewBus() *Bus {
	return &Bus{idleCountdown: 0}
}

// View returns p's perspective of the bus, usable directly as an
// input.IECLines or as the backing for a drive's VIA port wiring.
func (b *Bus) View(p Participant) *View {
	return &View{bus: b, who: p}
}

func (b *Bus) drive(lines *[participantCount]bool, p Participant, asserted bool) {
	if lines[p] != asserted {
		lines[p] = asserted
		b.idleCountdown = idleThreshold
	}
}

func sample(lines [participantCount]bool) bool {
	for _, asserted := range lines {
		if asserted {
			return false
		}
	}
	return true
}

// ATN, Clock and Data report the bus-wide state of each line: true means
// released (high), false means at least one participant is pulling it
// low.
func (b *Bus) ATN() bool   { return sample(b.atn) }
func (b *Bus) Clock() bool { return sample(b.clock) }
func (b *Bus) Data() bool  { return sample(b.data) }

// Tick advances the idle-bus debounce counter. Called once per master
// cycle by the scheduler, after the host and every drive have re-driven
// their lines for the cycle.
func (b *Bus) Tick() {
	if b.idleCountdown > 0 {
		b.idleCountdown--
	}
}

// Idle reports whether the bus has seen no line transition for
// idleThreshold consecutive cycles, the signal the scheduler turns into
// a host.Notice IECBusIdle event.
func (b *Bus) Idle() bool {
	return b.idleCountdown == 0
}

// View is one participant's view of the bus: reading it yields the
// wire-ANDed state including the view owner's own assertion (exactly as
// real open-collector hardware does), and driving it only ever affects
// that one participant's line.
type View struct {
	bus *Bus
	who Participant
}

// Sample implements input.IECLines.
func (v *View) Sample() (atn, clock, data bool) {
	return v.bus.ATN(), v.bus.Clock(), v.bus.Data()
}

// DriveATN implements input.IECLines.
func (v *View) DriveATN(asserted bool) {
	v.bus.drive(&v.bus.atn, v.who, asserted)
}

// DriveClock implements input.IECLines.
func (v *View) DriveClock(asserted bool) {
	v.bus.drive(&v.bus.clock, v.who, asserted)
}

// DriveData implements input.IECLines.
func (v *View) DriveData(asserted bool) {
	v.bus.drive(&v.bus.data, v.who, asserted)
}
