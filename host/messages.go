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

// Package host implements the two queues that connect the single-threaded
// emulation core to whatever sits outside it (a GUI, a headless CLI runner,
// a test harness): a Command queue the host pushes requests onto, drained
// by the scheduler at instruction boundaries, and a Notice queue the core pushes
// events onto for the host to observe without blocking the emulation loop.
package host

import "fmt"

// Notice enumerates the non-blocking messages the core posts to the
// host. The core never blocks on their delivery.
type Notice int

const (
	ROMsMissing Notice = iota
	CartridgeAttached
	CartridgeDetached
	DiskInserted
	DiskEjected
	DiskModified
	IECBusIdle
	IECBusBusy
	CPUJammed
	BreakpointHit
	WatchpointHit
	RasterIRQ
	FrameComplete
)

func (n Notice) String() string {
	switch n {
	case ROMsMissing:
		return "ROMs_missing"
	case CartridgeAttached:
		return "cartridge_attached"
	case CartridgeDetached:
		return "cartridge_detached"
	case DiskInserted:
		return "disk_inserted"
	case DiskEjected:
		return "disk_ejected"
	case DiskModified:
		return "disk_modified"
	case IECBusIdle:
		return "iec_bus_idle"
	case IECBusBusy:
		return "iec_bus_busy"
	case CPUJammed:
		return "cpu_jammed"
	case BreakpointHit:
		return "breakpoint_hit"
	case WatchpointHit:
		return "watchpoint_hit"
	case RasterIRQ:
		return "raster_irq"
	case FrameComplete:
		return "frame_complete"
	}
	return "unknown_notice"
}

// Event pairs a Notice with an optional human-readable detail, eg. the tag
// of a breakpoint hit or the label of an attached cartridge.
type Event struct {
	Notice Notice
	Detail string
}

func (e Event) String() string {
	if e.Detail == "" {
		return e.Notice.String()
	}
	return fmt.Sprintf("%s: %s", e.Notice, e.Detail)
}

// Notify is implemented by anything that wants to observe core events. The
// core never blocks waiting for a Notify call to return.
type Notify interface {
	Notify(Event) error
}

// notifyStub discards every event. The environment package declares its
// own stub and does not use this one.
type notifyStub struct{}

func (notifyStub) Notify(Event) error { return nil }
