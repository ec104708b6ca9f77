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

// Package iec implements the C64's serial (IEC) bus: three open-collector
// lines, ATN, CLOCK and DATA, wire-ANDed across the host computer and every
// attached 1541-class drive. Each participant only ever pulls its own
// output low; the value any participant reads back is the logical AND of
// every participant's line (a device asserting low always wins).
//
// The scheduler calls Tick once per master cycle, after every
// participant has had the chance to (re-)drive its lines for the cycle,
// to advance the bus-idle debounce counter used for the host.Notice
// IECBusIdle signal.
package iec
