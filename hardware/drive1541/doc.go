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

// Package drive1541 implements a 1541 disk drive: its own 6502-family
// CPU and 2 KiB of RAM, two 6522 VIA I/O chips, and the GCR-encoded
// rotating disk mechanism the drive ROM's DOS talks to over the
// parallel ports. A Drive is ticked one master cycle at a time by the
// scheduler alongside the host CPU, on the same clock (a real 1541 has
// its own crystal, but the two run close enough to the same rate that
// their drift is not modelled).
//
// The drive exposes the host-facing side of the serial bus as an
// iec.View; attaching a D64 image populates the disk's GCR track
// buffers that VIA2's shift register reads as the head rotates.
package drive1541
