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

// Package clocks defines the constant values that define the speed of the
// master clock for each video standard the machine can be configured for.
//
// Values taken from the commonly cited crystal/divider figures for the 6567
// (NTSC) and 6569 (PAL) VIC-II revisions.
package clocks

// MHz is the CPU/VIC-II clock frequency, in megahertz, for each machine
// configuration.
const (
	PAL  = 0.985249
	NTSC = 1.022727
)

// CyclesPerLine is the number of master clock cycles in a single raster
// line, and LinesPerFrame the number of raster lines in a single frame, for
// each machine configuration.
const (
	PAL_CyclesPerLine = 63
	PAL_LinesPerFrame = 312

	NTSC_CyclesPerLine = 65
	NTSC_LinesPerFrame = 263
)

// CyclesPerFrame is the convenience product of the two constants above.
const (
	PAL_CyclesPerFrame  = PAL_CyclesPerLine * PAL_LinesPerFrame
	NTSC_CyclesPerFrame = NTSC_CyclesPerLine * NTSC_LinesPerFrame
)
