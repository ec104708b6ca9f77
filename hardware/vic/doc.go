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

// Package vic implements the 6569 (PAL) / 6567 (NTSC) VIC-II video chip:
// the per-cycle raster/badline/sprite-DMA state machine, the register
// pipeline that makes mid-cycle writes take effect on the correct
// sub-phase, and the pixel renderer that fills a display.Frame.
//
// The chip is driven one master cycle at a time by Tick, called by the
// scheduler before the CIAs and CPU on every cycle. BA then reports the
// chip's BA line; the scheduler feeds that into the CPU's RdyFlg.
package vic
