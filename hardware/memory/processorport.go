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

package memory

import "github.com/dirkwhoffmann/go64/hardware/memory/memorymap"

// ProcessorPort models the 6510's built-in I/O port, addresses $00 (data
// direction register) and $01 (port data). Bits 0-2 (LORAM, HIRAM, CHAREN)
// drive the memory configuration; bits 3-5 drive the datasette
// motor/sense/data-out lines and are exposed purely as observable state,
// since the core has no datasette device of its own.
type ProcessorPort struct {
	ddr  uint8
	data uint8

	// onConfigChange is invoked whenever a write changes bits 0-2, so the
	// owning Memory can recompute its bank table.
	onConfigChange func()
}

// pull-up default: on power-on every bit not driven by the DDR reads as 1.
const processorPortPullups = 0xff

func (p *ProcessorPort) Read() uint8 {
	return (p.data & p.ddr) | (processorPortPullups &^ p.ddr)
}

func (p *ProcessorPort) ReadDDR() uint8 {
	return p.ddr
}

func (p *ProcessorPort) WriteDDR(v uint8) {
	p.ddr = v
	if p.onConfigChange != nil {
		p.onConfigChange()
	}
}

func (p *ProcessorPort) Write(v uint8) {
	prev := p.data
	p.data = v
	if prev&0x07 != v&0x07 && p.onConfigChange != nil {
		p.onConfigChange()
	}
}

// Lines derives the memorymap.Lines the current port settings select.
func (p *ProcessorPort) Lines(game, exrom bool) memorymap.Lines {
	v := p.Read()
	return memorymap.Lines{
		LORAM:  v&0x01 != 0,
		HIRAM:  v&0x02 != 0,
		CHAREN: v&0x04 != 0,
		GAME:   game,
		EXROM:  exrom,
	}
}

// CassetteMotor reports the state of bit 5 (motor off=1/on=0, active low).
func (p *ProcessorPort) CassetteMotor() bool {
	return p.Read()&0x20 == 0
}

// CassetteDataOut reports the state of bit 3.
func (p *ProcessorPort) CassetteDataOut() bool {
	return p.Read()&0x08 != 0
}

// CassetteSense reports the state of bit 4 (switch sense input).
func (p *ProcessorPort) CassetteSense() bool {
	return p.Read()&0x10 != 0
}
