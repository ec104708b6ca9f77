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

import "encoding/gob"

// state is the snapshot-serialisable subset of Memory fields. ROM content
// is never part of a snapshot: ROMs are a host-supplied asset loaded
// once at startup, identical across every snapshot taken of a given
// machine, so re-shipping them in every save would only waste space.
type state struct {
	RAM         [0x10000]uint8
	ColorRAM    [0x400]uint8
	PortDDR     uint8
	PortData    uint8
}

func init() {
	gob.Register(state{})
}

// SaveState returns a serialisable snapshot of RAM, color RAM and the
// processor port. The cartridge and chip register files are snapshotted
// separately, via their own SaveState methods.
func (m *Memory) SaveState() interface{} {
	return state{
		RAM:      m.RAM.data,
		ColorRAM: m.ColorRAM.nibbles,
		PortDDR:  m.Port.ddr,
		PortData: m.Port.data,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (m *Memory) RestoreState(v interface{}) bool {
	s, ok := v.(state)
	if !ok {
		return false
	}
	m.RAM.data = s.RAM
	m.ColorRAM.nibbles = s.ColorRAM
	m.Port.ddr = s.PortDDR
	m.Port.data = s.PortData
	m.recompute()
	return true
}
