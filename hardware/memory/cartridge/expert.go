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

package cartridge

import "github.com/dirkwhoffmann/go64/errors"

// expert switch positions.
const (
	ExpertPRG = iota
	ExpertOff
	ExpertOn
)

// expert implements the Expert cartridge: 8 KiB of battery-backed RAM that
// can be banked into ROML depending on a three-position switch, armed by
// the first NMI after a reset when the switch is in the ON position.
type expert struct {
	ram [0x2000]uint8

	position int
	armed    bool
	active   bool
}

func newExpert(img *crtImage) (*expert, error) {
	e := &expert{position: ExpertOff}
	for _, chip := range img.chips {
		copy(e.ram[:], chip.data)
	}
	return e, nil
}

func (e *expert) reset() {
	e.armed = false
	e.active = false
}

func (e *expert) resetCartConfig() {
	e.active = false
}

func (e *expert) gameExrom() (bool, bool) {
	switch e.position {
	case ExpertOff:
		return true, true
	case ExpertPRG:
		return true, false
	default: // ExpertOn
		if e.active {
			return true, false
		}
		return true, true
	}
}

func (e *expert) numBanks() int         { return 1 }
func (e *expert) getBank() int          { return 0 }
func (e *expert) setBank(b int) error   { return nil }

func (e *expert) peek(addr uint16) (uint8, error) {
	return e.ram[addr&0x1fff], nil
}

func (e *expert) poke(addr uint16, data uint8) error {
	e.ram[addr&0x1fff] = data
	return nil
}

func (e *expert) peekIO1(addr uint16) (uint8, error) { return 0xff, nil }
func (e *expert) pokeIO1(addr uint16, data uint8) error {
	// writing IO1 turns the cartridge's ROM/RAM config off (the "kill"
	// register used by the EXPERT UTILITY software to disable itself).
	e.active = false
	return nil
}

func (e *expert) peekIO2(addr uint16) (uint8, error) { return 0xff, nil }
func (e *expert) pokeIO2(addr uint16, data uint8) error { return nil }

// setSwitch implements the switchable optional interface.
func (e *expert) setSwitch(position int) {
	e.position = position
	e.armed = false
	e.active = position == ExpertOn
}

// nmiWillTrigger implements the nmiWatcher optional interface: the first
// NMI after reset, while the switch is ON, arms the cartridge.
func (e *expert) nmiWillTrigger() {
	if e.position == ExpertOn && !e.armed {
		e.armed = true
		e.active = true
	}
}

func (e *expert) saveState() interface{} {
	return [3]int{e.position, btoi(e.armed), btoi(e.active)}
}

func (e *expert) restoreState(v interface{}) error {
	s, ok := v.([3]int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "expert")
	}
	e.position, e.armed, e.active = s[0], s[1] != 0, s[2] != 0
	return nil
}

func (e *expert) getRAMinfo() []RAMinfo {
	return []RAMinfo{{Label: "Expert RAM", Active: e.active, ReadOrigin: 0x8000, ReadMemtop: 0x9fff, WriteOrigin: 0x8000, WriteMemtop: 0x9fff}}
}
