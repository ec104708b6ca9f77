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

// freezer implements the common shape of the Action Replay / Atomic Power /
// Final Cartridge III / Retro Replay / KCS Power family: a bank-switched
// ROM plus 8 KiB of on-board RAM mirrored into IO2, with a Freeze button
// that forces ultimax mode and (via the scheduler, which polls Frozen)
// pulls both NMI and IRQ.
type freezer struct {
	banks [][]uint8
	bank  int
	ram   [0x2000]uint8

	ramEnabled bool
	disabled   bool // software-disable latch, set by writing IO1 with bit 6 set
	frozen     bool
}

func newFreezer(img *crtImage) (*freezer, error) {
	f := &freezer{}

	byBank := map[uint16][]byte{}
	for _, chip := range img.chips {
		byBank[chip.bank] = append(byBank[chip.bank], chip.data...)
	}
	if len(byBank) == 0 {
		return nil, errors.Errorf(errors.UnsupportedCartMsg, "freezer: no chip packets")
	}
	maxBank := uint16(0)
	for b := range byBank {
		if b > maxBank {
			maxBank = b
		}
	}
	f.banks = make([][]uint8, maxBank+1)
	for b, data := range byBank {
		bank := make([]uint8, 0x2000)
		copy(bank, data)
		f.banks[b] = bank
	}
	for i := range f.banks {
		if f.banks[i] == nil {
			f.banks[i] = make([]uint8, 0x2000)
		}
	}

	return f, nil
}

func (f *freezer) reset() {
	f.bank = 0
	f.ramEnabled = false
	f.disabled = false
	f.frozen = false
}

func (f *freezer) resetCartConfig() {
	f.disabled = false
	f.frozen = false
}

func (f *freezer) gameExrom() (bool, bool) {
	if f.disabled {
		return true, true
	}
	if f.frozen {
		// ultimax mode: GAME low, EXROM high
		return false, true
	}
	return true, false
}

func (f *freezer) numBanks() int  { return len(f.banks) }
func (f *freezer) getBank() int   { return f.bank }
func (f *freezer) setBank(b int) error {
	if b < 0 || b >= len(f.banks) {
		return errors.Errorf(errors.CartridgeError, "freezer: invalid bank")
	}
	f.bank = b
	return nil
}

func (f *freezer) peek(addr uint16) (uint8, error) {
	if f.ramEnabled {
		return f.ram[addr&0x1fff], nil
	}
	return f.banks[f.bank][addr&0x1fff], nil
}

func (f *freezer) poke(addr uint16, data uint8) error {
	if f.ramEnabled {
		f.ram[addr&0x1fff] = data
	}
	return nil
}

func (f *freezer) peekIO1(addr uint16) (uint8, error) { return 0xff, nil }

// writing IO1 selects the bank (bits 0-2), maps the on-board RAM into
// ROML (bit 5) and disables the cartridge (bit 6).
func (f *freezer) pokeIO1(addr uint16, data uint8) error {
	f.bank = int(data&0x07) % len(f.banks)
	f.ramEnabled = data&0x20 != 0
	f.disabled = data&0x40 != 0
	return nil
}

func (f *freezer) peekIO2(addr uint16) (uint8, error) {
	return f.ram[0x1f00+(addr&0xff)], nil
}

func (f *freezer) pokeIO2(addr uint16, data uint8) error {
	f.ram[0x1f00+(addr&0xff)] = data
	return nil
}

// pressFreezeButton asserts NMI/IRQ (observed by the scheduler via Frozen)
// and forces ultimax mode so the freezer ROM takes over the bus.
func (f *freezer) pressFreezeButton() {
	f.frozen = true
	f.disabled = false
	f.bank = 0
}

func (f *freezer) releaseFreezeButton() {
	f.frozen = false
}

// Frozen reports whether the freeze button is currently held, for the
// scheduler to assert NMI/IRQ from.
func (f *freezer) Frozen() bool { return f.frozen }

func (f *freezer) saveState() interface{} {
	return [4]int{f.bank, btoi(f.ramEnabled), btoi(f.disabled), btoi(f.frozen)}
}

func (f *freezer) restoreState(v interface{}) error {
	s, ok := v.([4]int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "freezer")
	}
	f.bank, f.ramEnabled, f.disabled, f.frozen = s[0], s[1] != 0, s[2] != 0, s[3] != 0
	return nil
}

func (f *freezer) getRAMinfo() []RAMinfo {
	return []RAMinfo{{Label: "freezer RAM", Active: f.ramEnabled, ReadOrigin: 0x8000, ReadMemtop: 0x9fff, WriteOrigin: 0x8000, WriteMemtop: 0x9fff}}
}
