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

// zaxxon implements the Zaxxon/Super Zaxxon board: a 4 KiB ROM mirrored
// across the ROML window and two 8 KiB ROMH banks. The ROMH bank is
// selected by which ROML mirror the game reads - $8000-$8FFF selects bank
// 0, $9000-$9FFF selects bank 1 - so bank switching is a side effect of
// ordinary ROML reads rather than of any register write.
type zaxxon struct {
	roml     [0x1000]uint8
	romh     [2][0x2000]uint8
	romhBank int
}

func newZaxxon(img *crtImage) (*zaxxon, error) {
	z := &zaxxon{}
	loaded := false
	for _, chip := range img.chips {
		switch {
		case chip.address == 0x8000:
			copy(z.roml[:], chip.data)
			loaded = true
		case chip.address == 0xa000 && int(chip.bank) < 2:
			copy(z.romh[chip.bank][:], chip.data)
			loaded = true
		}
	}
	if !loaded {
		return nil, errors.Errorf(errors.UnsupportedCartMsg, "Zaxxon: no chip packets")
	}
	return z, nil
}

func (z *zaxxon) reset()                    { z.romhBank = 0 }
func (z *zaxxon) resetCartConfig()          {}
func (z *zaxxon) gameExrom() (bool, bool)   { return false, false }
func (z *zaxxon) numBanks() int             { return 2 }
func (z *zaxxon) getBank() int              { return z.romhBank }
func (z *zaxxon) setBank(b int) error {
	if b < 0 || b > 1 {
		return errors.Errorf(errors.CartridgeError, "Zaxxon: invalid bank")
	}
	z.romhBank = b
	return nil
}

func (z *zaxxon) peek(addr uint16) (uint8, error) {
	if addr < 0x2000 {
		// which ROML mirror is read decides the ROMH bank
		if addr < 0x1000 {
			z.romhBank = 0
		} else {
			z.romhBank = 1
		}
		return z.roml[addr&0x0fff], nil
	}
	return z.romh[z.romhBank][addr&0x1fff], nil
}

func (z *zaxxon) poke(addr uint16, data uint8) error    { return nil }
func (z *zaxxon) peekIO1(addr uint16) (uint8, error)    { return 0xff, nil }
func (z *zaxxon) peekIO2(addr uint16) (uint8, error)    { return 0xff, nil }
func (z *zaxxon) pokeIO1(addr uint16, data uint8) error { return nil }
func (z *zaxxon) pokeIO2(addr uint16, data uint8) error { return nil }

func (z *zaxxon) saveState() interface{} { return z.romhBank }

func (z *zaxxon) restoreState(v interface{}) error {
	b, ok := v.(int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "zaxxon")
	}
	z.romhBank = b
	return nil
}

func (z *zaxxon) getRAMinfo() []RAMinfo { return nil }
