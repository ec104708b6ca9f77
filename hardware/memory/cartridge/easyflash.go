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

// flashState is one state of the Am29F040's command interpreter. EasyFlash
// carries two of these chips (ROML and ROMH), each independently
// programmable.
type flashState int

const (
	flashRead flashState = iota
	flashMagic1
	flashMagic2
	flashAutoselect
	flashProgram
	flashEraseMagic1
	flashEraseMagic2
	flashEraseMagic3
	flashErasing
)

// flashChip models one 512 KiB Am29F040 flash ROM: eight sectors of 64 KiB
// each, addressed here as 64 banks of 8 KiB to match EasyFlash's bank
// register.
type flashChip struct {
	banks [64][]uint8
	state flashState
}

func newFlashChip() *flashChip {
	f := &flashChip{}
	for i := range f.banks {
		f.banks[i] = make([]uint8, 0x2000)
		for j := range f.banks[i] {
			f.banks[i][j] = 0xff
		}
	}
	return f
}

func (f *flashChip) read(bank int, addr uint16) uint8 {
	if f.state == flashAutoselect {
		switch addr & 0x01 {
		case 0:
			return 0x01 // manufacturer ID (AMD)
		default:
			return 0xa4 // Am29F040 device ID
		}
	}
	return f.banks[bank][addr&0x1fff]
}

// write feeds one byte of the Am29F040 command sequence. The two "magic"
// addresses $5555 and $2AAA are given relative to the bank's own base, as
// EasyFlash always decodes them within the current 8 KiB window.
func (f *flashChip) write(bank int, addr uint16, data uint8) {
	a := addr & 0x1fff
	switch f.state {
	case flashRead:
		if a == 0x1555 && data == 0xaa {
			f.state = flashMagic1
		}
	case flashMagic1:
		if a == 0x0aaa && data == 0x55 {
			f.state = flashMagic2
		} else {
			f.state = flashRead
		}
	case flashMagic2:
		switch data {
		case 0x90:
			f.state = flashAutoselect
		case 0xa0:
			f.state = flashProgram
		case 0x80:
			f.state = flashEraseMagic1
		default:
			f.state = flashRead
		}
	case flashProgram:
		f.banks[bank][a] &= data
		f.state = flashRead
	case flashEraseMagic1:
		if a == 0x1555 && data == 0xaa {
			f.state = flashEraseMagic2
		} else {
			f.state = flashRead
		}
	case flashEraseMagic2:
		if a == 0x0aaa && data == 0x55 {
			f.state = flashEraseMagic3
		} else {
			f.state = flashRead
		}
	case flashEraseMagic3:
		if data == 0x30 {
			// sector erase: an Am29F040 sector is 64 KiB, eight of the
			// 8 KiB banks the EasyFlash addresses it through
			sector := bank &^ 0x07
			for b := sector; b < sector+8 && b < len(f.banks); b++ {
				for i := range f.banks[b] {
					f.banks[b][i] = 0xff
				}
			}
		} else if data == 0x10 {
			for b := range f.banks {
				for i := range f.banks[b] {
					f.banks[b][i] = 0xff
				}
			}
		}
		f.state = flashRead
	case flashAutoselect:
		if data == 0xf0 {
			f.state = flashRead
		}
	}
}

// easyflash implements the EasyFlash cartridge: two flash chips (one for
// ROML, one for ROMH, each 64 banks of 8 KiB), a 256-byte on-board RAM, a bank
// register at $DE00 and a mode register at $DE02.
type easyflash struct {
	roml, romh *flashChip
	ram        [256]uint8

	bank int
	mode uint8 // $DE02: bit 0 GAME, bit 1 EXROM, bit 2 mode select, bit 7 LED

	// jumperBoot reflects the physical boot jumper: while the mode
	// register's bit 2 is clear, GAME follows the jumper instead of the
	// register, which is what drops the machine into ultimax and runs the
	// EasyFlash menu from ROMH after a reset.
	jumperBoot bool
}

func newEasyFlash(img *crtImage) (*easyflash, error) {
	e := &easyflash{roml: newFlashChip(), romh: newFlashChip(), jumperBoot: true}

	for _, chip := range img.chips {
		// the bank number in the CRT is the EasyFlash bank; the packet's
		// own load address (either $8000 or $A000/$E000) picks ROML vs ROMH.
		dst := e.roml
		if chip.address == 0xa000 || chip.address == 0xe000 {
			dst = e.romh
		}
		bank := int(chip.bank) % len(dst.banks)
		copy(dst.banks[bank], chip.data)
	}

	return e, nil
}

func (e *easyflash) reset() {
	e.bank = 0
	e.mode = 0
}

func (e *easyflash) resetCartConfig() { e.mode = 0 }

func (e *easyflash) gameExrom() (bool, bool) {
	// a set register bit pulls the corresponding line low. while mode
	// select (bit 2) is clear, GAME follows the boot jumper instead, so a
	// freshly reset cartridge comes up in ultimax with the menu ROM at
	// $E000.
	game := true
	if e.mode&0x04 != 0 {
		game = e.mode&0x01 == 0
	} else if e.jumperBoot {
		game = false
	}
	exrom := e.mode&0x02 == 0
	return game, exrom
}

// LED reports the state of the EasyFlash's write-indicator LED (mode
// register bit 7), for the host's status display.
func (e *easyflash) LED() bool {
	return e.mode&0x80 != 0
}

func (e *easyflash) numBanks() int { return len(e.roml.banks) }
func (e *easyflash) getBank() int  { return e.bank }
func (e *easyflash) setBank(b int) error {
	if b < 0 || b >= len(e.roml.banks) {
		return errors.Errorf(errors.CartridgeError, "easyflash: invalid bank")
	}
	e.bank = b
	return nil
}

func (e *easyflash) peek(addr uint16) (uint8, error) {
	if addr < 0x2000 {
		return e.roml.read(e.bank, addr), nil
	}
	return e.romh.read(e.bank, addr-0x2000), nil
}

func (e *easyflash) poke(addr uint16, data uint8) error {
	if addr < 0x2000 {
		e.roml.write(e.bank, addr, data)
	} else {
		e.romh.write(e.bank, addr-0x2000, data)
	}
	return nil
}

func (e *easyflash) peekIO1(addr uint16) (uint8, error) { return 0xff, nil }

func (e *easyflash) pokeIO1(addr uint16, data uint8) error {
	switch addr & 0x02 {
	case 0x00:
		e.bank = int(data) % len(e.roml.banks)
	case 0x02:
		e.mode = data
	}
	return nil
}

func (e *easyflash) peekIO2(addr uint16) (uint8, error) {
	return e.ram[addr&0xff], nil
}

func (e *easyflash) pokeIO2(addr uint16, data uint8) error {
	e.ram[addr&0xff] = data
	return nil
}

func (e *easyflash) saveState() interface{} {
	return [2]int{e.bank, int(e.mode)}
}

func (e *easyflash) restoreState(v interface{}) error {
	s, ok := v.([2]int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "easyflash")
	}
	e.bank, e.mode = s[0], uint8(s[1])
	return nil
}

func (e *easyflash) getRAMinfo() []RAMinfo {
	return []RAMinfo{{Label: "EasyFlash RAM", Active: true, ReadOrigin: 0xdf00, ReadMemtop: 0xdfff, WriteOrigin: 0xdf00, WriteMemtop: 0xdfff}}
}
