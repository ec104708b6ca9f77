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

import (
	"fmt"

	"github.com/dirkwhoffmann/go64/errors"
)

// scheme describes one of the simple ROM bank-switching protocols used by
// a family of C64 cartridges: the CPU selects a bank (or flips the
// cartridge's GAME/EXROM lines) by writing to - or, on several carts,
// merely reading - an expansion I/O register. The hook functions receive
// the concrete cart so each protocol can be expressed bit-exactly; see
// c64-wiki.com/Cartridge and the VICE sources for the per-cartridge ground
// truth.
type scheme struct {
	name string

	// bankSize is 8192 for single-window carts (ROML only, mirrored into
	// ROMH where the configuration maps it) or 16384 for carts that bank
	// ROML+ROMH together.
	bankSize int

	// initial line state. linesFromHeader defers to the CRT header's
	// initial GAME/EXROM bytes instead (type 0 carts, which ship as 8K,
	// 16K and ultimax images distinguishable only by the header).
	game, exrom     bool
	linesFromHeader bool

	onIO1Read  func(c *genericCart, addr uint16) uint8
	onIO1Write func(c *genericCart, addr uint16, data uint8)
	onIO2Read  func(c *genericCart, addr uint16) uint8
	onIO2Write func(c *genericCart, addr uint16, data uint8)

	// onROMLRead observes reads of the ROML window itself (Epyx's
	// capacitor recharge).
	onROMLRead func(c *genericCart, addr uint16)

	// tick runs once per master cycle (Epyx's capacitor discharge).
	tick func(c *genericCart)
}

// genericCart is the concrete cartMapper for every scheme-driven variant.
type genericCart struct {
	s     scheme
	banks [][]uint8
	bank  int

	game, exrom               bool
	initialGame, initialExrom bool

	// counter is free for the scheme's hooks; Epyx uses it as the
	// capacitor charge.
	counter int
}

func newGenericCart(s scheme, img *crtImage) (*genericCart, error) {
	c := &genericCart{s: s}
	if s.linesFromHeader {
		c.initialGame, c.initialExrom = img.game, img.exrom
	} else {
		c.initialGame, c.initialExrom = s.game, s.exrom
	}
	c.game, c.exrom = c.initialGame, c.initialExrom

	// place each chip packet by bank number and load address: $8000 maps
	// to the low half of a bank, $A000/$E000 to the high half. packets
	// with an unrecognised load address land at the low half, which is
	// where every dump observed in the wild wants them anyway.
	maxBank := 0
	for _, chip := range img.chips {
		if int(chip.bank) > maxBank {
			maxBank = int(chip.bank)
		}
	}
	c.banks = make([][]uint8, maxBank+1)
	for i := range c.banks {
		bank := make([]uint8, s.bankSize)
		for j := range bank {
			bank[j] = 0xff
		}
		c.banks[i] = bank
	}
	loaded := false
	for _, chip := range img.chips {
		offset := 0
		if s.bankSize > 0x2000 && (chip.address == 0xa000 || chip.address == 0xe000) {
			offset = 0x2000
		}
		copy(c.banks[chip.bank][offset:], chip.data)
		loaded = loaded || len(chip.data) > 0
	}
	if !loaded {
		return nil, errors.Errorf(errors.UnsupportedCartMsg, s.name+": no chip packets")
	}

	return c, nil
}

func (c *genericCart) reset() {
	c.bank = 0
	c.counter = 0
	c.resetCartConfig()
}

func (c *genericCart) resetCartConfig() {
	c.game, c.exrom = c.initialGame, c.initialExrom
}

func (c *genericCart) gameExrom() (bool, bool) { return c.game, c.exrom }
func (c *genericCart) numBanks() int           { return len(c.banks) }
func (c *genericCart) getBank() int            { return c.bank }

func (c *genericCart) setBank(bank int) error {
	if bank < 0 || bank >= len(c.banks) {
		return errors.Errorf(errors.CartridgeError, fmt.Sprintf("%s: invalid bank %d", c.s.name, bank))
	}
	c.bank = bank
	return nil
}

// selectBank is the hooks' entry point: it wraps out-of-range selections
// the way real address decoders do (high bits simply aren't wired).
func (c *genericCart) selectBank(bank int) {
	c.bank = bank % len(c.banks)
}

func (c *genericCart) peek(addr uint16) (uint8, error) {
	if addr < 0x2000 && c.s.onROMLRead != nil {
		c.s.onROMLRead(c, addr)
	}
	bank := c.banks[c.bank]
	return bank[int(addr)%len(bank)], nil
}

func (c *genericCart) poke(addr uint16, data uint8) error { return nil }

func (c *genericCart) peekIO1(addr uint16) (uint8, error) {
	if c.s.onIO1Read != nil {
		return c.s.onIO1Read(c, addr), nil
	}
	return 0xff, nil
}

func (c *genericCart) peekIO2(addr uint16) (uint8, error) {
	if c.s.onIO2Read != nil {
		return c.s.onIO2Read(c, addr), nil
	}
	return 0xff, nil
}

func (c *genericCart) pokeIO1(addr uint16, data uint8) error {
	if c.s.onIO1Write != nil {
		c.s.onIO1Write(c, addr, data)
	}
	return nil
}

func (c *genericCart) pokeIO2(addr uint16, data uint8) error {
	if c.s.onIO2Write != nil {
		c.s.onIO2Write(c, addr, data)
	}
	return nil
}

// execute implements the optional per-cycle hook for schemes that need one.
func (c *genericCart) execute() {
	if c.s.tick != nil {
		c.s.tick(c)
	}
}

func (c *genericCart) saveState() interface{} {
	return [4]int{c.bank, btoi(c.game), btoi(c.exrom), c.counter}
}

func (c *genericCart) restoreState(v interface{}) error {
	s, ok := v.([4]int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "genericCart")
	}
	c.bank, c.game, c.exrom, c.counter = s[0], s[1] != 0, s[2] != 0, s[3]
	return nil
}

func (c *genericCart) getRAMinfo() []RAMinfo { return nil }

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// epyxCapacitorCharge is how many cycles the Epyx Fastload's RC circuit
// holds EXROM low after the last recharge (a ROML or IO1 read).
const epyxCapacitorCharge = 512

// schemes indexes the known simple bank-switch protocols by their CRT type
// code.
var schemes = map[uint16]scheme{
	0: {name: "Normal", bankSize: 16384, linesFromHeader: true},

	// Ocean: write $DE00 selects one of up to 64 8 KiB banks; the same
	// bank appears in ROMH on the 16K-config images.
	5: {name: "Ocean", bankSize: 8192, game: false, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) { c.selectBank(int(d & 0x3f)) }},

	// Magic Desk: write $DE00, bits 0-5 select the bank, bit 7 switches
	// the cartridge ROM off entirely.
	19: {name: "Magic Desk", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) {
			c.selectBank(int(d & 0x3f))
			c.exrom = d&0x80 != 0
		}},

	// Fun Play: write $DE00 with the bank number split across bits 0 and
	// 3-5; the magic value $86 disconnects the ROM.
	7: {name: "Fun Play", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) {
			if d == 0x86 {
				c.exrom = true
				return
			}
			c.exrom = false
			c.selectBank(int((d>>3)&0x07 | (d&0x01)<<3))
		}},

	// Simons' Basic: a 16 KiB cartridge whose second half is switched via
	// GAME: reading $DE00 raises it (8K mode), writing lowers it again.
	4: {name: "Simons' Basic", bankSize: 16384, game: false, exrom: false,
		onIO1Read: func(c *genericCart, _ uint16) uint8 {
			c.game = true
			return 0
		},
		onIO1Write: func(c *genericCart, _ uint16, _ uint8) { c.game = false }},

	// Warp Speed: 16 KiB; any IO1 access switches the ROM in, any IO2
	// access switches it out.
	16: {name: "Warp Speed", bankSize: 16384, game: false, exrom: false,
		onIO1Read:  func(c *genericCart, _ uint16) uint8 { c.game, c.exrom = false, false; return 0xff },
		onIO1Write: func(c *genericCart, _ uint16, _ uint8) { c.game, c.exrom = false, false },
		onIO2Read:  func(c *genericCart, _ uint16) uint8 { c.game, c.exrom = true, true; return 0xff },
		onIO2Write: func(c *genericCart, _ uint16, _ uint8) { c.game, c.exrom = true, true }},

	// Dinamic: reading $DE00+n selects bank n; there is no write protocol
	// at all.
	17: {name: "Dinamic", bankSize: 8192, game: true, exrom: false,
		onIO1Read: func(c *genericCart, addr uint16) uint8 {
			c.selectBank(int(addr & 0x0f))
			return 0xff
		}},

	// Super Games: write $DF00, bits 0-1 select one of four 16 KiB banks,
	// bit 3 latches the cartridge off.
	8: {name: "Super Games", bankSize: 16384, game: false, exrom: false,
		onIO2Write: func(c *genericCart, _ uint16, d uint8) {
			c.selectBank(int(d & 0x03))
			if d&0x08 != 0 {
				c.game, c.exrom = true, true
			}
		}},

	// Comal 80: write $DE00, bits 0-1 select one of four 16 KiB banks.
	21: {name: "Comal 80", bankSize: 16384, game: false, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) { c.selectBank(int(d & 0x03)) }},

	// Epyx Fastload: an RC circuit holds EXROM low only while reads of
	// ROML or IO1 keep recharging it; once it discharges the cartridge
	// vanishes until the next recharge. IO2 exposes the last ROM page.
	10: {name: "Epyx Fastload", bankSize: 8192, game: true, exrom: false,
		onROMLRead: func(c *genericCart, _ uint16) { c.counter = epyxCapacitorCharge },
		onIO1Read: func(c *genericCart, _ uint16) uint8 {
			c.counter = epyxCapacitorCharge
			c.exrom = false
			return 0xff
		},
		onIO2Read: func(c *genericCart, addr uint16) uint8 {
			return c.banks[0][0x1f00+int(addr&0xff)]
		},
		tick: func(c *genericCart) {
			if c.counter > 0 {
				c.counter--
				if c.counter == 0 {
					c.exrom = true
				}
			}
		}},

	// C64 Game System: the bank number is coded in the IO1 address
	// written to; reading IO1 resets to bank 0.
	15: {name: "C64 Game System", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, addr uint16, _ uint8) { c.selectBank(int(addr & 0x3f)) },
		onIO1Read: func(c *genericCart, _ uint16) uint8 {
			c.selectBank(0)
			return 0xff
		}},

	// RGCD: write $DE00, bits 0-2 select one of eight 8 KiB banks, bit 3
	// latches the cartridge off until reset.
	36: {name: "RGCD", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) {
			c.selectBank(int(d & 0x07))
			if d&0x08 != 0 {
				c.exrom = true
			}
		}},

	// RR-Net MK3: an 8 KiB flash cartridge; the network hardware is not
	// modelled, only the ROM disable register.
	37: {name: "RR-Net MK3", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, addr uint16, _ uint8) {
			if addr&0xff == 0xfe {
				c.exrom = true
			}
		}},

	// GMod2: write $DE00, bits 0-5 select the bank, bit 6 addresses the
	// EEPROM (not modelled), bit 7 switches the ROM off.
	60: {name: "GMod2", bankSize: 8192, game: true, exrom: false,
		onIO1Write: func(c *genericCart, _ uint16, d uint8) {
			c.selectBank(int(d & 0x3f))
			c.exrom = d&0x80 != 0
		}},

	// Kingsoft "Business Basic": reading IO1 banks the full 16K in,
	// writing IO1 drops back to 8K.
	54: {name: "Kingsoft", bankSize: 16384, game: false, exrom: false,
		onIO1Read:  func(c *genericCart, _ uint16) uint8 { c.game = false; return 0xff },
		onIO1Write: func(c *genericCart, _ uint16, _ uint8) { c.game = true }},

	// Freeze Frame: mapped like an 8 KiB ultimax-capable ROM; IO1 access
	// selects 8K mode, IO2 access disables.
	45: {name: "Freeze Frame", bankSize: 8192, game: false, exrom: false,
		onIO1Read:  func(c *genericCart, _ uint16) uint8 { c.game, c.exrom = true, false; return 0xff },
		onIO1Write: func(c *genericCart, _ uint16, _ uint8) { c.game, c.exrom = true, false },
		onIO2Read:  func(c *genericCart, _ uint16) uint8 { c.game, c.exrom = true, true; return 0xff },
		onIO2Write: func(c *genericCart, _ uint16, _ uint8) { c.game, c.exrom = true, true }},

	// Westermann Learning: a 16 KiB cartridge that drops its ROMH half
	// (GAME back high) on any IO2 read.
	11: {name: "Westermann Learning", bankSize: 16384, game: false, exrom: false,
		onIO2Read: func(c *genericCart, _ uint16) uint8 {
			c.game = true
			return 0xff
		}},

	// Rex Utility: reading IO2 below $DFC0 enables the ROM, reading
	// $DFC0-$DFFF disables it.
	12: {name: "Rex Utility", bankSize: 8192, game: true, exrom: false,
		onIO2Read: func(c *genericCart, addr uint16) uint8 {
			c.exrom = addr&0xc0 == 0xc0
			return 0xff
		}},

	// StarDos: IO1 accesses charge the enable circuit, IO2 accesses
	// discharge it. The gradual charge of the real hardware is collapsed
	// to an instant switch.
	31: {name: "StarDos", bankSize: 8192, game: true, exrom: false,
		onIO1Read:  func(c *genericCart, _ uint16) uint8 { c.exrom = false; return 0xff },
		onIO1Write: func(c *genericCart, _ uint16, _ uint8) { c.exrom = false },
		onIO2Read:  func(c *genericCart, _ uint16) uint8 { c.exrom = true; return 0xff },
		onIO2Write: func(c *genericCart, _ uint16, _ uint8) { c.exrom = true }},
}
