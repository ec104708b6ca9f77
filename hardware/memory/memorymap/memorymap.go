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

// Package memorymap implements the classic C64 32-row bank-switching table:
// the five lines LORAM, HIRAM, CHAREN (from processor port bits 0-2) and
// GAME, EXROM (from the expansion port) select, for each 4 KiB page of the
// address space, whether the CPU sees RAM, a ROM overlay, the I/O area, or
// cartridge ROM.
package memorymap

// Page identifies what a 4 KiB region of the address space is currently
// mapped to. The memory container dispatches Read/Write/Peek/Poke to the
// area named by peekSrc/pokeTarget for the page the address falls in.
type Page int

const (
	RAM Page = iota
	BASIC
	CHAR
	KERNAL
	IO
	CRT_LOW
	CRT_HIGH
	PROCESSOR_PORT
	OPEN
)

func (p Page) String() string {
	switch p {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case CHAR:
		return "CHAR"
	case KERNAL:
		return "KERNAL"
	case IO:
		return "IO"
	case CRT_LOW:
		return "CRT_LOW"
	case CRT_HIGH:
		return "CRT_HIGH"
	case PROCESSOR_PORT:
		return "PROCESSOR_PORT"
	case OPEN:
		return "OPEN"
	}
	return "?"
}

// Lines is the set of five inputs that select a bank configuration: the
// processor port bits LORAM/HIRAM/CHAREN and the cartridge's GAME/EXROM
// pins (both active-low, as on real hardware: true means the line is high).
type Lines struct {
	LORAM  bool
	HIRAM  bool
	CHAREN bool
	GAME   bool
	EXROM  bool
}

// index folds the five lines into the 0-31 row of the bank table below.
// LORAM/HIRAM/CHAREN and GAME follow the line's own state (bit set when
// the line is high), but the EXROM bit is set when EXROM is *low*: EXROM
// asserted is what makes a cartridge's ROM visible, so the table is laid
// out with the rows for "EXROM driven low" in the high half of the index
// range and the no-cartridge default (both lines high) in the low half
// alongside the plain RAM/BASIC/KERNAL rows.
func (l Lines) index() int {
	i := 0
	if l.LORAM {
		i |= 0x01
	}
	if l.HIRAM {
		i |= 0x02
	}
	if l.CHAREN {
		i |= 0x04
	}
	if l.GAME {
		i |= 0x08
	}
	if !l.EXROM {
		i |= 0x10
	}
	return i
}

// row describes the page classification of the four switchable regions of
// the address space for one of the 32 bank configurations. ultimax
// additionally strips the machine down to the 4 KiB of RAM at $0000: the
// pages at $1000-$7FFF and $C000-$CFFF float (open bus).
type row struct {
	loROM   Page // $8000-$9FFF
	hiROM   Page // $A000-$BFFF
	ioROM   Page // $D000-$DFFF
	topROM  Page // $E000-$FFFF
	ultimax bool
}

// table is indexed by Lines.index() and reproduces the C64 Programmer's
// Reference Guide configuration chart. Row comments give the index bits
// in !EXROM/GAME/CHAREN/HIRAM/LORAM order; "!EXROM" is the index bit,
// which is set when the EXROM line is *low* (see index()).
var table = [32]row{
	// !EXROM=0, GAME=0: EXROM high, GAME low. Ultimax, regardless of the
	// processor port bits (the PLA ignores them in this configuration).
	0b00000: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00001: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00010: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00011: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00100: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00101: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00110: {CRT_LOW, OPEN, IO, CRT_HIGH, true},
	0b00111: {CRT_LOW, OPEN, IO, CRT_HIGH, true},

	// !EXROM=0, GAME=1: no cartridge ROM visible.
	0b01000: {RAM, RAM, RAM, RAM, false},
	0b01001: {RAM, RAM, RAM, RAM, false},
	0b01010: {RAM, RAM, CHAR, KERNAL, false},
	0b01011: {RAM, BASIC, CHAR, KERNAL, false},
	0b01100: {RAM, RAM, RAM, RAM, false},
	0b01101: {RAM, RAM, IO, RAM, false},
	0b01110: {RAM, RAM, IO, KERNAL, false},
	0b01111: {RAM, BASIC, IO, KERNAL, false},

	// !EXROM=1, GAME=0: both lines low, the 16 KiB cartridge
	// configuration. ROMH appears at $A000 whenever HIRAM is set; ROML
	// additionally needs LORAM.
	0b10000: {RAM, RAM, RAM, RAM, false},
	0b10001: {RAM, RAM, RAM, RAM, false},
	0b10010: {RAM, CRT_HIGH, CHAR, KERNAL, false},
	0b10011: {CRT_LOW, CRT_HIGH, CHAR, KERNAL, false},
	0b10100: {RAM, RAM, RAM, RAM, false},
	0b10101: {RAM, RAM, IO, RAM, false},
	0b10110: {RAM, CRT_HIGH, IO, KERNAL, false},
	0b10111: {CRT_LOW, CRT_HIGH, IO, KERNAL, false},

	// !EXROM=1, GAME=1: EXROM low alone, the 8 KiB cartridge
	// configuration. ROML replaces the RAM at $8000 only when both LORAM
	// and HIRAM are set; everything else matches the no-cartridge rows.
	0b11000: {RAM, RAM, RAM, RAM, false},
	0b11001: {RAM, RAM, RAM, RAM, false},
	0b11010: {RAM, RAM, CHAR, KERNAL, false},
	0b11011: {CRT_LOW, BASIC, CHAR, KERNAL, false},
	0b11100: {RAM, RAM, RAM, RAM, false},
	0b11101: {RAM, RAM, IO, RAM, false},
	0b11110: {RAM, RAM, IO, KERNAL, false},
	0b11111: {CRT_LOW, BASIC, IO, KERNAL, false},
}

// PeekSrc and PokeTarget are recomputed by Recompute() whenever Lines
// changes; the memory container indexes them with address>>12 to decide
// where to dispatch a read or a write. They are identical except that ROM
// writes fall through to the underlying RAM rather than the ROM overlay.
type Table struct {
	PeekSrc    [16]Page
	PokeTarget [16]Page
}

// Ultimax reports whether the most recent Recompute selected an ultimax
// row. The VIC's address decoding wants to know this too: in ultimax mode
// its $3000-$3FFF window fetches cartridge ROM instead of RAM.
func (t *Table) Ultimax() bool {
	return t.PeekSrc[0x1] == OPEN
}

// Recompute rebuilds the 16-entry peekSrc/pokeTarget arrays from the given
// Lines, following the 32-row configuration table above.
func (t *Table) Recompute(l Lines) {
	r := table[l.index()]

	for page := 0; page < 16; page++ {
		t.PeekSrc[page] = RAM
	}

	t.PeekSrc[0x8] = r.loROM
	t.PeekSrc[0x9] = r.loROM
	t.PeekSrc[0xa] = r.hiROM
	t.PeekSrc[0xb] = r.hiROM
	t.PeekSrc[0xd] = r.ioROM
	t.PeekSrc[0xe] = r.topROM
	t.PeekSrc[0xf] = r.topROM

	if r.ultimax {
		// only the 4 KiB at $0000 remains as RAM; $C000-$CFFF and the
		// pages between the zero-page block and ROML float.
		for page := 0x1; page <= 0x7; page++ {
			t.PeekSrc[page] = OPEN
		}
		t.PeekSrc[0xc] = OPEN
	}

	// a write to a page classified as ROM is silently redirected to the
	// RAM beneath it; writes to open pages go nowhere.
	for page := 0; page < 16; page++ {
		switch t.PeekSrc[page] {
		case BASIC, CHAR, KERNAL:
			t.PokeTarget[page] = RAM
		case OPEN:
			t.PokeTarget[page] = OPEN
		default:
			t.PokeTarget[page] = t.PeekSrc[page]
		}
	}
}
