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

package memorymap_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/memory/memorymap"
	"github.com/dirkwhoffmann/go64/test"
)

func TestPowerOnConfiguration(t *testing.T) {
	var tbl memorymap.Table
	tbl.Recompute(memorymap.Lines{LORAM: true, HIRAM: true, CHAREN: true, GAME: true, EXROM: true})

	test.Equate(t, tbl.PeekSrc[0x8], memorymap.RAM)
	test.Equate(t, tbl.PeekSrc[0xa], memorymap.BASIC)
	test.Equate(t, tbl.PeekSrc[0xd], memorymap.IO)
	test.Equate(t, tbl.PeekSrc[0xe], memorymap.KERNAL)

	test.Equate(t, tbl.PokeTarget[0xa], memorymap.RAM)
	test.Equate(t, tbl.PokeTarget[0xe], memorymap.RAM)
}

func TestAllRAMConfiguration(t *testing.T) {
	var tbl memorymap.Table
	tbl.Recompute(memorymap.Lines{LORAM: false, HIRAM: false, CHAREN: false, GAME: true, EXROM: true})

	for page := 0; page < 16; page++ {
		test.Equate(t, tbl.PeekSrc[page], memorymap.RAM)
	}
}

func TestUltimaxConfiguration(t *testing.T) {
	// GAME low with EXROM left high selects ultimax regardless of the
	// processor port bits.
	for port := 0; port < 8; port++ {
		var tbl memorymap.Table
		tbl.Recompute(memorymap.Lines{
			LORAM:  port&0x01 != 0,
			HIRAM:  port&0x02 != 0,
			CHAREN: port&0x04 != 0,
			GAME:   false,
			EXROM:  true,
		})

		test.ExpectSuccess(t, tbl.Ultimax())
		test.Equate(t, tbl.PeekSrc[0x0], memorymap.RAM)
		test.Equate(t, tbl.PeekSrc[0x1], memorymap.OPEN)
		test.Equate(t, tbl.PeekSrc[0x8], memorymap.CRT_LOW)
		test.Equate(t, tbl.PeekSrc[0xa], memorymap.OPEN)
		test.Equate(t, tbl.PeekSrc[0xc], memorymap.OPEN)
		test.Equate(t, tbl.PeekSrc[0xd], memorymap.IO)
		test.Equate(t, tbl.PeekSrc[0xe], memorymap.CRT_HIGH)

		// flash programming in ultimax mode writes through to the
		// cartridge, not to RAM
		test.Equate(t, tbl.PokeTarget[0x8], memorymap.CRT_LOW)
		test.Equate(t, tbl.PokeTarget[0xe], memorymap.CRT_HIGH)
	}
}

func Test8KCartridgeConfiguration(t *testing.T) {
	var tbl memorymap.Table
	tbl.Recompute(memorymap.Lines{LORAM: true, HIRAM: true, CHAREN: true, GAME: true, EXROM: false})

	test.Equate(t, tbl.PeekSrc[0x8], memorymap.CRT_LOW)
	test.Equate(t, tbl.PeekSrc[0xa], memorymap.BASIC)
	test.Equate(t, tbl.PeekSrc[0xd], memorymap.IO)
	test.Equate(t, tbl.PeekSrc[0xe], memorymap.KERNAL)

	// ROML needs both LORAM and HIRAM; dropping LORAM reverts $8000 to RAM
	tbl.Recompute(memorymap.Lines{LORAM: false, HIRAM: true, CHAREN: true, GAME: true, EXROM: false})
	test.Equate(t, tbl.PeekSrc[0x8], memorymap.RAM)
}

func Test16KCartridgeConfiguration(t *testing.T) {
	var tbl memorymap.Table
	tbl.Recompute(memorymap.Lines{LORAM: true, HIRAM: true, CHAREN: true, GAME: false, EXROM: false})

	test.Equate(t, tbl.PeekSrc[0x8], memorymap.CRT_LOW)
	test.Equate(t, tbl.PeekSrc[0xa], memorymap.CRT_HIGH)
	test.Equate(t, tbl.PeekSrc[0xe], memorymap.KERNAL)

	// ROMH follows HIRAM alone; ROML drops out with LORAM
	tbl.Recompute(memorymap.Lines{LORAM: false, HIRAM: true, CHAREN: true, GAME: false, EXROM: false})
	test.Equate(t, tbl.PeekSrc[0x8], memorymap.RAM)
	test.Equate(t, tbl.PeekSrc[0xa], memorymap.CRT_HIGH)
}

// TestEveryConfiguration pins all 32 rows of the bank table at once, in
// the order the index() folding produces them. Each entry lists the
// classification of $8000/$A000/$D000/$E000.
func TestEveryConfiguration(t *testing.T) {
	expected := [32][4]memorymap.Page{
		// GAME low, EXROM high: ultimax block
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		{memorymap.CRT_LOW, memorymap.OPEN, memorymap.IO, memorymap.CRT_HIGH},
		// both lines high: no cartridge
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.RAM, memorymap.BASIC, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.IO, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.IO, memorymap.KERNAL},
		{memorymap.RAM, memorymap.BASIC, memorymap.IO, memorymap.KERNAL},
		// both lines low: 16 KiB cartridge
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.CRT_HIGH, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.CRT_LOW, memorymap.CRT_HIGH, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.IO, memorymap.RAM},
		{memorymap.RAM, memorymap.CRT_HIGH, memorymap.IO, memorymap.KERNAL},
		{memorymap.CRT_LOW, memorymap.CRT_HIGH, memorymap.IO, memorymap.KERNAL},
		// EXROM low alone: 8 KiB cartridge
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.CRT_LOW, memorymap.BASIC, memorymap.CHAR, memorymap.KERNAL},
		{memorymap.RAM, memorymap.RAM, memorymap.RAM, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.IO, memorymap.RAM},
		{memorymap.RAM, memorymap.RAM, memorymap.IO, memorymap.KERNAL},
		{memorymap.CRT_LOW, memorymap.BASIC, memorymap.IO, memorymap.KERNAL},
	}

	for i, exp := range expected {
		var tbl memorymap.Table
		tbl.Recompute(memorymap.Lines{
			LORAM:  i&0x01 != 0,
			HIRAM:  i&0x02 != 0,
			CHAREN: i&0x04 != 0,
			GAME:   i&0x08 != 0,
			EXROM:  i&0x10 == 0,
		})
		test.Equate(t, tbl.PeekSrc[0x8], exp[0])
		test.Equate(t, tbl.PeekSrc[0xa], exp[1])
		test.Equate(t, tbl.PeekSrc[0xd], exp[2])
		test.Equate(t, tbl.PeekSrc[0xe], exp[3])
	}
}
