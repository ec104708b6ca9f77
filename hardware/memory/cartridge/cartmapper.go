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

// cartMapper implementations hold the actual ROM/RAM data for one loaded
// cartridge and track which banks are mapped into ROML/ROMH. Addresses
// passed to peek/poke are normalised by the Cartridge container: ROML
// occupies 0x0000-0x1fff and ROMH 0x2000-0x3fff regardless of whether the
// configuration maps ROMH at $A000 or (in ultimax) $E000. IO1/IO2
// addresses are normalised to 0x0000-0x00ff.
type cartMapper interface {
	reset()
	resetCartConfig()

	peek(addr uint16) (data uint8, err error)
	peekIO1(addr uint16) (data uint8, err error)
	peekIO2(addr uint16) (data uint8, err error)

	poke(addr uint16, data uint8) error
	pokeIO1(addr uint16, data uint8) error
	pokeIO2(addr uint16, data uint8) error

	// gameExrom reports the cartridge's current contribution to the GAME
	// and EXROM lines.
	gameExrom() (game bool, exrom bool)

	numBanks() int
	getBank() int
	setBank(bank int) error

	saveState() interface{}
	restoreState(interface{}) error

	getRAMinfo() []RAMinfo
}

// executable is implemented by mappers that need a per-cycle hook, eg. the
// generic mapper's tick for the Epyx Fastload's capacitor discharge.
type executable interface {
	execute()
}

// buttoned is implemented by mappers with a reset/freeze button exposed to
// the host (freezer cartridges).
type buttoned interface {
	pressFreezeButton()
	releaseFreezeButton()
}

// switchable is implemented by mappers with a physical mode switch (Expert).
type switchable interface {
	setSwitch(position int)
}

// nmiWatcher is implemented by mappers that need to know an NMI is about to
// be serviced, eg. Expert arming itself on the first NMI after reset.
type nmiWatcher interface {
	nmiWillTrigger()
}

// RAMinfo details the read/write addresses for any cartridge RAM, surfaced
// to the debugger.
type RAMinfo struct {
	Label       string
	Active      bool
	ReadOrigin  uint16
	ReadMemtop  uint16
	WriteOrigin uint16
	WriteMemtop uint16
}
