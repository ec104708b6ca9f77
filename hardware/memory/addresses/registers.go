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

package addresses

// ChipRegister specifies the offset of a chip register within a chip's
// register area. Used in contexts where a register is wanted rather than a
// fully resolved bus address.
type ChipRegister int

// CIA registers. Values are enumerated from 0 and are added to the origin
// address ($DC00 or $DD00) by ChipBus.ChipWrite/ChipRead implementations.
// Both 6526 chips share this layout.
const (
	PRA ChipRegister = iota
	PRB
	DDRA
	DDRB
	TALO
	TAHI
	TBLO
	TBHI
	TOD10THS
	TODSEC
	TODMIN
	TODHR
	SDR
	ICR
	CRA
	CRB
)

// VIC register offsets from $D000 for a subset of the registers; the
// full symbol set is VICReadSymbols.
const (
	M0X     ChipRegister = 0x00
	SCROLY  ChipRegister = 0x11
	RASTER  ChipRegister = 0x12
	SPENA   ChipRegister = 0x15
	SCROLX  ChipRegister = 0x16
	VMCSB   ChipRegister = 0x18
	VICIRQ  ChipRegister = 0x19
	IRQMASK ChipRegister = 0x1a
)
