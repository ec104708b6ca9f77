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

// VICBus is the VIC-II's own 16 KiB window onto the 64 KiB address space,
// selected by CIA2 port A bits 0-1 (inverted: 00 selects bank 3). Unlike
// the CPU's view, the VIC is wired so that the character ROM always
// appears at offsets $1000-$1FFF of its window regardless of the
// processor port's CHAREN bit - the two views are multiplexed by
// different address lines on real hardware, and this type reproduces
// that rather than routing through memorymap.Table.
type VICBus struct {
	ram  *RAM
	char *ROM
	bank int
}

// NewVICBus constructs the VIC's memory view over the machine's shared RAM
// and character ROM.
func NewVICBus(ram *RAM, char *ROM) *VICBus {
	return &VICBus{ram: ram, char: char}
}

// SetVICBank implements input.BankSelect: CIA2 port A calls this whenever
// the CPU writes its bank-select bits.
func (v *VICBus) SetVICBank(bank int) {
	v.bank = bank & 0x03
}

// Bank reports the currently selected 16 KiB bank (0-3).
func (v *VICBus) Bank() int {
	return v.bank
}

// Fetch reads one byte from the VIC's address space at offset (0-$3FFF)
// within the current bank. The character ROM shadow at $1000-$1FFF only
// exists in banks 0 and 2; in banks 1 and 3 the VIC sees RAM there.
func (v *VICBus) Fetch(offset uint16) uint8 {
	offset &= 0x3fff
	if v.bank&0x01 == 0 && offset&0x3000 == 0x1000 {
		return v.char.ReadChar(offset & 0x0fff)
	}
	return v.ram.Read(uint16(v.bank)*0x4000 + offset)
}
