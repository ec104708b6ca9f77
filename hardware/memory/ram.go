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

// RAM is the C64's full 64 KiB of DRAM. It is always present underneath
// whichever ROM overlay or cartridge is currently banked in, which is why
// ROM writes (and pokes to cartridge-backed pages) fall through to it.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM returns a zeroed RAM; the caller is responsible for randomising
// its contents if the "randomise startup RAM" preference is enabled.
func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

func (r *RAM) Write(address uint16, data uint8) {
	r.data[address] = data
}

// Fill sets every byte of RAM using f, called once per address in order.
// Used by the scheduler on reset to apply the configured startup pattern (all zero,
// all one, or a pseudo-random byte per address).
func (r *RAM) Fill(f func(address uint16) uint8) {
	for a := 0; a < len(r.data); a++ {
		r.data[a] = f(uint16(a))
	}
}
