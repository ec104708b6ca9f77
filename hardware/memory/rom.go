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

import "github.com/dirkwhoffmann/go64/errors"

// ROM holds the three fixed system ROM images: BASIC ($A000-$BFFF), CHAR
// ($D000-$DFFF, banked out by I/O whenever CHAREN is set) and KERNAL
// ($E000-$FFFF). BASIC and KERNAL are 8 KiB each, CHAR is 4 KiB.
type ROM struct {
	Basic  [0x2000]uint8
	Char   [0x1000]uint8
	Kernal [0x2000]uint8
}

// NewROM returns an empty ROM set; LoadBasic/LoadChar/LoadKernal must be
// called before the machine can run.
func NewROM() *ROM {
	return &ROM{}
}

// LoadBasic installs the BASIC ROM image. Returns RomMissing if data is not
// exactly 8 KiB.
func (r *ROM) LoadBasic(data []byte) error {
	return load(r.Basic[:], data)
}

// LoadChar installs the character generator ROM image. Must be exactly 4
// KiB.
func (r *ROM) LoadChar(data []byte) error {
	return load(r.Char[:], data)
}

// LoadKernal installs the KERNAL ROM image. Must be exactly 8 KiB.
func (r *ROM) LoadKernal(data []byte) error {
	return load(r.Kernal[:], data)
}

func load(dst []uint8, src []byte) error {
	if len(src) != len(dst) {
		return errors.Errorf(errors.RomMissingMsg, "unexpected image size")
	}
	copy(dst, src)
	return nil
}

func (r *ROM) ReadBasic(offset uint16) uint8  { return r.Basic[offset] }
func (r *ROM) ReadChar(offset uint16) uint8   { return r.Char[offset] }
func (r *ROM) ReadKernal(offset uint16) uint8 { return r.Kernal[offset] }
