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
	"encoding/binary"
	"fmt"

	"github.com/dirkwhoffmann/go64/errors"
)

// crtMagic is the fixed 16-byte ASCII signature at the start of every CRT
// file.
const crtMagic = "C64 CARTRIDGE   "

// chipPacket is one "CHIP" block from a CRT file: a single ROM or RAM bank
// destined for a particular load address.
type chipPacket struct {
	kind    uint16 // 0=ROM, 1=RAM, 2=Flash ROM
	bank    uint16
	address uint16
	data    []byte
}

// crtImage is the parsed form of a CRT file, ready to be handed to a
// mapper constructor keyed by crtType.
type crtImage struct {
	crtType uint16
	exrom   bool // true == line high (inactive)
	game    bool
	name    string
	chips   []chipPacket
}

// parseCRT decodes a raw CRT file image. Parsing stops at the first
// malformed chip packet and keeps the packets read before it, so a bad
// trailing packet never makes an otherwise loadable image unusable. The
// packet kind is recorded but not checked.
func parseCRT(data []byte) (*crtImage, error) {
	if len(data) < 0x40 || string(data[0:16]) != crtMagic {
		return nil, errors.Errorf(errors.FileTypeMismatchMsg, "not a CRT image")
	}

	headerLen := binary.BigEndian.Uint32(data[0x10:0x14])
	if headerLen < 0x40 {
		headerLen = 0x40
	}
	if int(headerLen) > len(data) {
		return nil, errors.Errorf(errors.FileTypeMismatchMsg, "truncated CRT header")
	}

	// header bytes $18/$19 store the initial line state with 0 meaning
	// pulled low (active); the parsed fields follow the line-high==true
	// convention used everywhere else
	img := &crtImage{
		crtType: binary.BigEndian.Uint16(data[0x16:0x18]),
		exrom:   data[0x18] != 0,
		game:    data[0x19] != 0,
	}

	nameBytes := data[0x20:0x40]
	end := 0
	for end < len(nameBytes) && nameBytes[end] != 0 {
		end++
	}
	img.name = string(nameBytes[:end])

	pos := int(headerLen)
	for pos+16 <= len(data) {
		if string(data[pos:pos+4]) != "CHIP" {
			break
		}
		packetLen := binary.BigEndian.Uint32(data[pos+4 : pos+8])
		if packetLen < 16 || pos+int(packetLen) > len(data) {
			break
		}

		chip := chipPacket{
			kind:    binary.BigEndian.Uint16(data[pos+8 : pos+10]),
			bank:    binary.BigEndian.Uint16(data[pos+10 : pos+12]),
			address: binary.BigEndian.Uint16(data[pos+12 : pos+14]),
		}
		size := binary.BigEndian.Uint16(data[pos+14 : pos+16])
		dataStart := pos + 16
		dataEnd := dataStart + int(size)
		if dataEnd > pos+int(packetLen) {
			dataEnd = pos + int(packetLen)
		}
		if dataEnd > len(data) {
			dataEnd = len(data)
		}
		chip.data = data[dataStart:dataEnd]
		img.chips = append(img.chips, chip)

		pos += int(packetLen)
	}

	return img, nil
}

func (img *crtImage) String() string {
	return fmt.Sprintf("%s (type %d, %d chips)", img.name, img.crtType, len(img.chips))
}
