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

package drive1541

import "github.com/dirkwhoffmann/go64/errors"

// Memory is the 1541's CPU-facing address space: 2 KiB of RAM mirrored
// below $1800, the two 6522 VIAs each mirrored across a 1 KiB block, and
// a fixed 16 KiB DOS ROM at $C000-$FFFF. Unlike the C64's own memory,
// there is no bank switching: the glue logic decodes a fixed chip-select
// map wired at the factory.
type Memory struct {
	ram  [0x0800]uint8
	rom  [0x4000]uint8
	via1 *VIA
	via2 *VIA
}

// NewMemory constructs the drive's memory map wired to its two VIAs.
// LoadROM must be called before the drive can run.
func NewMemory(via1, via2 *VIA) *Memory {
	return &Memory{via1: via1, via2: via2}
}

// LoadROM installs the 16 KiB DOS ROM image.
func (m *Memory) LoadROM(data []byte) error {
	if len(data) != len(m.rom) {
		return errors.Errorf(errors.RomMissingMsg, "1541 ROM must be exactly 16 KiB")
	}
	copy(m.rom[:], data)
	return nil
}

// Read implements bus.CPUBus.
func (m *Memory) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x1800:
		return m.ram[address&0x07ff], nil
	case address < 0x1c00:
		return m.via1.ChipReadRegister(address & 0x0f), nil
	case address < 0x2000:
		return m.via2.ChipReadRegister(address & 0x0f), nil
	case address >= 0xc000:
		return m.rom[address-0xc000], nil
	}
	return 0xff, nil
}

// Write implements bus.CPUBus.
func (m *Memory) Write(address uint16, data uint8) error {
	switch {
	case address < 0x1800:
		m.ram[address&0x07ff] = data
	case address < 0x1c00:
		m.via1.ChipWrite(address&0x0f, data)
	case address < 0x2000:
		m.via2.ChipWrite(address&0x0f, data)
	case address >= 0xc000:
		// ROM: writes are ignored, matching real hardware
	}
	return nil
}

// Peek implements bus.DebuggerBus without registering a CPU-visible
// side effect for the VIA register windows.
func (m *Memory) Peek(address uint16) (uint8, error) {
	switch {
	case address >= 0x1800 && address < 0x1c00:
		return m.via1.Peek(address & 0x0f)
	case address >= 0x1c00 && address < 0x2000:
		return m.via2.Peek(address & 0x0f)
	}
	return m.Read(address)
}

// Poke implements bus.DebuggerBus.
func (m *Memory) Poke(address uint16, data uint8) error {
	return m.Write(address, data)
}
