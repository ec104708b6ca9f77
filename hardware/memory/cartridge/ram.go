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

import "github.com/dirkwhoffmann/go64/errors"

// isepic is a 2 KiB RAM cartridge paged into ROML in 256-byte windows
// selected by writing IO2. Each IO1 write toggles it on or off; while on
// it pulls EXROM low and its current page appears at $8000, mirrored
// across ROML.
type isepic struct {
	ram    [0x800]uint8
	page   int
	active bool
}

func newIsepic(img *crtImage) (*isepic, error) {
	return &isepic{}, nil
}

func (i *isepic) reset()           { i.page = 0; i.active = false }
func (i *isepic) resetCartConfig() { i.active = false }
func (i *isepic) gameExrom() (bool, bool) {
	if i.active {
		return true, false
	}
	return true, true
}
func (i *isepic) numBanks() int       { return 1 }
func (i *isepic) getBank() int        { return 0 }
func (i *isepic) setBank(b int) error { return nil }

func (i *isepic) peek(addr uint16) (uint8, error) {
	return i.ram[i.page*0x100+int(addr&0xff)], nil
}

func (i *isepic) poke(addr uint16, data uint8) error {
	i.ram[i.page*0x100+int(addr&0xff)] = data
	return nil
}

func (i *isepic) peekIO1(addr uint16) (uint8, error) { return 0xff, nil }
func (i *isepic) pokeIO1(addr uint16, data uint8) error {
	i.active = !i.active
	return nil
}

func (i *isepic) peekIO2(addr uint16) (uint8, error) { return 0xff, nil }
func (i *isepic) pokeIO2(addr uint16, data uint8) error {
	i.page = int(addr) & 0x07
	return nil
}

func (i *isepic) saveState() interface{} { return [2]int{i.page, btoi(i.active)} }
func (i *isepic) restoreState(v interface{}) error {
	s, ok := v.([2]int)
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "isepic")
	}
	i.page, i.active = s[0], s[1] != 0
	return nil
}
func (i *isepic) getRAMinfo() []RAMinfo {
	return []RAMinfo{{Label: "Isepic RAM", Active: i.active, ReadOrigin: 0x8000, ReadMemtop: 0x80ff}}
}

// geoRAM is a pure-RAM cartridge with no ROM content at all: a 256-byte
// window into the RAM appears at IO1 ($DE00-$DEFF), positioned by the two
// registers at $DFFE (page within the current 16 KiB block) and $DFFF
// (block). It never touches GAME/EXROM, so the machine's memory map is
// unchanged. Capacity must be a power of two in {64, 256, 512, 1024,
// 2048, 4096} KiB.
type geoRAM struct {
	ram  []uint8
	page int // 0-63 within the block
	block int
}

var geoRAMSizes = map[int]bool{64: true, 256: true, 512: true, 1024: true, 2048: true, 4096: true}

func newGeoRAM(img *crtImage) (*geoRAM, error) {
	size := 512 // KiB default when the CRT doesn't specify a size explicitly
	total := 0
	for _, chip := range img.chips {
		total += len(chip.data)
	}
	if kb := total / 1024; geoRAMSizes[kb] {
		size = kb
	}

	g := &geoRAM{ram: make([]uint8, size*1024)}
	for i := range g.ram {
		g.ram[i] = 0xff
	}
	return g, nil
}

func (g *geoRAM) reset()                  { g.page, g.block = 0, 0 }
func (g *geoRAM) resetCartConfig()        {}
func (g *geoRAM) gameExrom() (bool, bool) { return true, true }
func (g *geoRAM) numBanks() int           { return len(g.ram) / 0x4000 }
func (g *geoRAM) getBank() int            { return g.block }
func (g *geoRAM) setBank(b int) error     { return nil }

// offset is the start of the currently selected 256-byte window.
func (g *geoRAM) offset() int {
	return (g.block*0x4000 + g.page*0x100) % len(g.ram)
}

// the ROML window never holds GeoRAM data; all access goes through IO1
func (g *geoRAM) peek(addr uint16) (uint8, error)     { return 0xff, nil }
func (g *geoRAM) poke(addr uint16, data uint8) error  { return nil }

func (g *geoRAM) peekIO1(addr uint16) (uint8, error) {
	return g.ram[(g.offset()+int(addr&0xff))%len(g.ram)], nil
}

func (g *geoRAM) pokeIO1(addr uint16, data uint8) error {
	g.ram[(g.offset()+int(addr&0xff))%len(g.ram)] = data
	return nil
}

func (g *geoRAM) peekIO2(addr uint16) (uint8, error) { return 0xff, nil }
func (g *geoRAM) pokeIO2(addr uint16, data uint8) error {
	switch addr & 0xff {
	case 0xfe:
		g.page = int(data & 0x3f)
	case 0xff:
		g.block = int(data)
	}
	return nil
}

func (g *geoRAM) saveState() interface{} {
	clone := make([]uint8, len(g.ram))
	copy(clone, g.ram)
	return [3]interface{}{g.page, g.block, clone}
}

func (g *geoRAM) restoreState(v interface{}) error {
	s, ok := v.([3]interface{})
	if !ok {
		return errors.Errorf(errors.CorruptedSnapshotMsg, "geoRAM")
	}
	g.page = s[0].(int)
	g.block = s[1].(int)
	copy(g.ram, s[2].([]uint8))
	return nil
}

func (g *geoRAM) getRAMinfo() []RAMinfo {
	return []RAMinfo{{Label: "GeoRAM", Active: true, ReadOrigin: 0xde00, ReadMemtop: 0xdeff}}
}
