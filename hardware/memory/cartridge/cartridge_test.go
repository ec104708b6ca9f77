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

package cartridge_test

import (
	"encoding/binary"
	"testing"

	"github.com/dirkwhoffmann/go64/cartridgeloader"
	"github.com/dirkwhoffmann/go64/hardware/memory/cartridge"
	"github.com/dirkwhoffmann/go64/test"
)

// crtChip is one CHIP packet for buildCRT.
type crtChip struct {
	bank    uint16
	address uint16
	data    []byte
}

// buildCRT assembles a syntactically valid CRT image in memory. exromLow
// and gameLow give the header's initial line bytes (0 = pulled low).
func buildCRT(crtType uint16, name string, exromLow, gameLow bool, chips []crtChip) []byte {
	img := make([]byte, 0x40)
	copy(img, "C64 CARTRIDGE   ")
	binary.BigEndian.PutUint32(img[0x10:], 0x40)
	binary.BigEndian.PutUint16(img[0x14:], 0x0100)
	binary.BigEndian.PutUint16(img[0x16:], crtType)
	if !exromLow {
		img[0x18] = 1
	}
	if !gameLow {
		img[0x19] = 1
	}
	copy(img[0x20:0x3f], name)

	for _, c := range chips {
		packet := make([]byte, 16)
		copy(packet, "CHIP")
		binary.BigEndian.PutUint32(packet[4:], uint32(16+len(c.data)))
		binary.BigEndian.PutUint16(packet[8:], 0) // ROM
		binary.BigEndian.PutUint16(packet[10:], c.bank)
		binary.BigEndian.PutUint16(packet[12:], c.address)
		binary.BigEndian.PutUint16(packet[14:], uint16(len(c.data)))
		img = append(img, packet...)
		img = append(img, c.data...)
	}
	return img
}

// bankData fills an 8 KiB bank with a recognisable marker byte.
func bankData(marker uint8) []byte {
	d := make([]byte, 0x2000)
	for i := range d {
		d[i] = marker
	}
	return d
}

func attach(t *testing.T, img []byte) *cartridge.Cartridge {
	t.Helper()
	ld, err := cartridgeloader.NewLoaderFromData("test.crt", img, cartridgeloader.KindCartridge)
	test.ExpectSuccess(t, err == nil)
	c := cartridge.NewCartridge(nil)
	test.ExpectSuccess(t, c.Attach(ld) == nil)
	return c
}

func TestNormal8KHonoursHeaderLines(t *testing.T) {
	img := buildCRT(0, "PLAIN", true, false, []crtChip{{0, 0x8000, bankData(0x11)}})
	c := attach(t, img)

	game, exrom := c.GameExrom()
	test.ExpectSuccess(t, game)
	test.ExpectSuccess(t, !exrom)

	v, _ := c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0x11))
}

func TestNormal16KMapsBothWindows(t *testing.T) {
	img := buildCRT(0, "BIG", true, true, []crtChip{
		{0, 0x8000, bankData(0x22)},
		{0, 0xa000, bankData(0x33)},
	})
	c := attach(t, img)

	game, exrom := c.GameExrom()
	test.ExpectSuccess(t, !game)
	test.ExpectSuccess(t, !exrom)

	lo, _ := c.Read(0x8000)
	hi, _ := c.Read(0xa000)
	test.ExpectEquality(t, lo, uint8(0x22))
	test.ExpectEquality(t, hi, uint8(0x33))
}

func TestMagicDeskBankSelectAndDisable(t *testing.T) {
	img := buildCRT(19, "MAGIC", true, false, []crtChip{
		{0, 0x8000, bankData(0xa0)},
		{1, 0x8000, bankData(0xa1)},
		{2, 0x8000, bankData(0xa2)},
	})
	c := attach(t, img)

	v, _ := c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0xa0))

	test.ExpectSuccess(t, c.WriteIO1(0x00, 0x02) == nil)
	v, _ = c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0xa2))

	// bit 7 switches the ROM off
	test.ExpectSuccess(t, c.WriteIO1(0x00, 0x80) == nil)
	_, exrom := c.GameExrom()
	test.ExpectSuccess(t, exrom)
}

func TestDinamicSelectsBankOnIO1Read(t *testing.T) {
	img := buildCRT(17, "DINAMIC", true, false, []crtChip{
		{0, 0x8000, bankData(0xb0)},
		{1, 0x8000, bankData(0xb1)},
	})
	c := attach(t, img)

	_, err := c.ReadIO1(0x01)
	test.ExpectSuccess(t, err == nil)
	v, _ := c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0xb1))
}

func TestEasyFlashBootsUltimaxAndBanks(t *testing.T) {
	bank0 := bankData(0xe0)
	bank1 := bankData(0xe1)
	img := buildCRT(32, "EASYFLASH", true, false, []crtChip{
		{0, 0x8000, bank0},
		{1, 0x8000, bank1},
	})
	c := attach(t, img)

	// after reset the boot jumper forces ultimax: GAME low, EXROM high
	game, exrom := c.GameExrom()
	test.ExpectSuccess(t, !game)
	test.ExpectSuccess(t, exrom)

	v, _ := c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0xe0))

	// writing the bank register switches ROML wholesale
	test.ExpectSuccess(t, c.WriteIO1(0x00, 0x01) == nil)
	v, _ = c.Read(0x8000)
	test.ExpectEquality(t, v, uint8(0xe1))
}

func TestUnsupportedTypeReportsError(t *testing.T) {
	img := buildCRT(999, "MYSTERY", true, false, []crtChip{{0, 0x8000, bankData(0)}})
	ld, err := cartridgeloader.NewLoaderFromData("test.crt", img, cartridgeloader.KindCartridge)
	test.ExpectSuccess(t, err == nil)
	c := cartridge.NewCartridge(nil)
	test.ExpectFailure(t, c.Attach(ld))

	// a failed attach leaves the port empty
	game, exrom := c.GameExrom()
	test.ExpectSuccess(t, game && exrom)
}

func TestNotACRTFileIsRejected(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("test.crt", make([]byte, 0x80), cartridgeloader.KindCartridge)
	test.ExpectSuccess(t, err == nil)
	c := cartridge.NewCartridge(nil)
	test.ExpectFailure(t, c.Attach(ld))
}
