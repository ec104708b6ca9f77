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
	"crypto/sha1"
	"fmt"

	"github.com/dirkwhoffmann/go64/cartridgeloader"
	"github.com/dirkwhoffmann/go64/errors"
)

// Cartridge wraps the currently attached mapper and presents the expansion
// port's view of the bus to the memory package: an 8/16 KiB ROML/ROMH
// window plus the IO1/IO2 register pages.
type Cartridge struct {
	label    string
	filename string
	hash     string

	mapper cartMapper

	// onConfigChange notifies the owning Memory that GAME/EXROM has
	// changed and the bank table needs recomputing.
	onConfigChange func()
}

// NewCartridge returns an empty expansion port with nothing attached.
func NewCartridge(onConfigChange func()) *Cartridge {
	return &Cartridge{onConfigChange: onConfigChange}
}

// Attach loads a CRT image and selects the mapper implementation for its
// type code. Per the chosen cartridge hot-swap behaviour, attaching always
// performs an implicit hard reset of the cartridge state; the caller is
// responsible for resetting the CPU too.
func (c *Cartridge) Attach(ld cartridgeloader.Loader) error {
	if err := ld.Open(); err != nil {
		return errors.Errorf(errors.CartridgeError, err)
	}

	data := *ld.Data
	img, err := parseCRT(data)
	if err != nil {
		return err
	}

	mapper, err := newMapper(img)
	if err != nil {
		return err
	}

	c.mapper = mapper
	c.mapper.reset()
	c.mapper.resetCartConfig()
	c.label = img.name
	c.filename = ld.Filename
	c.hash = fmt.Sprintf("%x", sha1.Sum(data))

	if c.onConfigChange != nil {
		c.onConfigChange()
	}

	return nil
}

// Eject removes the attached cartridge; both GAME and EXROM return high.
func (c *Cartridge) Eject() {
	c.mapper = nil
	c.label = ""
	c.filename = ""
	c.hash = ""
	if c.onConfigChange != nil {
		c.onConfigChange()
	}
}

func (c *Cartridge) Label() string { return c.label }
func (c *Cartridge) Hash() string  { return c.hash }

func (c *Cartridge) GameExrom() (game, exrom bool) {
	if c.mapper == nil {
		return true, true
	}
	return c.mapper.gameExrom()
}

// Read implements bus.CPUBus for the ROML/ROMH window. address is the full
// CPU address; normalise folds it to the bank-local offset the mapper
// expects.
func (c *Cartridge) Read(address uint16) (uint8, error) {
	if c.mapper == nil {
		return 0xff, nil
	}
	return c.mapper.peek(normalise(address))
}

func (c *Cartridge) Write(address uint16, data uint8) error {
	if c.mapper == nil {
		return nil
	}
	return c.mapper.poke(normalise(address), data)
}

func (c *Cartridge) Peek(address uint16) (uint8, error) {
	return c.Read(address)
}

func (c *Cartridge) Poke(address uint16, data uint8) error {
	return c.Write(address, data)
}

func (c *Cartridge) ReadIO1(offset uint16) (uint8, error) {
	if c.mapper == nil {
		return 0xff, nil
	}
	return c.mapper.peekIO1(offset)
}

func (c *Cartridge) WriteIO1(offset uint16, data uint8) error {
	if c.mapper == nil {
		return nil
	}
	prev := c.GameExromLines()
	err := c.mapper.pokeIO1(offset, data)
	c.notifyIfChanged(prev)
	return err
}

func (c *Cartridge) ReadIO2(offset uint16) (uint8, error) {
	if c.mapper == nil {
		return 0xff, nil
	}
	return c.mapper.peekIO2(offset)
}

func (c *Cartridge) WriteIO2(offset uint16, data uint8) error {
	if c.mapper == nil {
		return nil
	}
	prev := c.GameExromLines()
	err := c.mapper.pokeIO2(offset, data)
	c.notifyIfChanged(prev)
	return err
}

// GameExromLines packs the current lines for change detection.
func (c *Cartridge) GameExromLines() [2]bool {
	g, e := c.GameExrom()
	return [2]bool{g, e}
}

func (c *Cartridge) notifyIfChanged(prev [2]bool) {
	if c.GameExromLines() != prev && c.onConfigChange != nil {
		c.onConfigChange()
	}
}

// Execute runs the mapper's per-cycle hook, if it has one. Called once per
// master cycle by the scheduler's expansion-port tick.
func (c *Cartridge) Execute() {
	if c.mapper == nil {
		return
	}
	if e, ok := c.mapper.(executable); ok {
		e.execute()
	}
}

// PressFreezeButton and ReleaseFreezeButton are no-ops on a cartridge that
// doesn't implement a freeze button.
func (c *Cartridge) PressFreezeButton() {
	if c.mapper == nil {
		return
	}
	if b, ok := c.mapper.(buttoned); ok {
		b.pressFreezeButton()
	}
}

func (c *Cartridge) ReleaseFreezeButton() {
	if c.mapper == nil {
		return
	}
	if b, ok := c.mapper.(buttoned); ok {
		b.releaseFreezeButton()
	}
}

// SetSwitch sets a physical mode switch position, for cartridges that have
// one (eg. Expert's PRG/OFF/ON switch).
func (c *Cartridge) SetSwitch(position int) {
	if c.mapper == nil {
		return
	}
	if s, ok := c.mapper.(switchable); ok {
		s.setSwitch(position)
	}
}

// NMIWillTrigger notifies the mapper that an NMI is about to be serviced,
// for cartridges that arm themselves on the first post-reset NMI.
func (c *Cartridge) NMIWillTrigger() {
	if c.mapper == nil {
		return
	}
	if n, ok := c.mapper.(nmiWatcher); ok {
		n.nmiWillTrigger()
	}
}

// Frozen reports whether an attached freezer cartridge's button is
// currently held down, in which case the scheduler must keep asserting
// both NMI and IRQ. Cartridges without a freeze button report false.
func (c *Cartridge) Frozen() bool {
	if c.mapper == nil {
		return false
	}
	if f, ok := c.mapper.(interface{ Frozen() bool }); ok {
		return f.Frozen()
	}
	return false
}

// RAMinfo exposes cartridge RAM regions to the debugger.
func (c *Cartridge) RAMinfo() []RAMinfo {
	if c.mapper == nil {
		return nil
	}
	return c.mapper.getRAMinfo()
}

// SaveState returns a serialisable snapshot of the attached mapper's bank
// and RAM state. Like a disk image, the CRT file itself is not part of
// the snapshot: the host must re-attach the same cartridge before
// restoring, at which point this reapplies its bank selection.
func (c *Cartridge) SaveState() interface{} {
	if c.mapper == nil {
		return nil
	}
	return c.mapper.saveState()
}

// RestoreState applies a snapshot produced by SaveState. It is a no-op
// (returning true) when no cartridge is attached and none was snapshotted.
func (c *Cartridge) RestoreState(v interface{}) bool {
	if c.mapper == nil {
		return v == nil
	}
	if v == nil {
		return false
	}
	if err := c.mapper.restoreState(v); err != nil {
		return false
	}
	c.onConfigChange()
	return true
}

// normalise folds a CPU address in $8000-$9FFF, $A000-$BFFF or $E000-$FFFF
// down to a 0-$3FFF bank-local offset: ROML occupies the low half, ROMH
// (when present) the high half.
func normalise(address uint16) uint16 {
	switch {
	case address >= 0x8000 && address < 0xa000:
		return address - 0x8000
	case address >= 0xa000 && address < 0xc000:
		return 0x2000 + (address - 0xa000)
	case address >= 0xe000:
		return 0x2000 + (address - 0xe000)
	}
	return address & 0x3fff
}

// newMapper selects and constructs the mapper implementation for a parsed
// CRT image's type code.
func newMapper(img *crtImage) (cartMapper, error) {
	switch img.crtType {
	case 6:
		return newExpert(img)
	case 18:
		return newZaxxon(img)
	case 32:
		return newEasyFlash(img)
	case 1, 2, 3, 9, 35:
		// the freezer family: Action Replay, KCS Power, Final Cartridge
		// III, Atomic Power, Retro Replay
		return newFreezer(img)
	}

	// the pure-RAM cartridges have no registered CRT type of their own;
	// images carry the name instead
	switch img.name {
	case "ISEPIC":
		return newIsepic(img)
	case "GEORAM":
		return newGeoRAM(img)
	}

	if s, ok := schemes[img.crtType]; ok {
		return newGenericCart(s, img)
	}

	return nil, errors.Errorf(errors.UnsupportedCartMsg, fmt.Sprintf("CRT type %d", img.crtType))
}
