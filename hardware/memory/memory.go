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

// Package memory implements the C64's 64 KiB address space: RAM, the three
// system ROMs, color RAM, the processor port and the bank-switching table
// that routes every CPU access to the correct one of them or out to the
// VIC-II, CIAs, SID or an attached cartridge.
package memory

import (
	"github.com/dirkwhoffmann/go64/errors"
	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
	"github.com/dirkwhoffmann/go64/hardware/memory/memorymap"
)

// Cartridge is the subset of the cartridge container's behaviour the memory
// bus needs. The concrete type lives in hardware/memory/cartridge.
type Cartridge interface {
	bus.CPUBus
	bus.DebuggerBus

	ReadIO1(offset uint16) (uint8, error)
	WriteIO1(offset uint16, data uint8) error
	ReadIO2(offset uint16) (uint8, error)
	WriteIO2(offset uint16, data uint8) error

	// GameExrom reports the cartridge's current GAME/EXROM line state. When
	// no cartridge is attached both lines read high (true, true).
	GameExrom() (game bool, exrom bool)
}

// noCartridge is used whenever the expansion port is empty: both lines are
// high and all reads/writes are silently absorbed.
type noCartridge struct{}

func (noCartridge) Read(address uint16) (uint8, error)     { return 0xff, nil }
func (noCartridge) Write(address uint16, data uint8) error { return nil }
func (noCartridge) Peek(address uint16) (uint8, error)     { return 0xff, nil }
func (noCartridge) Poke(address uint16, data uint8) error  { return nil }
func (noCartridge) ReadIO1(offset uint16) (uint8, error)   { return 0xff, nil }
func (noCartridge) WriteIO1(offset uint16, data uint8) error { return nil }
func (noCartridge) ReadIO2(offset uint16) (uint8, error)   { return 0xff, nil }
func (noCartridge) WriteIO2(offset uint16, data uint8) error { return nil }
func (noCartridge) GameExrom() (bool, bool)                { return true, true }

// Memory is the machine's CPUBus: every address the CPU issues passes
// through Read/Write, which consult the memorymap.Table to decide which
// underlying area services it.
type Memory struct {
	RAM      *RAM
	ROM      *ROM
	ColorRAM *ColorRAM
	Port     ProcessorPort

	VIC  bus.ChipBus
	CIA1 bus.ChipBus
	CIA2 bus.ChipBus
	SID  bus.ChipBus

	Cart Cartridge

	table memorymap.Table
}

// NewMemory constructs a Memory with empty RAM/ROM and no cartridge
// attached. Plumb must be called before use to wire in the chips.
func NewMemory() *Memory {
	m := &Memory{
		RAM:      NewRAM(),
		ROM:      NewROM(),
		ColorRAM: NewColorRAM(),
		Cart:     noCartridge{},
	}
	m.Port.onConfigChange = m.recompute
	m.recompute()
	return m
}

// Plumb wires in the chip register files and the cartridge container. The
// scheduler calls this once at startup and again after a snapshot restore.
func (m *Memory) Plumb(vic, cia1, cia2, sid bus.ChipBus, cart Cartridge) {
	m.VIC = vic
	m.CIA1 = cia1
	m.CIA2 = cia2
	m.SID = sid
	if cart == nil {
		cart = noCartridge{}
	}
	m.Cart = cart
	m.recompute()
}

// RecomputeBanks is called by the cartridge container whenever its GAME/
// EXROM lines change, so the bank table stays consistent with the invariant
// that peekSrc/pokeTarget are never stale across a memory access.
func (m *Memory) RecomputeBanks() {
	m.recompute()
}

func (m *Memory) recompute() {
	game, exrom := true, true
	if m.Cart != nil {
		game, exrom = m.Cart.GameExrom()
	}
	m.table.Recompute(m.Port.Lines(game, exrom))
}

// Read implements bus.CPUBus.
func (m *Memory) Read(address uint16) (uint8, error) {
	if address == 0x0000 {
		return m.Port.ReadDDR(), nil
	}
	if address == 0x0001 {
		return m.Port.Read(), nil
	}

	page := m.table.PeekSrc[address>>12]
	switch page {
	case memorymap.RAM:
		return m.RAM.Read(address), nil
	case memorymap.BASIC:
		return m.ROM.ReadBasic(address & 0x1fff), nil
	case memorymap.CHAR:
		return m.ROM.ReadChar(address & 0x0fff), nil
	case memorymap.KERNAL:
		return m.ROM.ReadKernal(address & 0x1fff), nil
	case memorymap.CRT_LOW, memorymap.CRT_HIGH:
		return m.Cart.Read(address)
	case memorymap.IO:
		return m.readIO(address)
	case memorymap.OPEN:
		return 0xff, nil
	}
	return 0, errors.Errorf(errors.UnpeekableAddress, address)
}

// Write implements bus.CPUBus.
func (m *Memory) Write(address uint16, data uint8) error {
	if address == 0x0000 {
		m.Port.WriteDDR(data)
		return nil
	}
	if address == 0x0001 {
		m.Port.Write(data)
		return nil
	}

	page := m.table.PokeTarget[address>>12]
	switch page {
	case memorymap.RAM:
		m.RAM.Write(address, data)
		return nil
	case memorymap.CRT_LOW, memorymap.CRT_HIGH:
		return m.Cart.Write(address, data)
	case memorymap.IO:
		return m.writeIO(address, data)
	case memorymap.OPEN:
		return nil
	}
	return errors.Errorf(errors.UnpokeableAddress, address)
}

// I/O area ($D000-$DFFF when CHAREN/bank config selects it): VIC at
// $D000-$D3FF (mirrored every 64 bytes), SID at $D400-$D7FF (mirrored every
// 32 bytes), color RAM at $D800-$DBFF, CIA1 at $DC00-$DCFF (mirrored every
// 16 bytes), CIA2 at $DD00-$DDFF, expansion I/O1 at $DE00-$DEFF, I/O2 at
// $DF00-$DFFF.
func (m *Memory) readIO(address uint16) (uint8, error) {
	offset := address & 0x0fff
	switch {
	case offset < 0x0400:
		return m.VIC.ChipReadRegister(offset & 0x3f), nil
	case offset < 0x0800:
		return m.SID.ChipReadRegister(offset & 0x1f), nil
	case offset < 0x0c00:
		return m.ColorRAM.Read(offset - 0x0800), nil
	case offset < 0x0d00:
		return m.CIA1.ChipReadRegister(offset & 0x0f), nil
	case offset < 0x0e00:
		return m.CIA2.ChipReadRegister(offset & 0x0f), nil
	case offset < 0x0f00:
		return m.Cart.ReadIO1(offset & 0xff)
	default:
		return m.Cart.ReadIO2(offset & 0xff)
	}
}

func (m *Memory) writeIO(address uint16, data uint8) error {
	offset := address & 0x0fff
	switch {
	case offset < 0x0400:
		m.VIC.ChipWrite(offset&0x3f, data)
	case offset < 0x0800:
		m.SID.ChipWrite(offset&0x1f, data)
	case offset < 0x0c00:
		m.ColorRAM.Write(offset-0x0800, data)
	case offset < 0x0d00:
		m.CIA1.ChipWrite(offset&0x0f, data)
	case offset < 0x0e00:
		m.CIA2.ChipWrite(offset&0x0f, data)
	case offset < 0x0f00:
		return m.Cart.WriteIO1(offset&0xff, data)
	default:
		return m.Cart.WriteIO2(offset&0xff, data)
	}
	return nil
}

// Peek implements bus.DebuggerBus: like Read but without side effects,
// used by the debugger and by cartridges that need to introspect memory
// safely. In the I/O page only color RAM is read as such; every other I/O
// address returns the RAM beneath it, not the chip register.
func (m *Memory) Peek(address uint16) (uint8, error) {
	if address == 0x0000 {
		return m.Port.ReadDDR(), nil
	}
	if address == 0x0001 {
		return m.Port.Read(), nil
	}

	page := m.table.PeekSrc[address>>12]
	switch page {
	case memorymap.RAM:
		return m.RAM.Read(address), nil
	case memorymap.BASIC:
		return m.ROM.ReadBasic(address & 0x1fff), nil
	case memorymap.CHAR:
		return m.ROM.ReadChar(address & 0x0fff), nil
	case memorymap.KERNAL:
		return m.ROM.ReadKernal(address & 0x1fff), nil
	case memorymap.CRT_LOW, memorymap.CRT_HIGH:
		return m.Cart.Peek(address)
	case memorymap.IO:
		offset := address & 0x0fff
		if offset >= 0x0800 && offset < 0x0c00 {
			return m.ColorRAM.Peek(offset - 0x0800), nil
		}
		return m.RAM.Read(address), nil
	case memorymap.OPEN:
		return 0xff, nil
	}
	return 0, errors.Errorf(errors.UnpeekableAddress, address)
}

// Poke implements bus.DebuggerBus: writes directly to RAM regardless of the
// current bank configuration, matching the behaviour of a real freeze
// cartridge or monitor ROM poking through to backing storage.
func (m *Memory) Poke(address uint16, data uint8) error {
	if address == 0x0001 {
		m.Port.Write(data)
		return nil
	}
	m.RAM.Write(address, data)
	return nil
}
