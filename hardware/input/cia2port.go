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

package input

// IECLines is the minimal view of the serial bus the CIA2 port A adapter
// needs: reading back the wire-ANDed ATN/CLOCK/DATA state, and being told
// when the CPU drives them.
type IECLines interface {
	Sample() (atn, clock, data bool)
	DriveATN(asserted bool)
	DriveClock(asserted bool)
	DriveData(asserted bool)
}

// BankSelect receives the two VIC bank-select bits (PA0/PA1 of CIA2,
// inverted: 00 selects bank 3) whenever the CPU writes port A.
type BankSelect interface {
	SetVICBank(bank int)
}

// CIA2PortA implements cia.Port for CIA2's port A: bits 0-1 select the
// VIC-II's 16 KiB bank (inverted: 00 selects bank 3), bit 2 is RS232 TXD
// (unmodelled), bit 3 drives ATN out, bit 4 drives CLOCK out, bit 5 drives
// DATA out, bit 6 reads CLOCK in, bit 7 reads DATA in. The real chip
// multiplexes direction via the DDR, which is why Sample is handed the
// driven bits rather than computing them itself.
type CIA2PortA struct {
	IEC  IECLines
	Bank BankSelect
}

// Update implements cia.PortWriter: the bank select and the IEC output
// drivers react to the register write itself, not to a later read of the
// port.
func (p *CIA2PortA) Update(driven uint8, ddr uint8) {
	if p.Bank != nil {
		p.Bank.SetVICBank(int(^driven & 0x03))
	}
	if p.IEC == nil {
		return
	}
	// the output bits pass through inverting drivers: a set register bit
	// pulls the line low
	p.IEC.DriveATN(driven&0x08 != 0)
	p.IEC.DriveClock(driven&0x10 != 0)
	p.IEC.DriveData(driven&0x20 != 0)
}

// Sample implements cia.Port.
func (p *CIA2PortA) Sample(driven uint8, ddr uint8) uint8 {
	if p.IEC == nil {
		return 0xff
	}

	_, clock, data := p.IEC.Sample()
	v := uint8(0xff)
	if !clock {
		v &^= 0x40
	}
	if !data {
		v &^= 0x80
	}
	return v
}
