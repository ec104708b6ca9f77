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

package addresses

// NMI, Reset and IRQ are the three CPU vectors read from the top of memory
// (via whichever bank is mapped there) when the corresponding condition
// fires.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// VICReadSymbols indexes all VIC-II read symbols by register offset from
// $D000.
var VICReadSymbols = map[uint16]string{
	0x00: "M0X", 0x01: "M0Y", 0x02: "M1X", 0x03: "M1Y",
	0x04: "M2X", 0x05: "M2Y", 0x06: "M3X", 0x07: "M3Y",
	0x08: "M4X", 0x09: "M4Y", 0x0a: "M5X", 0x0b: "M5Y",
	0x0c: "M6X", 0x0d: "M6Y", 0x0e: "M7X", 0x0f: "M7Y",
	0x10: "MSIGX",
	0x11: "SCROLY", 0x12: "RASTER", 0x13: "LPENX", 0x14: "LPENY",
	0x15: "SPENA", 0x16: "SCROLX", 0x17: "YXPAND",
	0x18: "VMCSB",
	0x19: "VICIRQ", 0x1a: "IRQMASK",
	0x1b: "SPBGPR", 0x1c: "SPMC", 0x1d: "XXPAND",
	0x1e: "SPSPCL", 0x1f: "SPBGCL",
	0x20: "EXTCOL", 0x21: "BGCOL0", 0x22: "BGCOL1", 0x23: "BGCOL2", 0x24: "BGCOL3",
	0x25: "SPMC0", 0x26: "SPMC1",
	0x27: "SP0COL", 0x28: "SP1COL", 0x29: "SP2COL", 0x2a: "SP3COL",
	0x2b: "SP4COL", 0x2c: "SP5COL", 0x2d: "SP6COL", 0x2e: "SP7COL",
}

// VICWriteSymbols mirrors VICReadSymbols; the VIC-II register set is
// almost entirely shared between read and write.
var VICWriteSymbols = VICReadSymbols

// CIAReadSymbols indexes the register offsets shared by both 6526 CIA
// chips, from $DC00/$DD00.
var CIAReadSymbols = map[uint16]string{
	0x00: "PRA", 0x01: "PRB", 0x02: "DDRA", 0x03: "DDRB",
	0x04: "TALO", 0x05: "TAHI", 0x06: "TBLO", 0x07: "TBHI",
	0x08: "TOD10THS", 0x09: "TODSEC", 0x0a: "TODMIN", 0x0b: "TODHR",
	0x0c: "SDR",
	0x0d: "ICR", 0x0e: "CRA", 0x0f: "CRB",
}

// CIAWriteSymbols mirrors CIAReadSymbols.
var CIAWriteSymbols = CIAReadSymbols

// SIDReadSymbols indexes the readable subset of SID registers from $D400.
// Most SID registers are write-only; the handful of readable ones are the
// oscillator/envelope outputs and the paddle inputs.
var SIDReadSymbols = map[uint16]string{
	0x19: "POTX", 0x1a: "POTY", 0x1b: "OSC3", 0x1c: "ENV3",
}

// SIDWriteSymbols indexes the full SID register set from $D400.
var SIDWriteSymbols = map[uint16]string{
	0x00: "FREQLO1", 0x01: "FREQHI1", 0x02: "PWLO1", 0x03: "PWHI1",
	0x04: "CR1", 0x05: "AD1", 0x06: "SR1",
	0x07: "FREQLO2", 0x08: "FREQHI2", 0x09: "PWLO2", 0x0a: "PWHI2",
	0x0b: "CR2", 0x0c: "AD2", 0x0d: "SR2",
	0x0e: "FREQLO3", 0x0f: "FREQHI3", 0x10: "PWLO3", 0x11: "PWHI3",
	0x12: "CR3", 0x13: "AD3", 0x14: "SR3",
	0x15: "FCLO", 0x16: "FCHI", 0x17: "RESFILT", 0x18: "MODVOL",
}
