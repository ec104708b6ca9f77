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

// Package instructions describes the 6510's instruction set: all 151
// documented opcodes plus the ~105 illegal opcode slots (of which around
// 20 perform a distinct, useful operation and the rest duplicate one of
// those or the documented set, or jam the CPU outright).
package instructions

import "fmt"

// Definition describes a single one of the 256 possible opcode byte
// values.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
	Undocumented   bool
	Stability      Stability
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if the instruction is one of the eight relative
// branch instructions.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// entry is the compact, hand-authored form each opcode is specified in
// below; GetDefinitions expands these into the full Definition type.
type entry struct {
	op            uint8
	operator      Operator
	bytes         int
	mode          AddressingMode
	cycles        int
	pageSensitive bool
	effect        Category
	undocumented  bool
	stability     Stability
}

func (e entry) definition() *Definition {
	return &Definition{
		OpCode:         e.op,
		Operator:       e.operator,
		Bytes:          e.bytes,
		Cycles:         e.cycles,
		AddressingMode: e.mode,
		PageSensitive:  e.pageSensitive,
		Effect:         e.effect,
		Undocumented:   e.undocumented,
		Stability:      e.stability,
	}
}

// entries enumerates all 256 opcode byte values in order, documented and
// undocumented alike. The undocumented set (marked true below) follows the
// widely reproduced "NMOS 6510 unintended opcodes" reference: each KIL
// (aka JAM) opcode locks the bus and halts the processor; AHX, SHX, SHY
// and TAS additionally AND the stored byte with the high byte of the
// target address plus one, a quirk of how the illegal opcode's internal
// latch interacts with the address bus and is reproduced here rather than
// modelled at the analog level.
var entries = [256]entry{
	0x00: {0x00, Brk, 1, Implied, 7, false, Subroutine, false, Stable},
	0x01: {0x01, Ora, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0x02: {0x02, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x03: {0x03, SLO, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0x04: {0x04, NOP, 2, ZeroPage, 3, false, Read, true, Stable},
	0x05: {0x05, Ora, 2, ZeroPage, 3, false, Read, false, Stable},
	0x06: {0x06, Asl, 2, ZeroPage, 5, false, RMW, false, Stable},
	0x07: {0x07, SLO, 2, ZeroPage, 5, false, RMW, true, Stable},
	0x08: {0x08, Php, 1, Implied, 3, false, Subroutine, false, Stable},
	0x09: {0x09, Ora, 2, Immediate, 2, false, Read, false, Stable},
	0x0a: {0x0a, Asl, 1, Implied, 2, false, Read, false, Stable},
	0x0b: {0x0b, ANC, 2, Immediate, 2, false, Read, true, Stable},
	0x0c: {0x0c, NOP, 3, Absolute, 4, false, Read, true, Stable},
	0x0d: {0x0d, Ora, 3, Absolute, 4, false, Read, false, Stable},
	0x0e: {0x0e, Asl, 3, Absolute, 6, false, RMW, false, Stable},
	0x0f: {0x0f, SLO, 3, Absolute, 6, false, RMW, true, Stable},

	0x10: {0x10, Bpl, 2, Relative, 2, true, Flow, false, Stable},
	0x11: {0x11, Ora, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0x12: {0x12, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x13: {0x13, SLO, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0x14: {0x14, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0x15: {0x15, Ora, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0x16: {0x16, Asl, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0x17: {0x17, SLO, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0x18: {0x18, Clc, 1, Implied, 2, false, Read, false, Stable},
	0x19: {0x19, Ora, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0x1a: {0x1a, NOP, 1, Implied, 2, false, Read, true, Stable},
	0x1b: {0x1b, SLO, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0x1c: {0x1c, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0x1d: {0x1d, Ora, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0x1e: {0x1e, Asl, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0x1f: {0x1f, SLO, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},

	0x20: {0x20, Jsr, 3, Absolute, 6, false, Subroutine, false, Stable},
	0x21: {0x21, And, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0x22: {0x22, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x23: {0x23, RLA, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0x24: {0x24, Bit, 2, ZeroPage, 3, false, Read, false, Stable},
	0x25: {0x25, And, 2, ZeroPage, 3, false, Read, false, Stable},
	0x26: {0x26, Rol, 2, ZeroPage, 5, false, RMW, false, Stable},
	0x27: {0x27, RLA, 2, ZeroPage, 5, false, RMW, true, Stable},
	0x28: {0x28, Plp, 1, Implied, 4, false, Subroutine, false, Stable},
	0x29: {0x29, And, 2, Immediate, 2, false, Read, false, Stable},
	0x2a: {0x2a, Rol, 1, Implied, 2, false, Read, false, Stable},
	0x2b: {0x2b, ANC, 2, Immediate, 2, false, Read, true, Stable},
	0x2c: {0x2c, Bit, 3, Absolute, 4, false, Read, false, Stable},
	0x2d: {0x2d, And, 3, Absolute, 4, false, Read, false, Stable},
	0x2e: {0x2e, Rol, 3, Absolute, 6, false, RMW, false, Stable},
	0x2f: {0x2f, RLA, 3, Absolute, 6, false, RMW, true, Stable},

	0x30: {0x30, Bmi, 2, Relative, 2, true, Flow, false, Stable},
	0x31: {0x31, And, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0x32: {0x32, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x33: {0x33, RLA, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0x34: {0x34, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0x35: {0x35, And, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0x36: {0x36, Rol, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0x37: {0x37, RLA, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0x38: {0x38, Sec, 1, Implied, 2, false, Read, false, Stable},
	0x39: {0x39, And, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0x3a: {0x3a, NOP, 1, Implied, 2, false, Read, true, Stable},
	0x3b: {0x3b, RLA, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0x3c: {0x3c, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0x3d: {0x3d, And, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0x3e: {0x3e, Rol, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0x3f: {0x3f, RLA, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},

	0x40: {0x40, Rti, 1, Implied, 6, false, Subroutine, false, Stable},
	0x41: {0x41, Eor, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0x42: {0x42, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x43: {0x43, SRE, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0x44: {0x44, NOP, 2, ZeroPage, 3, false, Read, true, Stable},
	0x45: {0x45, Eor, 2, ZeroPage, 3, false, Read, false, Stable},
	0x46: {0x46, Lsr, 2, ZeroPage, 5, false, RMW, false, Stable},
	0x47: {0x47, SRE, 2, ZeroPage, 5, false, RMW, true, Stable},
	0x48: {0x48, Pha, 1, Implied, 3, false, Subroutine, false, Stable},
	0x49: {0x49, Eor, 2, Immediate, 2, false, Read, false, Stable},
	0x4a: {0x4a, Lsr, 1, Implied, 2, false, Read, false, Stable},
	0x4b: {0x4b, ASR, 2, Immediate, 2, false, Read, true, Stable},
	0x4c: {0x4c, Jmp, 3, Absolute, 3, false, Flow, false, Stable},
	0x4d: {0x4d, Eor, 3, Absolute, 4, false, Read, false, Stable},
	0x4e: {0x4e, Lsr, 3, Absolute, 6, false, RMW, false, Stable},
	0x4f: {0x4f, SRE, 3, Absolute, 6, false, RMW, true, Stable},

	0x50: {0x50, Bvc, 2, Relative, 2, true, Flow, false, Stable},
	0x51: {0x51, Eor, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0x52: {0x52, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x53: {0x53, SRE, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0x54: {0x54, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0x55: {0x55, Eor, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0x56: {0x56, Lsr, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0x57: {0x57, SRE, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0x58: {0x58, Cli, 1, Implied, 2, false, Read, false, Stable},
	0x59: {0x59, Eor, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0x5a: {0x5a, NOP, 1, Implied, 2, false, Read, true, Stable},
	0x5b: {0x5b, SRE, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0x5c: {0x5c, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0x5d: {0x5d, Eor, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0x5e: {0x5e, Lsr, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0x5f: {0x5f, SRE, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},

	0x60: {0x60, Rts, 1, Implied, 6, false, Subroutine, false, Stable},
	0x61: {0x61, Adc, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0x62: {0x62, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x63: {0x63, RRA, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0x64: {0x64, NOP, 2, ZeroPage, 3, false, Read, true, Stable},
	0x65: {0x65, Adc, 2, ZeroPage, 3, false, Read, false, Stable},
	0x66: {0x66, Ror, 2, ZeroPage, 5, false, RMW, false, Stable},
	0x67: {0x67, RRA, 2, ZeroPage, 5, false, RMW, true, Stable},
	0x68: {0x68, Pla, 1, Implied, 4, false, Subroutine, false, Stable},
	0x69: {0x69, Adc, 2, Immediate, 2, false, Read, false, Stable},
	0x6a: {0x6a, Ror, 1, Implied, 2, false, Read, false, Stable},
	0x6b: {0x6b, ARR, 2, Immediate, 2, false, Read, true, Stable},
	0x6c: {0x6c, Jmp, 3, Indirect, 5, false, Flow, false, Stable},
	0x6d: {0x6d, Adc, 3, Absolute, 4, false, Read, false, Stable},
	0x6e: {0x6e, Ror, 3, Absolute, 6, false, RMW, false, Stable},
	0x6f: {0x6f, RRA, 3, Absolute, 6, false, RMW, true, Stable},

	0x70: {0x70, Bvs, 2, Relative, 2, true, Flow, false, Stable},
	0x71: {0x71, Adc, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0x72: {0x72, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x73: {0x73, RRA, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0x74: {0x74, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0x75: {0x75, Adc, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0x76: {0x76, Ror, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0x77: {0x77, RRA, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0x78: {0x78, Sei, 1, Implied, 2, false, Read, false, Stable},
	0x79: {0x79, Adc, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0x7a: {0x7a, NOP, 1, Implied, 2, false, Read, true, Stable},
	0x7b: {0x7b, RRA, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0x7c: {0x7c, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0x7d: {0x7d, Adc, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0x7e: {0x7e, Ror, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0x7f: {0x7f, RRA, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},

	0x80: {0x80, NOP, 2, Immediate, 2, false, Read, true, Stable},
	0x81: {0x81, Sta, 2, IndexedIndirect, 6, false, Write, false, Stable},
	0x82: {0x82, NOP, 2, Immediate, 2, false, Read, true, Stable},
	0x83: {0x83, SAX, 2, IndexedIndirect, 6, false, Write, true, Stable},
	0x84: {0x84, Sty, 2, ZeroPage, 3, false, Write, false, Stable},
	0x85: {0x85, Sta, 2, ZeroPage, 3, false, Write, false, Stable},
	0x86: {0x86, Stx, 2, ZeroPage, 3, false, Write, false, Stable},
	0x87: {0x87, SAX, 2, ZeroPage, 3, false, Write, true, Stable},
	0x88: {0x88, Dey, 1, Implied, 2, false, Read, false, Stable},
	0x89: {0x89, NOP, 2, Immediate, 2, false, Read, true, Stable},
	0x8a: {0x8a, Txa, 1, Implied, 2, false, Read, false, Stable},
	0x8b: {0x8b, XAA, 2, Immediate, 2, false, Read, true, Magic},
	0x8c: {0x8c, Sty, 3, Absolute, 4, false, Write, false, Stable},
	0x8d: {0x8d, Sta, 3, Absolute, 4, false, Write, false, Stable},
	0x8e: {0x8e, Stx, 3, Absolute, 4, false, Write, false, Stable},
	0x8f: {0x8f, SAX, 3, Absolute, 4, false, Write, true, Stable},

	0x90: {0x90, Bcc, 2, Relative, 2, true, Flow, false, Stable},
	0x91: {0x91, Sta, 2, IndirectIndexed, 6, false, Write, false, Stable},
	0x92: {0x92, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0x93: {0x93, AHX, 2, IndirectIndexed, 6, false, Write, true, Unstable},
	0x94: {0x94, Sty, 2, ZeroPageIndexedX, 4, false, Write, false, Stable},
	0x95: {0x95, Sta, 2, ZeroPageIndexedX, 4, false, Write, false, Stable},
	0x96: {0x96, Stx, 2, ZeroPageIndexedY, 4, false, Write, false, Stable},
	0x97: {0x97, SAX, 2, ZeroPageIndexedY, 4, false, Write, true, Stable},
	0x98: {0x98, Tya, 1, Implied, 2, false, Read, false, Stable},
	0x99: {0x99, Sta, 3, AbsoluteIndexedY, 5, false, Write, false, Stable},
	0x9a: {0x9a, Txs, 1, Implied, 2, false, Read, false, Stable},
	0x9b: {0x9b, TAS, 3, AbsoluteIndexedY, 5, false, Write, true, Unstable},
	0x9c: {0x9c, SHY, 3, AbsoluteIndexedX, 5, false, Write, true, Unstable},
	0x9d: {0x9d, Sta, 3, AbsoluteIndexedX, 5, false, Write, false, Stable},
	0x9e: {0x9e, SHX, 3, AbsoluteIndexedY, 5, false, Write, true, Unstable},
	0x9f: {0x9f, AHX, 3, AbsoluteIndexedY, 5, false, Write, true, Unstable},

	0xa0: {0xa0, Ldy, 2, Immediate, 2, false, Read, false, Stable},
	0xa1: {0xa1, Lda, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0xa2: {0xa2, Ldx, 2, Immediate, 2, false, Read, false, Stable},
	0xa3: {0xa3, LAX, 2, IndexedIndirect, 6, false, Read, true, Stable},
	0xa4: {0xa4, Ldy, 2, ZeroPage, 3, false, Read, false, Stable},
	0xa5: {0xa5, Lda, 2, ZeroPage, 3, false, Read, false, Stable},
	0xa6: {0xa6, Ldx, 2, ZeroPage, 3, false, Read, false, Stable},
	0xa7: {0xa7, LAX, 2, ZeroPage, 3, false, Read, true, Stable},
	0xa8: {0xa8, Tay, 1, Implied, 2, false, Read, false, Stable},
	0xa9: {0xa9, Lda, 2, Immediate, 2, false, Read, false, Stable},
	0xaa: {0xaa, Tax, 1, Implied, 2, false, Read, false, Stable},
	0xab: {0xab, LAX, 2, Immediate, 2, false, Read, true, Unstable},
	0xac: {0xac, Ldy, 3, Absolute, 4, false, Read, false, Stable},
	0xad: {0xad, Lda, 3, Absolute, 4, false, Read, false, Stable},
	0xae: {0xae, Ldx, 3, Absolute, 4, false, Read, false, Stable},
	0xaf: {0xaf, LAX, 3, Absolute, 4, false, Read, true, Stable},

	0xb0: {0xb0, Bcs, 2, Relative, 2, true, Flow, false, Stable},
	0xb1: {0xb1, Lda, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0xb2: {0xb2, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0xb3: {0xb3, LAX, 2, IndirectIndexed, 5, true, Read, true, Stable},
	0xb4: {0xb4, Ldy, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0xb5: {0xb5, Lda, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0xb6: {0xb6, Ldx, 2, ZeroPageIndexedY, 4, false, Read, false, Stable},
	0xb7: {0xb7, LAX, 2, ZeroPageIndexedY, 4, false, Read, true, Stable},
	0xb8: {0xb8, Clv, 1, Implied, 2, false, Read, false, Stable},
	0xb9: {0xb9, Lda, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0xba: {0xba, Tsx, 1, Implied, 2, false, Read, false, Stable},
	0xbb: {0xbb, LAS, 3, AbsoluteIndexedY, 4, true, Read, true, Unstable},
	0xbc: {0xbc, Ldy, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0xbd: {0xbd, Lda, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0xbe: {0xbe, Ldx, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0xbf: {0xbf, LAX, 3, AbsoluteIndexedY, 4, true, Read, true, Stable},

	0xc0: {0xc0, Cpy, 2, Immediate, 2, false, Read, false, Stable},
	0xc1: {0xc1, Cmp, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0xc2: {0xc2, NOP, 2, Immediate, 2, false, Read, true, Stable},
	0xc3: {0xc3, DCP, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0xc4: {0xc4, Cpy, 2, ZeroPage, 3, false, Read, false, Stable},
	0xc5: {0xc5, Cmp, 2, ZeroPage, 3, false, Read, false, Stable},
	0xc6: {0xc6, Dec, 2, ZeroPage, 5, false, RMW, false, Stable},
	0xc7: {0xc7, DCP, 2, ZeroPage, 5, false, RMW, true, Stable},
	0xc8: {0xc8, Iny, 1, Implied, 2, false, Read, false, Stable},
	0xc9: {0xc9, Cmp, 2, Immediate, 2, false, Read, false, Stable},
	0xca: {0xca, Dex, 1, Implied, 2, false, Read, false, Stable},
	0xcb: {0xcb, AXS, 2, Immediate, 2, false, Read, true, Stable},
	0xcc: {0xcc, Cpy, 3, Absolute, 4, false, Read, false, Stable},
	0xcd: {0xcd, Cmp, 3, Absolute, 4, false, Read, false, Stable},
	0xce: {0xce, Dec, 3, Absolute, 6, false, RMW, false, Stable},
	0xcf: {0xcf, DCP, 3, Absolute, 6, false, RMW, true, Stable},

	0xd0: {0xd0, Bne, 2, Relative, 2, true, Flow, false, Stable},
	0xd1: {0xd1, Cmp, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0xd2: {0xd2, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0xd3: {0xd3, DCP, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0xd4: {0xd4, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0xd5: {0xd5, Cmp, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0xd6: {0xd6, Dec, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0xd7: {0xd7, DCP, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0xd8: {0xd8, Cld, 1, Implied, 2, false, Read, false, Stable},
	0xd9: {0xd9, Cmp, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0xda: {0xda, NOP, 1, Implied, 2, false, Read, true, Stable},
	0xdb: {0xdb, DCP, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0xdc: {0xdc, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0xdd: {0xdd, Cmp, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0xde: {0xde, Dec, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0xdf: {0xdf, DCP, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},

	0xe0: {0xe0, Cpx, 2, Immediate, 2, false, Read, false, Stable},
	0xe1: {0xe1, Sbc, 2, IndexedIndirect, 6, false, Read, false, Stable},
	0xe2: {0xe2, NOP, 2, Immediate, 2, false, Read, true, Stable},
	0xe3: {0xe3, ISC, 2, IndexedIndirect, 8, false, RMW, true, Stable},
	0xe4: {0xe4, Cpx, 2, ZeroPage, 3, false, Read, false, Stable},
	0xe5: {0xe5, Sbc, 2, ZeroPage, 3, false, Read, false, Stable},
	0xe6: {0xe6, Inc, 2, ZeroPage, 5, false, RMW, false, Stable},
	0xe7: {0xe7, ISC, 2, ZeroPage, 5, false, RMW, true, Stable},
	0xe8: {0xe8, Inx, 1, Implied, 2, false, Read, false, Stable},
	0xe9: {0xe9, Sbc, 2, Immediate, 2, false, Read, false, Stable},
	0xea: {0xea, Nop, 1, Implied, 2, false, Read, false, Stable},
	0xeb: {0xeb, SBC, 2, Immediate, 2, false, Read, true, Stable},
	0xec: {0xec, Cpx, 3, Absolute, 4, false, Read, false, Stable},
	0xed: {0xed, Sbc, 3, Absolute, 4, false, Read, false, Stable},
	0xee: {0xee, Inc, 3, Absolute, 6, false, RMW, false, Stable},
	0xef: {0xef, ISC, 3, Absolute, 6, false, RMW, true, Stable},

	0xf0: {0xf0, Beq, 2, Relative, 2, true, Flow, false, Stable},
	0xf1: {0xf1, Sbc, 2, IndirectIndexed, 5, true, Read, false, Stable},
	0xf2: {0xf2, KIL, 1, Implied, 1, false, Interrupt, true, Stable},
	0xf3: {0xf3, ISC, 2, IndirectIndexed, 8, false, RMW, true, Stable},
	0xf4: {0xf4, NOP, 2, ZeroPageIndexedX, 4, false, Read, true, Stable},
	0xf5: {0xf5, Sbc, 2, ZeroPageIndexedX, 4, false, Read, false, Stable},
	0xf6: {0xf6, Inc, 2, ZeroPageIndexedX, 6, false, RMW, false, Stable},
	0xf7: {0xf7, ISC, 2, ZeroPageIndexedX, 6, false, RMW, true, Stable},
	0xf8: {0xf8, Sed, 1, Implied, 2, false, Read, false, Stable},
	0xf9: {0xf9, Sbc, 3, AbsoluteIndexedY, 4, true, Read, false, Stable},
	0xfa: {0xfa, NOP, 1, Implied, 2, false, Read, true, Stable},
	0xfb: {0xfb, ISC, 3, AbsoluteIndexedY, 7, false, RMW, true, Stable},
	0xfc: {0xfc, NOP, 3, AbsoluteIndexedX, 4, true, Read, true, Stable},
	0xfd: {0xfd, Sbc, 3, AbsoluteIndexedX, 4, true, Read, false, Stable},
	0xfe: {0xfe, Inc, 3, AbsoluteIndexedX, 7, false, RMW, false, Stable},
	0xff: {0xff, ISC, 3, AbsoluteIndexedX, 7, false, RMW, true, Stable},
}

// Definitions holds one Definition per opcode byte, 0x00 through 0xff, in
// order; Definitions[n] describes opcode n.
var Definitions []Definition

func init() {
	Definitions = make([]Definition, 256)
	for i, e := range entries {
		if int(e.op) != i {
			panic(fmt.Sprintf("CPU instruction definitions: entry %#02x out of place", i))
		}
		Definitions[i] = *e.definition()
	}
}

// GetDefinitions returns a fresh slice of pointers to the 256 opcode
// definitions, one per CPU instance so nothing shares mutable state
// across emulated machines.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(Definitions))
	for i := range Definitions {
		d := Definitions[i]
		defs[i] = &d
	}
	return defs
}
