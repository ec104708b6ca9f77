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

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction. The 6510 in the C64 exposes the full NMOS 6502 addressing
// set, with the X and Y flavours of the zero-page-indexed and
// absolute-indexed modes named individually.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Immediate
	Relative
	Absolute
	Indirect
	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	AbsoluteIndexedX
	AbsoluteIndexedY
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case Indirect:
		return "Indirect"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	}
	return "unknown addressing mode"
}
