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

package registers

// StackPointer is a special purpose Register. It can be treated as a plain
// register if required through the embedded Register.
type StackPointer struct {
	Register
}

// NewStackPointer creates a new stack pointer register.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: Register{
			value: val,
			label: "SP",
		},
	}
}

// Address returns the stack pointer as a page-one address. The 6510's stack
// is hardwired to $0100-$01FF; only the low byte is held in the register.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}
