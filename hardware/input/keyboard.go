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

// Package input models the two peripherals wired to CIA1's ports: the 8x8
// keyboard matrix and the two digital joystick ports, plus CIA2's port A,
// which carries the VIC bank select and the IEC serial lines.
// Both sides of the matrix are exposed as cia.Port implementations, since
// real C64 software scans the keyboard in either direction (drive columns,
// read rows, or drive rows, read columns) depending on the KERNAL routine
// in use.
package input

// Keyboard is the 8x8 matrix of key switches wired to CIA1's two ports.
// Row/column indices follow the standard C64 keyboard matrix layout; the
// caller (host key event translation) is responsible for mapping host key
// codes to (row, col) pairs.
type Keyboard struct {
	matrix [8][8]bool
}

// NewKeyboard constructs an empty (no keys held) matrix.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press latches a key down; Release clears it. row and col are both 0-7.
func (k *Keyboard) Press(row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	k.matrix[row][col] = true
}

func (k *Keyboard) Release(row, col int) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	k.matrix[row][col] = false
}

// ReleaseAll clears every key, used when the host window loses focus.
func (k *Keyboard) ReleaseAll() {
	k.matrix = [8][8]bool{}
}

// columnsFor returns, for the given active-low row selection mask (as
// driven out on one CIA port), the active-low column readback (to be read
// back on the other port): a bit is pulled low if any selected row has a
// key pressed in that column.
func (k *Keyboard) columnsFor(rowSelect uint8) uint8 {
	result := uint8(0xff)
	for row := 0; row < 8; row++ {
		if rowSelect&(1<<uint(row)) != 0 {
			continue // row not selected (active-low: 0 selects)
		}
		for col := 0; col < 8; col++ {
			if k.matrix[row][col] {
				result &^= 1 << uint(col)
			}
		}
	}
	return result
}

// rowsFor is the mirror image of columnsFor, for KERNAL routines that scan
// by driving columns and reading rows.
func (k *Keyboard) rowsFor(colSelect uint8) uint8 {
	result := uint8(0xff)
	for col := 0; col < 8; col++ {
		if colSelect&(1<<uint(col)) != 0 {
			continue
		}
		for row := 0; row < 8; row++ {
			if k.matrix[row][col] {
				result &^= 1 << uint(row)
			}
		}
	}
	return result
}

// KeyboardColumns is the cia.Port implementation for CIA1's port B (PRB),
// read as columns while PRA drives the selected rows.
type KeyboardColumns struct {
	Keyboard *Keyboard
	Joystick *Joystick // joystick port 1 shares PRB's upper/lower bits on some wiring; nil if absent
}

func (p KeyboardColumns) Sample(driven uint8, _ uint8) uint8 {
	v := p.Keyboard.columnsFor(driven)
	if p.Joystick != nil {
		v &= p.Joystick.Sample(0, 0)
	}
	return v
}

// KeyboardRows is the cia.Port implementation for CIA1's port A (PRA), read
// as rows while PRB drives the selected columns.
type KeyboardRows struct {
	Keyboard *Keyboard
	Joystick *Joystick // joystick port 2, wired to PRA on real hardware
}

func (p KeyboardRows) Sample(driven uint8, _ uint8) uint8 {
	v := p.Keyboard.rowsFor(driven)
	if p.Joystick != nil {
		v &= p.Joystick.Sample(0, 0)
	}
	return v
}
