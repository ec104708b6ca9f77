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

package debug

import (
	"strings"

	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
)

// ScreenWidth and ScreenHeight are the default C64 text screen dimensions
// (40 columns x 25 rows) used by ReadScreen.
const (
	ScreenWidth  = 40
	ScreenHeight = 25

	// DefaultScreenBase is $0400, the KERNAL's default text screen
	// location (unless the VIC bank or $D018 have been reprogrammed).
	DefaultScreenBase uint16 = 0x0400
)

// screenCodeToASCII maps a C64 screen code (as stored at $0400, distinct
// from PETSCII: screen code 0 is '@', 1-26 are A-Z, 32-63 mostly mirror
// ASCII symbols and digits) to the printable ASCII rune an end-to-end test
// would want to compare against. Codes with no reasonable ASCII
// equivalent (box-drawing, graphics characters) map to a space.
var screenCodeToASCII = buildScreenCodeTable()

func buildScreenCodeTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = ' '
	}

	t[0x00] = '@'
	for i := 1; i <= 26; i++ {
		t[i] = byte('A' + i - 1)
	}
	t[0x1b] = '['
	t[0x1c] = '\xa3' // pound sign, has no direct ASCII equivalent
	t[0x1d] = ']'
	t[0x1e] = '^'
	t[0x1f] = '_'

	t[0x20] = ' '
	// 0x21-0x3f mirror ASCII '!' through '?' for punctuation and digits.
	for i := 0x21; i <= 0x3f; i++ {
		t[i] = byte(i)
	}

	// Shifted/lower-case letters (0x41-0x5a region in upper/graphics mode
	// render as the lower-case alphabet on real hardware's default
	// character set).
	for i := 0; i < 26; i++ {
		t[0x41+i] = byte('a' + i)
	}

	return t
}

// ReadScreen reads rows*cols screen codes starting at base (typically
// debug.DefaultScreenBase) using side-effect-free Peek calls, and returns
// one trimmed-right string per row with screen codes translated to their
// ASCII equivalent. Used to drive end-to-end scenarios E1 and E3, which
// assert on specific KERNAL/DOS output appearing on the text screen.
func ReadScreen(mem bus.DebuggerBus, base uint16, cols, rows int) ([]string, error) {
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			addr := base + uint16(row*cols+col)
			code, err := mem.Peek(addr)
			if err != nil {
				return nil, err
			}
			b.WriteByte(screenCodeToASCII[code])
		}
		lines[row] = strings.TrimRight(b.String(), " ")
	}
	return lines, nil
}

// ContainsLine reports whether any of lines contains needle as a
// substring. The lines are compared as given, without further trimming.
func ContainsLine(lines []string, needle string) bool {
	for _, l := range lines {
		if strings.Contains(l, needle) {
			return true
		}
	}
	return false
}
