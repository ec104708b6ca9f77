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

// Package debugconsole implements an interactive breakpoint/watchpoint
// REPL for driving the machine's debugger hooks: step,
// continue-to-breakpoint and quit are single keystrokes read without
// line buffering (github.com/pkg/term/termios, cbreak mode); entering an address to
// arm a new breakpoint or watchpoint briefly restores canonical mode so
// the terminal's own line editing can be used.
package debugconsole

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawTerm wraps one terminal's termios state: it
// remembers the terminal's canonical attributes so CBreakMode/CanonicalMode
// can toggle between single-keystroke and line-buffered input on the same
// file descriptor.
type rawTerm struct {
	f         *os.File
	canonical unix.Termios
	cbreak    unix.Termios
}

func newRawTerm(f *os.File) (*rawTerm, error) {
	t := &rawTerm{f: f}
	if err := termios.Tcgetattr(f.Fd(), &t.canonical); err != nil {
		return nil, err
	}
	t.cbreak = t.canonical
	termios.Cfmakecbreak(&t.cbreak)
	return t, nil
}

// CBreakMode puts the terminal into cbreak mode: input is available one
// keystroke at a time, without waiting for a newline.
func (t *rawTerm) CBreakMode() error {
	return termios.Tcsetattr(t.f.Fd(), termios.TCIFLUSH, &t.cbreak)
}

// CanonicalMode restores normal line-buffered, echoing terminal input.
func (t *rawTerm) CanonicalMode() error {
	return termios.Tcsetattr(t.f.Fd(), termios.TCIFLUSH, &t.canonical)
}

// ReadByte reads a single byte from the terminal. The terminal must
// already be in cbreak mode for this to return as soon as one key is
// pressed, rather than after a newline.
func (t *rawTerm) ReadByte() (byte, error) {
	var buf [1]byte
	_, err := t.f.Read(buf[:])
	return buf[0], err
}
