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
package test_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/test"
)

// TestRingWriter exercises RingWriter by feeding it short bursts of
// log-like output and checking only the most recent window survives once
// the buffer fills.
func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.Equate(t, err, nil)

	// a fresh ring writer holds nothing yet
	test.Equate(t, r.String(), "")

	// a short log line
	r.Write([]byte("vic:rst"))
	test.Equate(t, r.String(), "vic:rst")

	// another short write, still under capacity
	r.Write([]byte("cia"))
	test.Equate(t, r.String(), "vic:rstcia")

	// one more byte overflows the buffer by one, dropping the oldest byte
	r.Write([]byte("1"))
	test.Equate(t, r.String(), "ic:rstcia1")

	r.Reset()
	test.Equate(t, r.String(), "")

	// writing past capacity in one call keeps only the tail of what was
	// written
	r.Write([]byte("sid:irq"))
	test.Equate(t, r.String(), "sid:irq")
	r.Write([]byte("drv8:mtr"))
	test.Equate(t, r.String(), "rqdrv8:mtr")

	// writing a string the same length as the buffer replaces it entirely
	r.Write([]byte("0123456789"))
	test.Equate(t, r.String(), "0123456789")

	// writing a string longer than the buffer in one call
	r.Write([]byte("0123456789ABC"))
	test.Equate(t, r.String(), "3456789ABC")
}
