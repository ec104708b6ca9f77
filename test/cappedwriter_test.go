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

// TestCappedWriter exercises CappedWriter the way a bounded disassembly
// trace buffer would: once it fills, later bytes are dropped rather than
// displacing what's already recorded, unlike RingWriter.
func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(10)
	test.Equate(t, err, nil)

	// a fresh capped writer holds nothing yet
	test.Equate(t, c.String(), "")

	// one byte
	c.Write([]byte("L"))
	test.Equate(t, c.String(), "L")

	// a few more bytes, still under capacity
	c.Write([]byte("DA#"))
	test.Equate(t, c.String(), "LDA#")

	// fill the rest of the capacity exactly
	c.Write([]byte("$00:EA"))
	test.Equate(t, c.String(), "LDA#$00:EA")

	// further bytes are silently dropped once the capacity is reached
	c.Write([]byte("NOP"))
	test.Equate(t, c.String(), "LDA#$00:EA")

	// reset and confirm the buffer is empty again
	c.Reset()
	test.Equate(t, c.String(), "")

	// writing exactly the capacity in one call fills it completely
	c.Write([]byte("9600B2E710"))
	test.Equate(t, c.String(), "9600B2E710")

	c.Reset()
	test.Equate(t, c.String(), "")

	// writing more than the capacity in one call keeps only the leading
	// bytes up to the capacity
	c.Write([]byte("9600B2E710FCE2"))
	test.Equate(t, c.String(), "9600B2E710")
}
