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

package sid_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/hardware/sid"
	"github.com/dirkwhoffmann/go64/test"
)

func TestExecuteProducesSamples(t *testing.T) {
	s := sid.NewSID()

	s.ChipWrite(0x00, 0x34) // voice 1 freq lo
	s.ChipWrite(0x01, 0x12) // voice 1 freq hi
	s.ChipWrite(0x04, 0x11) // triangle + gate

	for i := 0; i < 2000; i++ {
		s.Execute()
	}

	test.ExpectSuccess(t, s.Ring.Available() > 0)
}

func TestSincResamplerProducesSamples(t *testing.T) {
	s := sid.NewSID()
	s.SetResampleMode(sid.ResampleSinc)

	s.ChipWrite(0x00, 0x34)
	s.ChipWrite(0x01, 0x12)
	s.ChipWrite(0x04, 0x21) // sawtooth + gate
	s.ChipWrite(0x18, 0x0f) // full volume

	for i := 0; i < 2000; i++ {
		s.Execute()
	}

	// ~2000 cycles at the PAL clock is ~89 samples at 44.1kHz; the exact
	// count depends on the fractional accumulator, the presence of output
	// is what matters
	test.ExpectSuccess(t, s.Ring.Available() > 80)
}

func TestRingBufferWrapsWithoutPanic(t *testing.T) {
	r := sid.NewRingBuffer(4)
	for i := 0; i < 100; i++ {
		r.Push(int16(i))
	}
	buf := make([]int16, 4)
	n := r.Drain(buf)
	test.ExpectSuccess(t, n > 0)
}
