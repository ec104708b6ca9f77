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

package random_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/random"
	"github.com/dirkwhoffmann/go64/test"
)

type clock struct {
	cycle uint64
}

func (c *clock) Cycle() uint64 {
	return c.cycle
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycle: 985249})
	b := random.NewRandom(&clock{cycle: 985249})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}
