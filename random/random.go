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

// Package random centralises the emulator's need for indeterminate state:
// the reset value of CPU registers, and the RAM contents after a hard
// reset, when the "random startup" preference is enabled. It exists so that a "zero seed" mode can
// make two otherwise-identical emulation instances (eg. the live machine and
// a rewind snapshot being probed) produce the same "random" sequence.
package random

import "math/rand"

// Clock is satisfied by the master scheduler: randomisation is seeded from
// the cycle count so that, with ZeroSeed unset, two runs starting from the
// same point in time diverge identically rather than using wall-clock
// entropy that would make rewind/replay non-reproducible.
type Clock interface {
	Cycle() uint64
}

// Random hands out random numbers; NoRewind and Rewindable both seed a
// fresh generator on every call, from the master clock or (see ZeroSeed)
// from zero. The rnd field is not read by either.
type Random struct {
	clock Clock
	rnd   *rand.Rand

	// ZeroSeed forces the generator to always seed from zero, so that two
	// Random instances produce the same sequence regardless of when they
	// were created. Used by regression tests and by Environment.Normalise.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
		rnd:   rand.New(rand.NewSource(0)),
	}
}

func (r *Random) seed() int64 {
	if r.ZeroSeed || r.clock == nil {
		return 0
	}
	return int64(r.clock.Cycle())
}

// NoRewind returns a random number in [0, n) without reference to the
// current clock position. Used for state that should never be reproduced by
// replaying from a snapshot (eg. reset-time register contents).
func (r *Random) NoRewind(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.New(rand.NewSource(r.seed())).Intn(n)
}

// Rewindable returns a random number in [0, n) that is reproducible: calling
// it again from the same clock position, with the same ZeroSeed setting,
// yields the same value. Used for state whose randomness must survive a
// rewind/replay (eg. colour RAM's floating high nibble).
func (r *Random) Rewindable(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.New(rand.NewSource(r.seed())).Intn(n)
}
