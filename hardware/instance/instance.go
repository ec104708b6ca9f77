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
//
// Package instance defines those parts of the emulation that might change
// from instance to instance of the machine, but are not the machine
// itself: its preferences and its source of indeterminate state.
//
// Particularly useful when running more than one instance of the emulation
// in parallel, eg. the live machine plus a rewind snapshot being probed by
// a debugger.
package instance

import (
	"github.com/dirkwhoffmann/go64/prefs"
	"github.com/dirkwhoffmann/go64/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine, but are not the machine itself.
type Instance struct {
	Prefs  *prefs.Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. clock may be nil, in which case Random always seeds from zero.
func NewInstance(clock random.Clock) (*Instance, error) {
	p, err := prefs.NewPreferences("")
	if err != nil {
		return nil, err
	}

	return &Instance{
		Prefs:  p,
		Random: random.NewRandom(clock),
	}, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every
// run of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
