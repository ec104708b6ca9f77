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
// Package environment bundles the context shared by every component of one
// emulation: its label, its preferences, its source of indeterminate
// state, the cartridge loader currently in use and the host's notice sink.
// Particularly useful when more than one emulation exists in the same
// process (eg. a live machine plus a probe used for rewind).
package environment

import (
	"github.com/dirkwhoffmann/go64/cartridgeloader"
	"github.com/dirkwhoffmann/go64/host"
	"github.com/dirkwhoffmann/go64/prefs"
	"github.com/dirkwhoffmann/go64/random"
)

// Label distinguishes between different emulations running in the same
// process.
type Label string

// MainEmulation is the label used for the main (user-facing) emulation.
const MainEmulation = Label("main")

// Environment is used to provide context for an emulation. Particularly
// useful when using multiple emulations.
type Environment struct {
	// Label distinguishes between different types of emulation (eg. a
	// disassembly pass run with NoFlowControl vs the live machine).
	Label Label

	// Notify is the interface to the host. Used, for example, when a
	// cartridge has been successfully attached or the CPU jams.
	Notify host.Notify

	// Prefs holds the emulation's tunable settings.
	Prefs *prefs.Preferences

	// Random is the source of any indeterminate state the emulation
	// requires (reset register noise, colour RAM's floating nibble,
	// unstable undocumented opcodes).
	Random *random.Random

	// Loader is the cartridge loader currently in use, if any.
	Loader cartridgeloader.Loader
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// notify and prefsFile may be empty/nil. If notify is nil, events are
// silently discarded. If prefsFile is empty, a fresh, unpersisted set of
// preferences is created.
func NewEnvironment(label Label, clock random.Clock, notify host.Notify, prefsFile string) (*Environment, error) {
	p, err := prefs.NewPreferences(prefsFile)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Label:  label,
		Notify: notify,
		Prefs:  p,
		Random: random.NewRandom(clock),
	}

	if env.Notify == nil {
		env.Notify = notifyStub{}
	}

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful
// for regression testing where the initial state must be the same for
// every run of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging returns true if the environment is permitted to create new
// log entries. Implements logger.Permission.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}

// notifyStub discards every event.
type notifyStub struct{}

func (notifyStub) Notify(host.Event) error { return nil }
