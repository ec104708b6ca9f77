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
	"fmt"
	"sort"
	"sync"
)

// Tag distinguishes a breakpoint set by the user (HARD, survives a
// continue) from one set transiently by a "step over" style command
// (SOFT, removed the first time it fires).
type Tag int

const (
	HARD Tag = iota
	SOFT
)

func (t Tag) String() string {
	if t == SOFT {
		return "SOFT"
	}
	return "HARD"
}

// Breakpoints is a set of PC addresses that halt the scheduler's RunFor
// loop when fetched. It implements scheduler.Debugger.
type Breakpoints struct {
	mu   sync.Mutex
	set  map[uint16]Tag
}

// NewBreakpoints returns an empty breakpoint set.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{set: make(map[uint16]Tag)}
}

// Add installs a breakpoint at pc. Adding at an address that already has
// one replaces its tag.
func (b *Breakpoints) Add(pc uint16, tag Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.set[pc] = tag
}

// Remove clears any breakpoint at pc. It is not an error to remove an
// address with no breakpoint.
func (b *Breakpoints) Remove(pc uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.set, pc)
}

// List returns every installed breakpoint address in ascending order.
func (b *Breakpoints) List() []uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	addrs := make([]uint16, 0, len(b.set))
	for pc := range b.set {
		addrs = append(addrs, pc)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// CheckBreakpoint reports whether pc has a breakpoint installed, and the
// tag it was installed under as a display string. A SOFT breakpoint is
// consumed (removed) the moment it fires, matching a one-shot "run to
// here" command. Implements scheduler.Debugger.
func (b *Breakpoints) CheckBreakpoint(pc uint16) (hit bool, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.set[pc]
	if !ok {
		return false, ""
	}
	if t == SOFT {
		delete(b.set, pc)
	}
	return true, fmt.Sprintf("%s breakpoint at $%04X", t, pc)
}
