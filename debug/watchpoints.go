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

	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
)

// WatchTag distinguishes a watchpoint that fires on any change to its
// address (ANY_VALUE) from one that only fires when the address takes on
// a specific value (SPECIFIC_VALUE).
type WatchTag int

const (
	AnyValue WatchTag = iota
	SpecificValue
)

// watch is one installed watchpoint plus the last value observed there,
// so a poll-based scan (see Poll) can detect a change without disturbing
// the machine.
type watch struct {
	tag   WatchTag
	value uint8 // meaningful only for SpecificValue
	last  uint8
	armed bool // false until the first Poll has recorded a baseline
}

// Watchpoints is a set of memory addresses to monitor for changes. Unlike
// breakpoints, which the scheduler consults on its own hot path, the core
// has no per-byte write hook cheap enough to keep in the main memory
// path, so watchpoints are evaluated by polling with side-effect-free
// Peek/spypeek reads between instructions (the same places a real
// debugger's single-step loop would check them).
type Watchpoints struct {
	mu   sync.Mutex
	set  map[uint16]*watch
}

// NewWatchpoints returns an empty watchpoint set.
func NewWatchpoints() *Watchpoints {
	return &Watchpoints{set: make(map[uint16]*watch)}
}

// Add installs a watchpoint at addr. For SpecificValue, value is the
// byte that must appear for the watchpoint to fire; it is ignored for
// AnyValue.
func (w *Watchpoints) Add(addr uint16, tag WatchTag, value uint8) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.set[addr] = &watch{tag: tag, value: value}
}

// Remove clears any watchpoint at addr.
func (w *Watchpoints) Remove(addr uint16) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.set, addr)
}

// List returns every watched address in ascending order.
func (w *Watchpoints) List() []uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()
	addrs := make([]uint16, 0, len(w.set))
	for a := range w.set {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Hit describes one watchpoint that fired during a Poll.
type Hit struct {
	Addr     uint16
	Old, New uint8
	Tag      string
}

// Poll reads every watched address with a side-effect-free Peek and
// reports which ones changed (AnyValue) or now hold their target value
// (SpecificValue) since the previous Poll. The first Poll after Add only
// records a baseline and never reports a hit for that address.
func (w *Watchpoints) Poll(mem bus.DebuggerBus) []Hit {
	w.mu.Lock()
	defer w.mu.Unlock()

	var hits []Hit
	for addr, wp := range w.set {
		v, err := mem.Peek(addr)
		if err != nil {
			continue
		}

		if !wp.armed {
			wp.last = v
			wp.armed = true
			continue
		}

		old := wp.last
		changed := v != old
		wp.last = v

		switch wp.tag {
		case AnyValue:
			if changed {
				hits = append(hits, Hit{Addr: addr, Old: old, New: v, Tag: fmt.Sprintf("watchpoint at $%04X", addr)})
			}
		case SpecificValue:
			if v == wp.value {
				hits = append(hits, Hit{Addr: addr, New: v, Tag: fmt.Sprintf("watchpoint at $%04X == $%02X", addr, wp.value)})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Addr < hits[j].Addr })
	return hits
}
