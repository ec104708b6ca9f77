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

// Package pipeline implements fixed-delay scheduling for the chips whose
// register writes take effect one or more cycles after the CPU issues
// them: the VIC-II's current/delayed register pipe and a few delayed CIA
// actions, such as timer force loads. Events are ticked once per master cycle;
// a delay of 0 means "runs on this Tick". For the fixed, short delays
// these chips exhibit, a shifted pipeline is simpler and faster than a
// priority queue.
package pipeline

// Event is a scheduled action. Pipeline.Tick advances it each cycle and
// drops it from the pipeline once it has fired.
type Event struct {
	label   string
	delay   int
	payload func()
	fired   bool
}

// AboutToFire reports whether the event will run on the very next Tick.
func (e *Event) AboutToFire() bool {
	return e != nil && !e.fired && e.delay == 0
}

// Label returns the event's descriptive label, used by debuggers.
func (e *Event) Label() string { return e.label }

// Pipeline holds every in-flight delayed event for one chip. The owning
// chip calls Tick() once per master cycle from its own per-cycle step.
type Pipeline struct {
	events []*Event
}

// Schedule registers payload to run after delay further calls to Tick (a
// delay of 0 runs on the very next Tick, -1 runs immediately and is
// equivalent to calling payload() directly).
func (p *Pipeline) Schedule(delay int, payload func(), label string) *Event {
	ev := &Event{delay: delay, payload: payload, label: label}
	if delay < 0 {
		payload()
		ev.fired = true
		return ev
	}
	p.events = append(p.events, ev)
	return ev
}

// Tick advances every scheduled event by one cycle, running (and removing)
// any whose delay has reached zero. Returns the number of events that
// fired this cycle.
func (p *Pipeline) Tick() int {
	if len(p.events) == 0 {
		return 0
	}

	fired := 0
	kept := p.events[:0]
	for _, ev := range p.events {
		if ev.delay == 0 {
			ev.payload()
			ev.fired = true
			fired++
			continue
		}
		ev.delay--
		kept = append(kept, ev)
	}
	p.events = kept
	return fired
}

// Pending reports whether any event is still in flight.
func (p *Pipeline) Pending() bool {
	return len(p.events) > 0
}

// Clear discards every scheduled event without running their payloads,
// used on reset.
func (p *Pipeline) Clear() {
	p.events = nil
}
