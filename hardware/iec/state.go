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

package iec

import "encoding/gob"

// state is the snapshot-serialisable subset of Bus fields.
type state struct {
	ATN, Clock, Data [participantCount]bool
	IdleCountdown    int
}

func init() {
	gob.Register(state{})
}

// SaveState returns a serialisable snapshot of the bus.
func (b *Bus) SaveState() interface{} {
	return state{b.atn, b.clock, b.data, b.idleCountdown}
}

// RestoreState applies a snapshot produced by SaveState.
func (b *Bus) RestoreState(v interface{}) bool {
	s, ok := v.(state)
	if !ok {
		return false
	}
	b.atn, b.clock, b.data = s.ATN, s.Clock, s.Data
	b.idleCountdown = s.IdleCountdown
	return true
}
