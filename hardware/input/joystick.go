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

package input

// Joystick bits, active-low on the real port: up/down/left/right/fire.
const (
	JoyUp = 1 << iota
	JoyDown
	JoyLeft
	JoyRight
	JoyFire
)

// Joystick holds the live (active-high, host-side) state of one digital
// joystick. Sample converts it to the active-low byte a CIA port reads.
type Joystick struct {
	state uint8
}

// NewJoystick returns a joystick with no direction or fire button held.
func NewJoystick() *Joystick {
	return &Joystick{}
}

// Set latches or clears the given direction/fire bits (combination of
// JoyUp, JoyDown, JoyLeft, JoyRight, JoyFire), active-high.
func (j *Joystick) Set(bits uint8, down bool) {
	if down {
		j.state |= bits
	} else {
		j.state &^= bits
	}
}

// Sample implements the part of cia.Port needed to AND a joystick's
// contribution into a keyboard port's readback; arguments are unused since
// a joystick has no cross-port dependency. Only bits 0-4 (the joystick's
// five switches) can pull low; bits 5-7 are left at 1 so ANDing this in
// never disturbs keyboard rows/columns the joystick isn't wired to.
func (j *Joystick) Sample(uint8, uint8) uint8 {
	return (^j.state & 0x1f) | 0xe0
}
