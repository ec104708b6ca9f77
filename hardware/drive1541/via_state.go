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

package drive1541

import "encoding/gob"

// viaState is the snapshot-serialisable subset of VIA fields.
type viaState struct {
	ORA, ORB, DDRA, DDRB uint8
	T1C, T1L             uint16
	T2C                  uint16
	T2L                  uint8
	SR                   uint8
	ACR, PCR, IFR, IER   uint8
	CA1, CB1             bool
}

func init() {
	gob.Register(viaState{})
}

// SaveState returns a serialisable snapshot of the VIA.
func (v *VIA) SaveState() interface{} {
	return viaState{
		v.ora, v.orb, v.ddra, v.ddrb,
		v.t1c, v.t1l,
		v.t2c, v.t2l,
		v.sr,
		v.acr, v.pcr, v.ifr, v.ier,
		v.ca1, v.cb1,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (v *VIA) RestoreState(s interface{}) bool {
	st, ok := s.(viaState)
	if !ok {
		return false
	}
	v.ora, v.orb, v.ddra, v.ddrb = st.ORA, st.ORB, st.DDRA, st.DDRB
	v.t1c, v.t1l = st.T1C, st.T1L
	v.t2c, v.t2l = st.T2C, st.T2L
	v.sr = st.SR
	v.acr, v.pcr, v.ifr, v.ier = st.ACR, st.PCR, st.IFR, st.IER
	v.ca1, v.cb1 = st.CA1, st.CB1
	return true
}
