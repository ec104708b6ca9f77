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

package sid

import "encoding/gob"

// voiceSnap mirrors voice with every field exported for gob encoding.
type voiceSnap struct {
	Freq, Pulse                          uint16
	Control, Attack, Decay, Sustain, Release uint8
	Accumulator, NoiseLFSR               uint32
	Envelope                             uint8
	EnvPhase, EnvCounter                 int
	GateWasOn                            bool
}

func (v voice) snap() voiceSnap {
	return voiceSnap{
		v.freq, v.pulse,
		v.control, v.attack, v.decay, v.sustain, v.release,
		v.accumulator, v.noiseLFSR,
		v.envelope, v.envPhase, v.envCounter, v.gateWasOn,
	}
}

func (s voiceSnap) unsnap() voice {
	return voice{
		freq: s.Freq, pulse: s.Pulse,
		control: s.Control, attack: s.Attack, decay: s.Decay,
		sustain: s.Sustain, release: s.Release,
		accumulator: s.Accumulator, noiseLFSR: s.NoiseLFSR,
		envelope: s.Envelope, envPhase: s.EnvPhase,
		envCounter: s.EnvCounter, gateWasOn: s.GateWasOn,
	}
}

// state is the snapshot-serialisable subset of SID fields. The ring
// buffer is deliberately excluded: it holds in-flight audio samples the
// host hasn't drained yet, not emulation state, and restoring it would
// replay stale audio after a snapshot load.
type state struct {
	Voices                          [3]voiceSnap
	FilterCutoff                    uint16
	FilterResonance, FilterControl  uint8
	VolumeMode                      uint8
	CycleAccumulator                float64
}

func init() {
	gob.Register(state{})
}

// SaveState returns a serialisable snapshot of the three voices and the
// filter/volume register block.
func (s *SID) SaveState() interface{} {
	var voices [3]voiceSnap
	for i, v := range s.voices {
		voices[i] = v.snap()
	}
	return state{
		Voices:          voices,
		FilterCutoff:    s.filterCutoff,
		FilterResonance: s.filterResonance,
		FilterControl:   s.filterControl,
		VolumeMode:      s.volumeMode,
		CycleAccumulator: s.cycleAccumulator,
	}
}

// RestoreState applies a snapshot produced by SaveState.
func (s *SID) RestoreState(v interface{}) bool {
	st, ok := v.(state)
	if !ok {
		return false
	}
	for i, vs := range st.Voices {
		s.voices[i] = vs.unsnap()
	}
	s.filterCutoff = st.FilterCutoff
	s.filterResonance = st.FilterResonance
	s.filterControl = st.FilterControl
	s.volumeMode = st.VolumeMode
	s.cycleAccumulator = st.CycleAccumulator
	return true
}
