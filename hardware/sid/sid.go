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

// Package sid implements the register file and a simplified oscillator
// mixer for the 6581/8580 SID sound chip. Full analogue-accurate filter
// and ADSR emulation is left to an external synthesis collaborator;
// what's modelled here is enough to drive the three-voice register set
// correctly, produce an audible waveform from it, and hand samples to
// the host through a lock-free ring buffer.
package sid

import (
	"github.com/dirkwhoffmann/go64/hardware/memory/addresses"
	"github.com/dirkwhoffmann/go64/hardware/memory/bus"
)

// voice is the register/oscillator state of one of the three SID voices.
type voice struct {
	freq    uint16
	pulse   uint16
	control uint8
	attack  uint8
	decay   uint8
	sustain uint8
	release uint8

	accumulator uint32
	noiseLFSR   uint32
	envelope    uint8
	envPhase    int // 0=attack 1=decay 2=sustain 3=release
	envCounter  int
	gateWasOn   bool
}

const (
	ctrlGate    = 0x01
	ctrlSync    = 0x02
	ctrlRing    = 0x04
	ctrlTest    = 0x08
	ctrlTri     = 0x10
	ctrlSaw     = 0x20
	ctrlPulse   = 0x40
	ctrlNoise   = 0x80
)

// SID is the memory-mapped register file plus a minimal per-sample mixer.
// One SID clock tick corresponds to one master cycle: the scheduler calls
// Execute once per cycle, and Execute mixes a sample into Ring whenever a
// sample period at the configured sample rate has elapsed.
type SID struct {
	voices [3]voice

	filterCutoff   uint16
	filterResonance uint8
	filterControl  uint8
	volumeMode     uint8

	lastRegister string

	// Ring is the lock-free SPSC sample ring the host audio callback
	// drains. Mono signed-16 PCM.
	Ring RingBuffer

	// clockHz is the master clock frequency, set via SetClock; together
	// with the sample rate it gives the number of cycles per sample.
	clockHz          float64
	cycleAccumulator float64
	samplesPerCycle  float64

	resample resampler
}

// NewSID constructs a SID with a default PAL clock and 44100 Hz sample
// rate; call SetClock/SetSampleRate to change either.
func NewSID() *SID {
	s := &SID{clockHz: 985249}
	s.Ring = NewRingBuffer(8192)
	s.SetSampleRate(44100)
	return s
}

// SetClock sets the master clock frequency in Hz (PAL 985249 / NTSC
// 1022727), used to convert register frequency values to audible pitch.
func (s *SID) SetClock(hz float64) {
	if s.samplesPerCycle > 0 {
		rate := s.clockHz / s.samplesPerCycle
		s.samplesPerCycle = hz / rate
	}
	s.clockHz = hz
}

// SetSampleRate configures how many master cycles elapse per output
// sample.
func (s *SID) SetSampleRate(hz int) {
	if hz <= 0 {
		hz = 44100
	}
	s.samplesPerCycle = s.clockHz / float64(hz)
	if s.samplesPerCycle <= 0 {
		s.samplesPerCycle = 985249.0 / 44100.0
	}
}

// SetResampleMode selects between the fast nearest-neighbour resampler
// and the windowed-sinc interpolator.
func (s *SID) SetResampleMode(m ResampleMode) {
	s.resample.mode = m
}

// Execute advances the chip by one master cycle; when enough cycles have
// accumulated it mixes and pushes one sample into Ring.
func (s *SID) Execute() {
	for i := range s.voices {
		s.tickOscillator(&s.voices[i])
		s.tickEnvelope(&s.voices[i])
	}

	if s.resample.mode == ResampleSinc {
		s.resample.push(float64(s.mix()))
	}

	s.cycleAccumulator++
	if s.cycleAccumulator >= s.samplesPerCycle {
		frac := s.cycleAccumulator - s.samplesPerCycle
		s.cycleAccumulator = frac
		if s.resample.mode == ResampleSinc {
			s.Ring.Push(s.resample.interpolate(frac))
		} else {
			s.Ring.Push(s.mix())
		}
	}
}

func (s *SID) tickOscillator(v *voice) {
	if v.control&ctrlTest != 0 {
		v.accumulator = 0
		return
	}
	v.accumulator += uint32(v.freq)
}

// tickEnvelope is a simplified linear ADSR: exponential curves are
// approximated by a linear ramp over the same nominal rate-counter
// periods the real 6581 uses, which is sufficient for the amplitude
// envelope to be audibly present without reproducing the chip's analogue
// non-linearity.
func (s *SID) tickEnvelope(v *voice) {
	gateOn := v.control&ctrlGate != 0

	if gateOn && !v.gateWasOn {
		v.envPhase = 0
	} else if !gateOn && v.gateWasOn {
		v.envPhase = 3
	}
	v.gateWasOn = gateOn

	rate := envRatePeriod(0)
	switch v.envPhase {
	case 0:
		rate = envRatePeriod(v.attack)
	case 1:
		rate = envRatePeriod(v.decay)
	case 2:
		rate = envRatePeriod(0)
	case 3:
		rate = envRatePeriod(v.release)
	}

	v.envCounter++
	if v.envCounter < rate {
		return
	}
	v.envCounter = 0

	switch v.envPhase {
	case 0:
		if v.envelope < 0xff {
			v.envelope++
		} else {
			v.envPhase = 1
		}
	case 1:
		target := (v.sustain & 0x0f) * 0x11
		if v.envelope > target {
			v.envelope--
		}
	case 3:
		if v.envelope > 0 {
			v.envelope--
		}
	}
}

// envRatePeriod maps a 4-bit ADSR rate value to a cycle-counter period,
// following the well-known table of rate-counter periods published for
// the 6581 (values rounded to the nearest sample-tick granularity this
// simplified model operates at).
var envRatePeriods = [16]int{2, 8, 16, 24, 38, 56, 68, 80, 100, 250, 500, 800, 1000, 3000, 5000, 8000}

func envRatePeriod(v uint8) int {
	return envRatePeriods[v&0x0f]
}

func (s *SID) waveform(v *voice) int32 {
	if v.control&ctrlTest != 0 {
		return 0
	}

	top := uint32(v.accumulator >> 24) // 0-255

	var out int32
	switch {
	case v.control&ctrlTri != 0:
		if top < 128 {
			out = int32(top * 2)
		} else {
			out = int32((255 - top) * 2)
		}
	case v.control&ctrlSaw != 0:
		out = int32(top)
	case v.control&ctrlPulse != 0:
		threshold := uint32(v.pulse&0x0fff) << 4 >> 8
		if top >= threshold {
			out = 255
		} else {
			out = 0
		}
	case v.control&ctrlNoise != 0:
		if v.noiseLFSR == 0 {
			v.noiseLFSR = 0x7ffff8
		}
		bit := ((v.noiseLFSR >> 22) ^ (v.noiseLFSR >> 17)) & 1
		v.noiseLFSR = ((v.noiseLFSR << 1) | bit) & 0xffffff
		out = int32(v.noiseLFSR & 0xff)
	}
	return out
}

func (s *SID) mix() int16 {
	var sum int32
	for i := range s.voices {
		amp := s.waveform(&s.voices[i])
		sum += (amp - 128) * int32(s.voices[i].envelope)
	}
	sum = sum * int32(s.volumeMode&0x0f) / 16
	sum /= 3
	if sum > 32767 {
		sum = 32767
	} else if sum < -32768 {
		sum = -32768
	}
	return int16(sum)
}

// ChipWrite implements bus.ChipBus.
func (s *SID) ChipWrite(offset uint16, data uint8) {
	s.lastRegister = addresses.SIDWriteSymbols[offset]

	if offset >= 0x15 {
		switch offset {
		case 0x15:
			s.filterCutoff = (s.filterCutoff & 0xff8) | uint16(data&0x07)
		case 0x16:
			s.filterCutoff = (s.filterCutoff & 0x007) | (uint16(data) << 3)
		case 0x17:
			s.filterResonance = data
		case 0x18:
			s.volumeMode = data
		}
		return
	}

	v := &s.voices[offset/7]
	switch offset % 7 {
	case 0:
		v.freq = (v.freq & 0xff00) | uint16(data)
	case 1:
		v.freq = (v.freq & 0x00ff) | uint16(data)<<8
	case 2:
		v.pulse = (v.pulse & 0x0f00) | uint16(data)
	case 3:
		v.pulse = (v.pulse & 0x00ff) | uint16(data&0x0f)<<8
	case 4:
		v.control = data
	case 5:
		v.attack = data >> 4
		v.decay = data & 0x0f
	case 6:
		v.sustain = data >> 4
		v.release = data & 0x0f
	}
}

// ChipReadRegister implements bus.ChipBus. Only the oscillator/envelope
// outputs of voice 3 and the paddle inputs are genuinely readable on real
// hardware; everything else reads back the last value written to the bus
// (simplified here to 0).
func (s *SID) ChipReadRegister(offset uint16) uint8 {
	switch offset {
	case 0x1b:
		return uint8(s.voices[2].accumulator >> 24)
	case 0x1c:
		return s.voices[2].envelope
	}
	return 0
}

// ChipRead implements bus.ChipBus; the SID register file has no
// poll-for-change consumer in the core (unlike CIA timers, nothing here
// needs to know a write happened, only its resulting value).
func (s *SID) ChipRead() (bool, bus.ChipData) {
	return false, bus.ChipData{}
}

// LastReadRegister implements bus.ChipBus.
func (s *SID) LastReadRegister() string {
	return s.lastRegister
}
