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

import "math"

// ResampleMode selects how the clock-rate sample stream is reduced to the
// host sample rate: Nearest simply takes the sample the output instant
// falls on (cheap, used by warp-adjacent fast paths), Sinc interpolates
// with a Hamming-windowed sinc kernel over a short history window.
type ResampleMode int

const (
	ResampleNearest ResampleMode = iota
	ResampleSinc
)

// sincTaps is the kernel width. 16 taps at ~1 MHz in, 44.1 kHz out is
// plenty: the kernel only has to suppress imaging around the crude
// mixer's own noise floor.
const sincTaps = 16

// sincHistory holds the most recent clock-rate samples in Sinc mode. Kept
// a power of two so the ring index is a mask.
const sincHistory = 32

type resampler struct {
	mode    ResampleMode
	history [sincHistory]float64
	pos     int
}

func (r *resampler) push(v float64) {
	r.history[r.pos&(sincHistory-1)] = v
	r.pos++
}

// at reads the sample k positions before the newest.
func (r *resampler) at(k int) float64 {
	return r.history[(r.pos-1-k)&(sincHistory-1)]
}

// interpolate evaluates the windowed-sinc reconstruction at frac cycles
// past the sample sincTaps/2 positions back from the newest (the kernel
// is centred in the history so both past and "future" neighbours are
// available).
func (r *resampler) interpolate(frac float64) int16 {
	const centre = sincTaps / 2

	var sum, norm float64
	for k := 0; k < sincTaps; k++ {
		// t is the kernel-relative distance of this tap from the exact
		// output instant
		t := float64(k-centre) + frac
		w := windowedSinc(t)
		sum += r.at(sincTaps-1-k) * w
		norm += w
	}
	if norm != 0 {
		sum /= norm
	}
	if sum > 32767 {
		sum = 32767
	} else if sum < -32768 {
		sum = -32768
	}
	return int16(sum)
}

// windowedSinc is sinc(t) shaped by a Hamming window over the kernel
// span.
func windowedSinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	x := math.Pi * t
	s := math.Sin(x) / x
	// Hamming window across [-taps/2, taps/2]
	w := 0.54 + 0.46*math.Cos(math.Pi*t/(sincTaps/2))
	return s * w
}
