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

import (
	"sync/atomic"

	"github.com/dirkwhoffmann/go64/assert"
)

// RingBuffer is the lock-free single-producer/single-consumer sample
// queue between the emulation and the host audio callback: SID.Execute
// (the producer, running on the emulation goroutine) calls Push; the host
// audio callback (the sole consumer, running on its own goroutine) calls
// Pop. Capacity must be a power of two. read/write are only ever advanced
// by their respective single owner, so no mutex is required; the atomic
// operations establish the happens-before relationship needed for the
// consumer to observe fully written samples. producerCheck/consumerCheck
// catch a host wiring Push or Pop to more than one goroutine, which would
// silently violate the lock-free design.
type RingBuffer struct {
	buf         []int16
	mask        uint32
	write, read atomic.Uint32

	producerCheck, consumerCheck assert.SingleGoroutine
}

// NewRingBuffer constructs a RingBuffer. capacity is rounded up to the
// next power of two.
func NewRingBuffer(capacity int) RingBuffer {
	n := 1
	for n < capacity {
		n <<= 1
	}
	return RingBuffer{buf: make([]int16, n), mask: uint32(n - 1)}
}

// Push enqueues one sample, overwriting the oldest unread sample if the
// buffer is full (the audio callback is expected to keep up; on overrun we
// favour continuing playback over blocking the emulation loop).
func (r *RingBuffer) Push(sample int16) {
	r.producerCheck.Check()

	w := r.write.Load()
	r.buf[w&r.mask] = sample
	r.write.Store(w + 1)

	if w+1-r.read.Load() > uint32(len(r.buf)) {
		r.read.Store(w + 1 - uint32(len(r.buf)))
	}
}

// Pop dequeues one sample. ok is false if the buffer is empty.
func (r *RingBuffer) Pop() (sample int16, ok bool) {
	r.consumerCheck.Check()

	rd := r.read.Load()
	if rd == r.write.Load() {
		return 0, false
	}
	sample = r.buf[rd&r.mask]
	r.read.Store(rd + 1)
	return sample, true
}

// Available reports how many samples are currently queued.
func (r *RingBuffer) Available() int {
	return int(r.write.Load() - r.read.Load())
}

// Drain pops up to len(out) samples into out, returning the count copied.
func (r *RingBuffer) Drain(out []int16) int {
	n := 0
	for n < len(out) {
		s, ok := r.Pop()
		if !ok {
			break
		}
		out[n] = s
		n++
	}
	return n
}
