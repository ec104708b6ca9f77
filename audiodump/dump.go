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

package audiodump

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// chunkSamples is how many samples Drain pulls from the ring buffer per
// call; small enough to keep latency low if the caller drains once per
// frame, large enough to avoid a syscall-per-sample WAV write.
const chunkSamples = 4096

// Dump drains a sid.RingBuffer to a mono 16-bit PCM WAV file. SID is
// single-voice mono; a host wanting stereo duplicates the same
// samples into both channels itself, so Dump only ever writes one
// channel.
type Dump struct {
	f       *os.File
	enc     *wav.Encoder
	buf     []int16
	scratch []int
}

// Source is the subset of sid.RingBuffer's behaviour Dump needs: draining
// up to len(out) samples into out and reporting how many were copied.
type Source interface {
	Drain(out []int16) int
}

// New creates path and prepares a WAV encoder at sampleRate. Call Write
// repeatedly (eg. once per emulated frame) to drain src into the file,
// then Close to finalise the WAV header.
func New(path string, sampleRate int) (*Dump, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	return &Dump{
		f:       f,
		enc:     enc,
		buf:     make([]int16, chunkSamples),
		scratch: make([]int, chunkSamples),
	}, nil
}

// Write drains every sample currently queued in src and encodes it.
func (d *Dump) Write(src Source) error {
	for {
		n := src.Drain(d.buf)
		if n == 0 {
			return nil
		}

		for i := 0; i < n; i++ {
			d.scratch[i] = int(d.buf[i])
		}

		ib := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: d.enc.SampleRate},
			Data:           d.scratch[:n],
			SourceBitDepth: 16,
		}
		if err := d.enc.Write(ib); err != nil {
			return err
		}

		if n < len(d.buf) {
			return nil
		}
	}
}

// Close finalises the WAV header and closes the underlying file. Write
// must not be called again afterward.
func (d *Dump) Close() error {
	if err := d.enc.Close(); err != nil {
		d.f.Close()
		return err
	}
	return d.f.Close()
}
