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

package prefs

import "github.com/dirkwhoffmann/go64/errors"

// Preferences is the machine-wide set of tunables a host exposes to the
// user: video region, speed, ROM locations, palette choice and the audio
// pipeline. It is backed by a Disk so settings persist across runs.
type Preferences struct {
	disk *Disk

	// Region selects "PAL" or "NTSC" timing (hardware/clocks).
	Region String

	// Warp disables the frame-rate limiter and audio output for
	// fast-forward style execution.
	Warp Bool

	// TrueDriveEmulation toggles whether an attached 1541 actually runs
	// its own CPU/VIA/disk-rotation model. With it off the drives are not
	// ticked at all, and nothing else answers on the serial bus for them.
	TrueDriveEmulation Bool

	// RandomState seeds CPU registers and RAM with indeterminate values on
	// reset, matching real hardware's power-on noise, rather than zeroing
	// them.
	RandomState Bool

	// Palette names the colour palette (hardware/display): "colodore",
	// "pepto", "mono-bw", "mono-paper", "mono-green", "mono-amber",
	// "mono-sepia".
	Palette String

	// SampleRate is the host audio sample rate in Hz.
	SampleRate Int

	// KernalPath, BasicPath and CharPath locate the three mandatory ROM
	// images. An empty path leaves the corresponding ROM unloaded; the
	// memory package still maps it, and it reads as zero bytes.
	KernalPath String
	BasicPath  String
	CharPath   String
}

// NewPreferences constructs a Preferences with documented defaults and, if
// filename is non-empty, loads persisted overrides from disk.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if filename == "" {
		return p, nil
	}

	disk, err := NewDisk(filename)
	if err != nil {
		return nil, errors.Errorf(errors.Prefs, err)
	}
	p.disk = disk

	for key, v := range p.entries() {
		if err := disk.Add(key, v); err != nil {
			return nil, errors.Errorf(errors.Prefs, err)
		}
	}

	return p, nil
}

// SetDefaults resets every preference to its documented default, leaving
// any associated Disk binding intact.
func (p *Preferences) SetDefaults() {
	p.Region.Set("PAL")
	p.Warp.Set(false)
	p.TrueDriveEmulation.Set(true)
	p.RandomState.Set(false)
	p.Palette.Set("colodore")
	p.SampleRate.Set(44100)
	p.KernalPath.Set("")
	p.BasicPath.Set("")
	p.CharPath.Set("")
}

func (p *Preferences) entries() map[string]Pref {
	return map[string]Pref{
		"region":      &p.Region,
		"warp":        &p.Warp,
		"truedrive":   &p.TrueDriveEmulation,
		"randomstate": &p.RandomState,
		"palette":     &p.Palette,
		"samplerate":  &p.SampleRate,
		"kernal":      &p.KernalPath,
		"basic":       &p.BasicPath,
		"char":        &p.CharPath,
	}
}

// Save persists every preference to the bound Disk. It is a no-op if
// NewPreferences was called with an empty filename.
func (p *Preferences) Save() error {
	if p.disk == nil {
		return nil
	}
	return p.disk.Save()
}
