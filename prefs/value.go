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

// Package prefs implements the emulator's tunable settings: region, warp,
// ROM paths, palette choice, audio sample rate, true-drive emulation and
// so on. Every setting is a small typed Value box that can be read/written
// by the host and persisted to a flat key::value text file through a Disk.
package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the native Go type carried by a preference: bool, int, float64
// or string, depending on the concrete box.
type Value interface{}

// Pref is implemented by every preference value box. setFromString is used
// internally by Disk to apply a value loaded from the preferences file;
// unlike Set it always accepts a string representation of the native type.
type Pref interface {
	fmt.Stringer
	setFromString(s string) error
}

// Bool is a boolean preference.
type Bool struct {
	value bool
}

// Set assigns v, which may be a bool or a string ("true", case
// insensitive, for true; anything else for false).
func (b *Bool) Set(v Value) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		b.value = strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return fmt.Errorf("prefs: unsupported type for bool preference: %T", v)
	}
	return nil
}

func (b *Bool) setFromString(s string) error { return b.Set(s) }

// Get returns the current value.
func (b *Bool) Get() bool { return b.value }

func (b *Bool) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

// Int is an integer preference.
type Int struct {
	value int
}

// Set assigns v, which may be an int or a string parseable as one.
func (i *Int) Set(v Value) error {
	switch t := v.(type) {
	case int:
		i.value = t
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("prefs: invalid int value %q", t)
		}
		i.value = n
	default:
		return fmt.Errorf("prefs: unsupported type for int preference: %T", v)
	}
	return nil
}

func (i *Int) setFromString(s string) error { return i.Set(s) }

// Get returns the current value.
func (i *Int) Get() int { return i.value }

func (i *Int) String() string { return strconv.Itoa(i.value) }

// Float is a floating-point preference.
type Float struct {
	value float64
}

// Set assigns v, which must be a float64 (or float32). Unlike Bool and
// Int, Float deliberately rejects strings here: application code is
// expected to pass a parsed numeric value, not raw text.
func (f *Float) Set(v Value) error {
	switch t := v.(type) {
	case float64:
		f.value = t
	case float32:
		f.value = float64(t)
	default:
		return fmt.Errorf("prefs: unsupported type for float preference: %T", v)
	}
	return nil
}

func (f *Float) setFromString(s string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("prefs: invalid float value %q", s)
	}
	f.value = n
	return nil
}

// Get returns the current value.
func (f *Float) Get() float64 { return f.value }

func (f *Float) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

// String is a string preference, optionally capped to a maximum length.
type String struct {
	value  string
	maxLen int
}

// Set assigns v, which must be a string.
func (s *String) Set(v Value) error {
	t, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: unsupported type for string preference: %T", v)
	}
	s.value = t
	s.crop()
	return nil
}

func (s *String) setFromString(v string) error { return s.Set(v) }

// SetMaxLen sets the maximum permitted length, cropping the current value
// if it now exceeds it. A length of zero removes the limit but does not
// restore a previously cropped value.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.value) > s.maxLen {
		s.value = s.value[:s.maxLen]
	}
}

func (s *String) String() string { return s.value }

// Generic wraps an arbitrary setter/getter pair for preferences that don't
// fit the Bool/Int/Float/String boxes, eg. a composite "width,height"
// value backed by two separate variables.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric constructs a Generic preference from a setter and getter.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (g *Generic) String() string {
	return fmt.Sprintf("%v", g.get())
}

func (g *Generic) setFromString(s string) error { return g.set(s) }
