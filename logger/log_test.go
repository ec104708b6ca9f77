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

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/dirkwhoffmann/go64/logger"
	"github.com/dirkwhoffmann/go64/test"
)

// test a Logger's Write() and Tail() functions
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "vic", "badline at raster 48")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "vic: badline at raster 48\n")

	// clear the builder before continuing, makes comparisons easier to
	// manage
	w.Reset()

	log.Log(logger.Allow, "drv8", "motor on")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "vic: badline at raster 48\ndrv8: motor on\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "vic: badline at raster 48\ndrv8: motor on\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "vic: badline at raster 48\ndrv8: motor on\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "drv8: motor on\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// test permissions by randomising whether logging is allowed or not.
// there's no need for the randomisation but it exercises both branches
// without enumerating them by hand
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "cia", "timer A underflow")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "cia: timer A underflow\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error()
// result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("rom missing: kernal")

	log.Log(logger.Allow, "mem", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mem: rom missing: kernal\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "mem", "during power-on: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mem: during power-on: rom missing: kernal\n")
}

// the Log() function explicitly handles Stringer types
type trackPosition int

func (p trackPosition) String() string {
	return "head at track 18"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "drv8", trackPosition(18))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "drv8: head at track 18\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "scheduler", 985249)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "scheduler: 985249\n")
}
