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

package debug_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/debug"
	"github.com/dirkwhoffmann/go64/hardware/memory"
)

func TestBreakpoints(t *testing.T) {
	bp := debug.NewBreakpoints()
	bp.Add(0xc000, debug.HARD)
	bp.Add(0xc010, debug.SOFT)

	if hit, _ := bp.CheckBreakpoint(0xbfff); hit {
		t.Fatalf("unexpected hit at untagged address")
	}

	if hit, tag := bp.CheckBreakpoint(0xc000); !hit || tag == "" {
		t.Fatalf("expected hard breakpoint hit, got hit=%v tag=%q", hit, tag)
	}
	// HARD breakpoints are not consumed.
	if hit, _ := bp.CheckBreakpoint(0xc000); !hit {
		t.Fatalf("hard breakpoint should still be armed")
	}

	if hit, _ := bp.CheckBreakpoint(0xc010); !hit {
		t.Fatalf("expected soft breakpoint hit")
	}
	// SOFT breakpoints are consumed after firing once.
	if hit, _ := bp.CheckBreakpoint(0xc010); hit {
		t.Fatalf("soft breakpoint should have been removed after firing")
	}
}

func TestWatchpointsAnyValue(t *testing.T) {
	mem := memory.NewMemory()
	w := debug.NewWatchpoints()
	w.Add(0x1000, debug.AnyValue, 0)

	// First poll only records a baseline.
	if hits := w.Poll(mem); len(hits) != 0 {
		t.Fatalf("expected no hits on baseline poll, got %v", hits)
	}

	mem.RAM.Write(0x1000, 0x42)
	hits := w.Poll(mem)
	if len(hits) != 1 || hits[0].New != 0x42 {
		t.Fatalf("expected one hit with new value 0x42, got %v", hits)
	}

	// No further change -> no further hits.
	if hits := w.Poll(mem); len(hits) != 0 {
		t.Fatalf("expected no hits after no change, got %v", hits)
	}
}

func TestWatchpointsSpecificValue(t *testing.T) {
	mem := memory.NewMemory()
	w := debug.NewWatchpoints()
	w.Add(0x1000, debug.SpecificValue, 0xff)

	if hits := w.Poll(mem); len(hits) != 0 {
		t.Fatalf("expected no hits before target value is written, got %v", hits)
	}

	mem.RAM.Write(0x1000, 0xff)
	hits := w.Poll(mem)
	if len(hits) != 1 {
		t.Fatalf("expected a hit once the specific value is written, got %v", hits)
	}
}

func TestReadScreen(t *testing.T) {
	mem := memory.NewMemory()
	// "READY." in screen codes: R=0x12 E=0x05 A=0x01 D=0x04 Y=0x19 .=0x2e
	msg := []uint8{0x12, 0x05, 0x01, 0x04, 0x19, 0x2e}
	for i, code := range msg {
		mem.RAM.Write(debug.DefaultScreenBase+uint16(i), code)
	}
	// the rest of the row holds spaces (0x20), as after the KERNAL's clear
	// screen; zeroed RAM would read as '@'
	for i := len(msg); i < debug.ScreenWidth; i++ {
		mem.RAM.Write(debug.DefaultScreenBase+uint16(i), 0x20)
	}

	lines, err := debug.ReadScreen(mem, debug.DefaultScreenBase, debug.ScreenWidth, 1)
	if err != nil {
		t.Fatalf("ReadScreen: %v", err)
	}
	if lines[0] != "READY." {
		t.Fatalf("expected %q, got %q", "READY.", lines[0])
	}
	if !debug.ContainsLine(lines, "READY") {
		t.Fatalf("ContainsLine should find READY")
	}
}
