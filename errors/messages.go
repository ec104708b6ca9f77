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

package errors

// error messages. every curated error in the core is built from one of
// these, so the full set of user-visible failure classes is enumerable
// in one place.
const (
	// file loading
	FileTypeMismatchMsg  = "file type mismatch: %v"
	UnsupportedCartMsg   = "cartridge error: unsupported cartridge (%v)"
	CorruptedSnapshotMsg = "snapshot error: %v"
	RomMissingMsg        = "rom missing: %v"
	IoErrorMsg           = "io error: %v"

	// cartridges
	CartridgeError     = "cartridge error: %v"
	CartridgeEjected   = "cartridge error: no cartridge attached"
	CartridgeNotMapped = "cartridge error: bank %d cannot be mapped to address %#04x"

	// memory
	MemoryBusError    = "memory error: %v"
	UnpeekableAddress = "memory error: cannot peek address (%#04x)"
	UnpokeableAddress = "memory error: cannot poke address (%#04x)"

	// cpu
	CpuError    = "cpu error: %v"
	CpuJammedMsg = "cpu error: jammed at %#04x (opcode %#02x)"

	// iec bus
	IECError = "iec error: %v"

	// 1541 drive
	DriveError = "drive error: %v"

	// scheduler / debugger
	BreakpointError = "breakpoint error: %v"
	WatchpointError = "watchpoint error: %v"

	// snapshot
	SnapshotError = "snapshot error: %v"

	// prefs
	Prefs         = "prefs: %v"
	PrefsNoFile   = "prefs: no file (%s)"
	PrefsNotValid = "prefs: not a valid prefs file (%s)"

	// cartridgeloader
	CartridgeLoader = "cartridge loading error: %v"
)
