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

package cartridgeloader

import (
	"path/filepath"
	"slices"
	"strings"
)

// use information in the Loader instance to decide how the image should be
// referred to by code outside of the package
func decideOnName(ld Loader) string {
	if ld.embedded {
		return ld.Filename
	}

	if len(strings.TrimSpace(ld.Filename)) == 0 {
		return ""
	}

	return NameFromFilename(ld.Filename)
}

// NameFromFilename converts a filename to a shortened version suitable for
// display.
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := strings.ToUpper(filepath.Ext(filename))
	if slices.Contains(FileExtensions[:], ext) {
		name = strings.TrimSuffix(name, filepath.Ext(filename))
	}
	return name
}

// Kind classifies a filename by the bus it should be attached to.
type Kind int

const (
	KindUnknown Kind = iota
	KindCartridge
	KindDisk
	KindTape
	KindProgram
)

// KindFromFilename inspects a filename's extension to decide which subsystem
// should take ownership of the loaded data.
func KindFromFilename(filename string) Kind {
	ext := strings.ToUpper(filepath.Ext(filename))
	switch {
	case slices.Contains(cartridgeExtensions[:], ext):
		return KindCartridge
	case slices.Contains(diskExtensions[:], ext):
		return KindDisk
	case slices.Contains(tapeExtensions[:], ext):
		return KindTape
	case slices.Contains(programExtensions[:], ext):
		return KindProgram
	default:
		return KindUnknown
	}
}
