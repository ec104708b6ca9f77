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

// Package cartridgeloader reads a C64 file image from disk (or from an
// embedded byte slice) so that it can be handed to the cartridge, drive1541
// or memory packages.
//
// # File Extensions
//
// The file extension decides which bus the image is destined for:
//
//	Cartridge (expansion port)	".CRT"
//	Disk (IEC serial bus)		".D64", ".D71", ".D81", ".G64"
//	Tape (datasette port)		".T64", ".TAP"
//	Bare program (load address + data)	".PRG", ".P00"
//
// File extensions are case insensitive.
//
// # Hashes
//
// Creating a loader with NewLoaderFromFilename() or NewLoaderFromData() also
// computes a SHA1 hash of the data once loaded, so that a caller can
// cross-check against a known-good value.
package cartridgeloader
