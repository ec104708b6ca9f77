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

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package, grouped by the subsystem that ultimately consumes
// them.
var FileExtensions = [...]string{
	".CRT",
	".D64", ".D71", ".D81", ".G64",
	".T64", ".TAP",
	".PRG", ".P00",
}

// cartridgeExtensions are mapped through the expansion port.
var cartridgeExtensions = [...]string{".CRT"}

// diskExtensions are mounted on the serial bus as a 1541 (or 1571/1581).
var diskExtensions = [...]string{".D64", ".D71", ".D81", ".G64"}

// tapeExtensions are mounted on the datasette port.
var tapeExtensions = [...]string{".T64", ".TAP"}

// programExtensions are bare PRG images, loaded directly into RAM at their
// two-byte load address rather than attached to a bus.
var programExtensions = [...]string{".PRG", ".P00"}
