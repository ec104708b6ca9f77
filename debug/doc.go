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

// Package debug implements the machine's debugger hooks: breakpoints on
// a fetched PC and watchpoints on a memory
// address, plus a PETSCII-aware screen-text reader used by end-to-end test
// scenarios (E1, E3) to assert on what the machine has actually printed.
package debug
