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
//
// Package bus is used to define access patterns for different areas of the
// emulation to the machine's memory. For example, the register chips (the
// VIC-II, the CIAs and the SID) access memory differently to the CPU. By
// restricting a chip to the ChipBus interface, a chip can never reach
// outside its own register window.
//
// The DebuggerBus is for the exclusive use of debuggers and exposes a Peek() and
// Poke() function.
package bus
