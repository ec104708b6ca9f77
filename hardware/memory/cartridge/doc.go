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

// Package cartridge implements the C64 expansion port: a Cartridge
// container wrapping a cartMapper variant loaded from a CRT file. Around
// 25 bank-switching schemes are covered: most through the parametrised
// generic mapper (one scheme entry per protocol), the rest - the freezer
// family, EasyFlash's dual flash chips, Expert, Zaxxon and the pure-RAM
// boards - as dedicated mapper implementations.
package cartridge
