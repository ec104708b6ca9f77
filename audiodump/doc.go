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

// Package audiodump drains the SID's lock-free sample ring buffer (the
// single-producer/single-consumer audio port) to a WAV file through
// go-audio/audio and go-audio/wav. It is an
// optional sink: a host with a live audio device never needs it, but a
// headless CLI run or a regression test that wants to compare rendered
// audio byte-for-byte across changes does.
package audiodump
