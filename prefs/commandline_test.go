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
package prefs_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/prefs"
	"github.com/dirkwhoffmann/go64/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("warp::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "warp::true")

	// single value but with additional space
	prefs.PushCommandLineStack("   warp:: true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "warp::true")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("warp::true; region::NTSC")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "region::NTSC; warp::true")

	// check invalid prefs string
	prefs.PushCommandLineStack("warp_true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partically) invalid prefs string
	prefs.PushCommandLineStack("warp_true;region::NTSC")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "region::NTSC")

	// get prefs value that doesn't exist after pushing a parially invalid prefs string
	prefs.PushCommandLineStack("warp::true;region_NTSC")
	ok, _ := prefs.GetCommandLinePref("region")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "warp::true")
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("warp::true")

	// add another command line group
	prefs.PushCommandLineStack("region::NTSC")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "region::NTSC")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "warp::true")
}
