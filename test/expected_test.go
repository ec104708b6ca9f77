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
package test_test

import (
	"testing"

	"github.com/dirkwhoffmann/go64/errors"
	"github.com/dirkwhoffmann/go64/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.Errorf(errors.DriveError, "unrecognised D64 image size"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	// PAL's 312 raster lines of 63 cycles each make 19656 cycles per frame
	test.ExpectEquality(t, 19656, 312*63)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 19656, 312*63-1)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	// PAL field rate vs. the commonly quoted approximation
	test.ExpectApproximate(t, 50.125, 50.0, 0.2)
}
