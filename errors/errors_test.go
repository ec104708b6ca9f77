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

package errors_test

import (
	"fmt"
	"testing"

	"github.com/dirkwhoffmann/go64/errors"
	"github.com/dirkwhoffmann/go64/test"
)

func TestDuplicateErrors(t *testing.T) {
	// cartridge.Attach wraps whatever the chip-mapper constructor returned
	// with the same CartridgeError head; the duplicate adjacent part must
	// collapse rather than stutter in the final message.
	e := errors.Errorf(errors.CartridgeError, "easyflash: invalid bank")
	test.Equate(t, e.Error(), "cartridge error: easyflash: invalid bank")

	f := errors.Errorf(errors.CartridgeError, e)
	test.Equate(t, f.Error(), "cartridge error: easyflash: invalid bank")
}

func TestIs(t *testing.T) {
	e := errors.Errorf(errors.DriveError, "unrecognised D64 image size")
	test.ExpectedSuccess(t, errors.Is(e, errors.DriveError))

	// Has() should fail because we haven't included SnapshotError anywhere
	// in the error
	test.ExpectedFailure(t, errors.Has(e, errors.SnapshotError))

	// wrapping a DriveError in a SnapshotError: Is() sees only the outer
	// head, while Has() finds both heads in the chain
	f := errors.Errorf(errors.SnapshotError, e)
	test.ExpectedFailure(t, errors.Is(f, errors.DriveError))
	test.ExpectedSuccess(t, errors.Is(f, errors.SnapshotError))
	test.ExpectedSuccess(t, errors.Has(f, errors.DriveError))
	test.ExpectedSuccess(t, errors.Has(f, errors.SnapshotError))

	// IsAny should return true for these errors also
	test.ExpectedSuccess(t, errors.IsAny(e))
	test.ExpectedSuccess(t, errors.IsAny(f))
}

func TestPlainErrors(t *testing.T) {
	// a bare os.Open failure, not yet wrapped through errors.Errorf
	e := fmt.Errorf("open roms/kernal.901227-03.bin: no such file or directory")
	test.ExpectedFailure(t, errors.IsAny(e))
	test.ExpectedFailure(t, errors.Has(e, errors.RomMissingMsg))
}
