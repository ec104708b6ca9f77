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

package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/dirkwhoffmann/go64/snapshot"
	"github.com/dirkwhoffmann/go64/test"
)

type counter struct {
	n int
}

func (c *counter) SaveState() interface{} { return c.n }
func (c *counter) RestoreState(v interface{}) bool {
	n, ok := v.(int)
	if !ok {
		return false
	}
	c.n = n
	return true
}

func TestRoundTripIsIdempotent(t *testing.T) {
	src := map[string]snapshot.Stateful{"counter": &counter{n: 42}}
	items := snapshot.Collect(src, nil)

	var buf bytes.Buffer
	test.ExpectSuccess(t, snapshot.Write(&buf, items))

	readBack, err := snapshot.Read(&buf)
	test.ExpectSuccess(t, err)

	dst := map[string]snapshot.Stateful{"counter": &counter{n: 0}}
	test.ExpectSuccess(t, snapshot.Apply(dst, readBack))

	test.Equate(t, dst["counter"].(*counter).n, 42)
}

func TestBadMagicIsRejected(t *testing.T) {
	_, err := snapshot.Read(bytes.NewReader([]byte("not a snapshot at all")))
	test.ExpectFailure(t, err)
}

func TestMissingComponentIsLeftUntouched(t *testing.T) {
	src := map[string]snapshot.Stateful{"counter": &counter{n: 7}}
	items := snapshot.Collect(src, nil)

	dst := map[string]snapshot.Stateful{
		"counter": &counter{n: 0},
		"extra":   &counter{n: 99},
	}
	test.ExpectSuccess(t, snapshot.Apply(dst, items))
	test.Equate(t, dst["extra"].(*counter).n, 99)
}
