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

// Package snapshot implements the machine's save-state format: a 4-byte
// magic, a 4-byte version, and a linear table of named items, one per
// component that opts in by implementing Stateful. It is deliberately
// generic over *what* gets snapshotted; the scheduler package owns the
// list of named components and their reset-behaviour tags.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/dirkwhoffmann/go64/errors"
)

var magic = [4]byte{'G', 'O', '6', '4'}

// version is bumped whenever the set or shape of snapshotted component
// state changes incompatibly.
const version uint32 = 1

// Flags tags a SnapshotItem with how a reset treats it, mirroring the
// KEEP_ON_RESET/CLEAR_ON_RESET distinction. The tag is recorded with the
// item; this package does not act on it, and neither does the scheduler's
// Reset.
type Flags int

const (
	KeepOnReset Flags = 1 << iota
	ClearOnReset
)

// SnapshotItem is one named field of the linear snapshot layout. Pointer
// holds the component's boxed SaveState() value; Size is its encoded
// length, recorded so a host can display per-component snapshot cost.
type SnapshotItem struct {
	Pointer interface{}
	Size    int
	Flags   Flags
}

// Stateful is implemented by every component the scheduler snapshots: CPU
// cores, CIAs, the VIC, the SID, the IEC bus, memory, and the cartridge.
type Stateful interface {
	SaveState() interface{}
	RestoreState(interface{}) bool
}

// Collect builds a named item table from a set of components. flags
// supplies the reset tag for any name present in it; names absent from
// flags default to KeepOnReset.
func Collect(components map[string]Stateful, flags map[string]Flags) map[string]SnapshotItem {
	items := make(map[string]SnapshotItem, len(components))
	for name, c := range components {
		state := c.SaveState()
		f := flags[name]
		if f == 0 {
			f = KeepOnReset
		}
		size := 0
		if state != nil {
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(&state); err == nil {
				size = buf.Len()
			}
		}
		items[name] = SnapshotItem{Pointer: state, Size: size, Flags: f}
	}
	return items
}

// Apply restores every named component present in both components and
// items. A component with no corresponding item (e.g. a drive not yet
// configured when the snapshot was taken) is left untouched.
func Apply(components map[string]Stateful, items map[string]SnapshotItem) error {
	for name, c := range components {
		item, ok := items[name]
		if !ok {
			continue
		}
		if !c.RestoreState(item.Pointer) {
			return errors.Errorf(errors.CorruptedSnapshotMsg, name)
		}
	}
	return nil
}

// Write encodes items in the versioned on-disk format: magic, version,
// payload length, then a gob-encoded item table.
func Write(w io.Writer, items map[string]SnapshotItem) error {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(items); err != nil {
		return errors.Errorf(errors.SnapshotError, err)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return errors.Errorf(errors.SnapshotError, err)
	}
	if err := binary.Write(w, binary.BigEndian, version); err != nil {
		return errors.Errorf(errors.SnapshotError, err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(payload.Len())); err != nil {
		return errors.Errorf(errors.SnapshotError, err)
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return errors.Errorf(errors.SnapshotError, err)
	}
	return nil
}

// Read decodes a snapshot written by Write into its item table.
func Read(r io.Reader) (map[string]SnapshotItem, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, err)
	}
	if got != magic {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, "bad magic")
	}

	var ver, size uint32
	if err := binary.Read(r, binary.BigEndian, &ver); err != nil {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, err)
	}
	if ver != version {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, fmt.Sprintf("unsupported version %d", ver))
	}
	if err := binary.Read(r, binary.BigEndian, &size); err != nil {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, err)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, err)
	}

	items := make(map[string]SnapshotItem)
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&items); err != nil {
		return nil, errors.Errorf(errors.CorruptedSnapshotMsg, err)
	}
	return items, nil
}
