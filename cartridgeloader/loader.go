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

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirkwhoffmann/go64/logger"
)

// NoFilename is returned by NewLoaderFromFilename when given an empty or
// whitespace-only path.
var NoFilename = fmt.Errorf("no filename")

// Loader abstracts all the ways a C64 file image (cartridge, disk, tape or
// bare program) can be loaded into the emulation.
type Loader struct {
	io.ReadSeeker

	// name to use for the image represented by Loader, for display purposes
	Name string

	// filename of the image being loaded, or the name given to
	// NewLoaderFromData for embedded data
	Filename string

	// which bus the image should be attached to. NewLoaderFromFilename
	// decides it from the extension; KindUnknown means the extension was
	// not recognised.
	Kind Kind

	// expected hash of the loaded data. empty string indicates the hash is
	// unknown and need not be validated. after Open() the field holds the
	// hash of the loaded data.
	HashSHA1 string

	// Data holds the raw bytes of the image once Open() has been called,
	// unless the loader was created with NewLoaderFromData().
	//
	// the pointer-to-a-slice construct allows the loader to be passed by
	// value but still mutate the underlying data when opened.
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData()
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a filename. The image's bus is inferred
// from the file extension; see KindFromFilename.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	filename, err := filepath.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}

	ld := Loader{
		Filename: filename,
		Kind:     KindFromFilename(filename),
	}

	data := make([]byte, 0)
	ld.Data = &data
	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when loading data from a byte slice, eg. embedded ROM images loaded
// with go:embed.
func NewLoaderFromData(name string, data []byte, kind Kind) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Filename: name,
		Kind:     kind,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
	}
	ld.Name = decideOnName(ld)

	return ld, nil
}

// Implements the io.Reader interface.
func (ld Loader) Read(p []byte) (int, error) {
	return ld.data.Read(p)
}

// Implements the io.Seeker interface.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

// Open reads the image data from disk into the Data field, verifying
// HashSHA1 if it was already set.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	*ld.Data, err = io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	ld.data = bytes.NewBuffer(*ld.Data)

	hash := fmt.Sprintf("%x", sha1.Sum(*ld.Data))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("cartridgeloader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	logger.Logf(logger.Allow, "loader", "loaded %s (%d bytes)", ld.Filename, len(*ld.Data))

	return nil
}

// Close is a no-op for non-streaming loaders. Kept so Loader satisfies
// io.Closer for callers that defer it unconditionally.
func (ld Loader) Close() error {
	return nil
}
