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

// Package paths resolves filenames used for persistent, per-user emulator
// resources - preferences, snapshots, cartridge RAM saves - to a path
// rooted under the ".go64" resource directory.
package paths

import "path/filepath"

// resourceDir is the directory all resource paths are rooted under. It is
// a relative path, resolved against the process's current directory,
// matching how the emulator is normally run from a user's own folder.
const resourceDir = ".go64"

// ResourcePath joins subPath and filename onto the resource directory,
// creating nothing and performing no filesystem access of its own; the
// caller is responsible for creating the directory before use.
func ResourcePath(subPath string, filename string) (string, error) {
	path := resourceDir
	if subPath != "" {
		path = filepath.Join(path, subPath)
	}
	if filename != "" {
		path = filepath.Join(path, filename)
	}
	return path, nil
}
