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

// Package logger provides a central, ring-buffered log for the emulation
// core. Components log through here rather than fmt.Println so that a
// debugger or CLI host can Tail() recent activity on demand.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission is implemented by anything that can gate whether a log entry
// is recorded. The environment package satisfies this so that secondary
// emulation instances (eg. rewind snapshots being probed) don't pollute the
// log of the main emulation.
type Permission interface {
	AllowLogging() bool
}

// Allow is a Permission that always allows logging. Useful for tests and for
// components not associated with an environment.
const Allow = alwaysAllow(true)

type alwaysAllow bool

func (a alwaysAllow) AllowLogging() bool {
	return bool(a)
}

type entry struct {
	tag    string
	detail string
}

// Logger is a bounded ring of log entries.
type Logger struct {
	crit    sync.Mutex
	entries []entry
	max     int
	ct      int
}

// NewLogger creates a Logger with the given maximum number of entries.
// Once full, the oldest entry is discarded on every new write.
func NewLogger(max int) *Logger {
	if max < 1 {
		max = 1
	}
	return &Logger{
		entries: make([]entry, 0, max),
		max:     max,
	}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.ct = 0
}

func detailString(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Log records a new entry if perm allows logging.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf is the formatted equivalent of Log.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) >= l.max {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, entry{tag: tag, detail: detail})
}

// Write writes every entry of the log to w; the entries stay in the log.
func (l *Logger) Write(w io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	var s strings.Builder
	for _, e := range l.entries {
		s.WriteString(e.tag)
		s.WriteString(": ")
		s.WriteString(e.detail)
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}

// Tail writes up to n of the most recent entries to w.
func (l *Logger) Tail(w io.Writer, n int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	start := len(l.entries) - n

	var s strings.Builder
	for _, e := range l.entries[start:] {
		s.WriteString(e.tag)
		s.WriteString(": ")
		s.WriteString(e.detail)
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}

// central is the package-level log used by the whole process.
var central = NewLogger(1000)

// Log records a new entry in the central log.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf is the formatted equivalent of Log using the central log.
func Logf(perm Permission, tag string, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Write writes every entry of the central log to w; the entries stay in
// the log.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail writes up to n of the most recent central log entries to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central log. Used mainly by tests.
func Clear() {
	central.Clear()
}
