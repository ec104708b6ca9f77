package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleGoroutine panics if called from more than one goroutine over its
// lifetime. The SID ring buffer and the VIC-II frame swap are both
// single-producer/single-consumer by construction;
// embedding one of these in the producer's and consumer's call paths turns a
// violation of that contract into an immediate panic instead of a data race
// that only shows up as corrupted audio or a torn frame.
type SingleGoroutine struct {
	id uint64
}

// Check records the calling goroutine on first use and panics if a later
// call comes from a different one.
func (s *SingleGoroutine) Check() {
	g := GetGoRoutineID()
	if s.id == 0 {
		s.id = g
		return
	}
	if s.id != g {
		panic(fmt.Sprintf("assert: called from goroutine %d, expected %d", g, s.id))
	}
}
