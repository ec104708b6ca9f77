// Package addresses contains canonical symbols for the VIC-II, CIA and SID
// register sets, keyed by their offset from the chip's register area origin.
// Used by the debugger and logger to render register accesses symbolically
// rather than as raw offsets.
package addresses
