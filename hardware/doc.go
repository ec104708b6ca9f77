// Package hardware is the base package for the C64 emulation core. It and
// its sub-packages contain everything required for a headless emulation.
//
// The scheduler package owns the root of the emulation and holds external
// references to every sub-system (CPU, memory, VIC-II, CIAs, cartridge,
// IEC bus, 1541 drive). From here the emulation can either be run
// continuously (with an optional callback to check for continuation) or
// stepped cycle by cycle.
package hardware
