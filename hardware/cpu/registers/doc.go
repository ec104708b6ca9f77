// Package registers implements the register set of the 6510 (and of the
// 6502 in the 1541, which is identical at this level): the program counter,
// the stack pointer, the status register and the 8 bit accumulator type
// used for A, X and Y.
//
// The 8 bit registers, implemented as the Register type, define all the
// basic operations available to the 6510: load, add, subtract, logical
// operations and shifts/rotates. In addition the type implements the tests
// required for status updates: is the value zero, is the number negative,
// is the overflow bit set.
//
// The program counter by comparison is 16 bits wide and defines only the
// load and add operations. The stack pointer wraps a Register and adds the
// page-one address interpretation the 6510 hardwires.
//
// The status register is implemented as a series of flags, set directly by
// the CPU's operator logic. For instance:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
