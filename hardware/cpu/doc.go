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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64
// (and, pointed at a different bus, the 6502 in the 1541 drive). Like all
// 8-bit processors of the era, the 6510 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then
// used to move execution of the program forward.
//
// Instances of the CPU type require an instance of a bus.CPUBus
// implementation. The CPUBus interface defines the memory operations
// required by the CPU. See the bus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction()
// function. Its sole argument is a callback function to be called at every
// cycle boundary of the instruction.
//
// Let's assume mem is an instance of the CPUBus interface loaded with 6510
// instructions.
//
//	mc := cpu.NewCPU(nil, mem)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		mc.ExecuteInstruction(func() error {
//			numCycles ++
//		})
//		numInstructions ++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The machine scheduler uses this to tick the VIC-II, the two
// CIAs, the expansion port, the IEC bus and the drive once for every CPU
// bus cycle, which is what keeps every chip in lock step with the master
// clock.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information. Very useful for debuggers.
//
// The NoFlowControl flag prevents the CPU from honouring "flow control"
// functions (ie. JMP, BNE, BEQ, etc.). See instructions package for
// classifications.
package cpu
