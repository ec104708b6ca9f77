// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction
// encountered during a program execution on the CPU. The CPU exposes the
// Result of the current or most recent instruction as its LastResult field;
// its executed-instruction ring keeps only each Result's address and
// operator, as text, for post-mortem inspection.
//
// The Result.IsValid() function can be used to check whether results are
// consistent with the instruction definition. The CPU package doesn't call
// this function because it would introduce unwanted performance penalties,
// but it's probably okay to use in a debugging context.
package execution
