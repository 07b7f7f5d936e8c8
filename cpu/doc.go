// Package cpu implements the assembler and processor for the MU0 machine.
//
// MU0 is a 12-bit-address accumulator processor: a program counter, a single
// accumulator, 4096 memory cells, and eight instructions plus the INI
// directive for preloading memory. The assembler translates textual source
// into a resolved instruction list and an initialized memory image; the
// machine executes the result either to completion or one step at a time,
// exposing a snapshot of its state after every step.
//
// Jump targets are instruction indexes, not memory addresses: the program
// counter ranges over the instruction list, counting instruction lines only,
// while LOAD/STORE/ADD/SUB operands address the memory cells. The two index
// spaces are kept apart by the InstrIndex and MemAddr types.
package cpu
