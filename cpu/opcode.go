package cpu

import (
	"fmt"
)

// Opcode is one of the eight MU0 instructions.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	LOAD  = Opcode(0) // LOAD
	STORE = Opcode(1) // STORE
	ADD   = Opcode(2) // ADD
	SUB   = Opcode(3) // SUB
	JUMP  = Opcode(4) // JUMP
	JGE   = Opcode(5) // JGE
	JNE   = Opcode(6) // JNE
	STOP  = Opcode(7) // STOP
)

// opcodeMap maps source mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"LOAD":  LOAD,
	"STORE": STORE,
	"ADD":   ADD,
	"SUB":   SUB,
	"JUMP":  JUMP,
	"JGE":   JGE,
	"JNE":   JNE,
	"STOP":  STOP,
}

// HasOperand returns true if the opcode takes an operand.
func (op Opcode) HasOperand() bool {
	return op != STOP
}

// Jumps returns true if the operand addresses the instruction index space
// rather than the memory address space.
func (op Opcode) Jumps() bool {
	return op == JUMP || op == JGE || op == JNE
}

// Instruction is a single decoded instruction with its source location.
// Addr is set for the memory-operand opcodes, Target for the jump opcodes.
type Instruction struct {
	Op      Opcode
	Addr    MemAddr
	Target  InstrIndex
	LineNo  int    // Source line number, for diagnostics.
	Text    string // Statement text, comment stripped.
	Comment string // Trailing comment text, if any.
}

// String returns the assembly language representation of the instruction.
func (in Instruction) String() (out string) {
	switch {
	case !in.Op.HasOperand():
		out = in.Op.String()
	case in.Op.Jumps():
		out = fmt.Sprintf("%v 0x%03x", in.Op, uint16(in.Target))
	default:
		out = fmt.Sprintf("%v 0x%03x", in.Op, uint16(in.Addr))
	}

	return
}
