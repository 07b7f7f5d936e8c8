package cpu

import (
	"iter"
)

// Program is the assembled, immutable instruction list, addressed by
// InstrIndex. Instruction words are never written into Memory; this list is
// the sole instruction store.
type Program struct {
	instrs []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instrs)
}

// At fetches the instruction at index, or *ErrPcRange if index is outside
// the program.
func (prog *Program) At(index InstrIndex) (in Instruction, err error) {
	if int(index) >= len(prog.instrs) {
		err = &ErrPcRange{Pc: index, Len: len(prog.instrs)}
		return
	}
	in = prog.instrs[index]

	return
}

// LineNo returns the source line number of the instruction at index, or 0
// if index is outside the program.
func (prog *Program) LineNo(index InstrIndex) int {
	if int(index) >= len(prog.instrs) {
		return 0
	}

	return prog.instrs[index].LineNo
}

// Instructions yields the instructions in index order.
func (prog *Program) Instructions() iter.Seq2[InstrIndex, Instruction] {
	return func(yield func(index InstrIndex, in Instruction) bool) {
		for n, in := range prog.instrs {
			if !yield(InstrIndex(n), in) {
				return
			}
		}
	}
}
