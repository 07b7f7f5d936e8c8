package cpu

import (
	"log"
)

// State is a point-in-time copy of the machine registers and memory.
// Snapshots never alias live machine state; a caller may hold one across
// subsequent steps.
type State struct {
	Pc     InstrIndex // Index of the next instruction to execute.
	Acc    Value      // Accumulator.
	Halted bool       // Terminal; no further steps are possible.
	Fault  error      // Non-nil when halted by an invalid program counter.
	Memory Memory     // Full copy of the memory cells.
}

// Machine owns the memory, the program counter, the accumulator, and the
// resolved instruction list, and implements the fetch-decode-execute cycle.
// One Machine instance serves one execution; create a new one to re-run.
type Machine struct {
	Verbose bool // If set, traces each executed instruction.

	prog   *Program
	mem    Memory
	pc     InstrIndex
	acc    Value
	halted bool
	fault  error
}

// NewMachine creates a machine ready to execute prog with the given initial
// memory image. A nil image leaves the memory zeroed.
func NewMachine(prog *Program, mem *Memory) (m *Machine) {
	m = &Machine{
		prog: prog,
	}
	if mem != nil {
		m.mem = *mem
	}

	return
}

// Halted returns true once the machine has reached its terminal state.
func (m *Machine) Halted() bool {
	return m.halted
}

// Fault returns the reason the machine halted, or nil for a STOP halt or a
// machine still running.
func (m *Machine) Fault() error {
	return m.fault
}

// State returns a read-only snapshot of the machine, including the full
// memory contents.
func (m *Machine) State() State {
	return State{
		Pc:     m.pc,
		Acc:    m.acc,
		Halted: m.halted,
		Fault:  m.fault,
		Memory: m.mem,
	}
}

// Step performs exactly one fetch-decode-execute transition and returns the
// resulting state snapshot. Stepping an already halted machine fails with
// ErrMachineHalted.
//
// A program counter outside the instruction list halts the machine with the
// fault recorded in the snapshot. That is a normal termination path for a
// program whose last instruction is not STOP, or that jumps past its own
// end; it is never an out-of-bounds access.
func (m *Machine) Step() (st State, err error) {
	if m.halted {
		st = m.State()
		err = ErrMachineHalted
		return
	}

	in, fault := m.prog.At(m.pc)
	if fault != nil {
		m.halted = true
		m.fault = fault
		st = m.State()
		return
	}

	if m.Verbose {
		log.Printf("%03x: %v", uint16(m.pc), in)
	}

	switch in.Op {
	case LOAD:
		m.acc = m.mem.Load(in.Addr)
		m.pc += 1
	case STORE:
		m.mem.Store(in.Addr, m.acc)
		m.pc += 1
	case ADD:
		m.acc = Wrap12(int(m.acc) + int(m.mem.Load(in.Addr)))
		m.pc += 1
	case SUB:
		m.acc = Wrap12(int(m.acc) - int(m.mem.Load(in.Addr)))
		m.pc += 1
	case JUMP:
		m.pc = in.Target
	case JGE:
		if m.acc >= 0 {
			m.pc = in.Target
		} else {
			m.pc += 1
		}
	case JNE:
		if m.acc != 0 {
			m.pc = in.Target
		} else {
			m.pc += 1
		}
	case STOP:
		// pc is left unchanged
		m.halted = true
	}

	st = m.State()

	return
}

// Run steps until the machine halts and returns the final state. There is
// no built-in bound: a program that never reaches STOP or an out-of-range
// jump does not return. Callers wanting bounded execution must impose an
// external step limit.
func (m *Machine) Run() (st State, err error) {
	for !m.halted {
		st, err = m.Step()
		if err != nil {
			return
		}
	}
	st = m.State()

	return
}
