// Package emulator couples the MU0 assembler and machine for front-end
// callers: load a source stream, then run to completion or tick one
// instruction at a time while inspecting state between ticks.
package emulator

import (
	"io"

	"github.com/ezrec/mu0/cpu"
)

// Emulator holds one loaded program and the machine executing it.
type Emulator struct {
	Verbose   bool // If set, enables verbose logging.
	StepLimit int  // Abort execution after this many steps. 0 is unbounded.

	Program *cpu.Program // Currently loaded program listing.
	Machine *cpu.Machine // Machine executing the program.

	steps   int
	watches []*Watch
}

// New creates an empty emulator.
func New() (emu *Emulator) {
	emu = &Emulator{}

	return
}

// Load assembles source text and readies a fresh machine for it. Watches
// and the step count do not survive a reload.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}

	prog, mem, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Machine = cpu.NewMachine(prog, mem)
	emu.Machine.Verbose = emu.Verbose
	emu.steps = 0
	emu.watches = nil

	return
}

// Steps returns the number of instructions executed since the last Load.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// LineNo reports the source line of the instruction the machine will
// execute next, or 0 when the pc is outside the program.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil || emu.Machine == nil {
		return 0
	}

	return emu.Program.LineNo(emu.Machine.State().Pc)
}

// Tick executes a single instruction. done reports that the machine has
// halted, by STOP or by the program counter leaving the program; the
// distinction is held in the machine state's Fault.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.StepLimit > 0 && emu.steps >= emu.StepLimit {
		err = ErrStepLimit
		return
	}

	st, err := emu.Machine.Step()
	if err != nil {
		return
	}
	emu.steps += 1
	done = st.Halted

	return
}

// Run ticks until the machine halts, or until the configured step limit is
// reached. The final machine state is returned either way.
func (emu *Emulator) Run() (st cpu.State, err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}
	st = emu.Machine.State()

	return
}
