package emulator

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mu0/cpu"
)

// Watch is a break predicate over machine state, written as a Starlark
// expression over 'pc', 'acc', 'halted' and 'mem(addr)'.
type Watch struct {
	Expr string
}

// evaluate runs the watch expression against a state snapshot.
func (w *Watch) evaluate(st cpu.State) (hit bool, err error) {
	mem := starlark.NewBuiltin("mem", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		if err := starlark.UnpackPositionalArgs("mem", args, kwargs, 1, &addr); err != nil {
			return nil, err
		}
		if addr < 0 || addr >= cpu.MemSize {
			return nil, fmt.Errorf("mem: address %#x outside memory", addr)
		}
		return starlark.MakeInt(int(st.Memory[addr])), nil
	})

	pred := starlark.StringDict{
		"pc":     starlark.MakeInt(int(st.Pc)),
		"acc":    starlark.MakeInt(int(st.Acc)),
		"halted": starlark.Bool(st.Halted),
		"mem":    mem,
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + w.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "watch", prog, pred)
	if err != nil {
		err = errors.Join(ErrWatch(w.Expr), err)
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrWatch(w.Expr)
		return
	}
	hit = bool(rc.Truth())

	return
}

// AddWatch registers a break predicate. The expression is evaluated once
// against the current state so a malformed one is rejected up front.
func (emu *Emulator) AddWatch(expr string) (err error) {
	w := &Watch{Expr: expr}

	_, err = w.evaluate(emu.Machine.State())
	if err != nil {
		return
	}

	emu.watches = append(emu.watches, w)

	return
}

// Broke evaluates the registered watches against the current machine state
// and returns the first one whose predicate holds, or nil.
func (emu *Emulator) Broke() (watch *Watch, err error) {
	st := emu.Machine.State()

	for _, w := range emu.watches {
		var hit bool
		hit, err = w.evaluate(st)
		if err != nil {
			return
		}
		if hit {
			watch = w
			return
		}
	}

	return
}
