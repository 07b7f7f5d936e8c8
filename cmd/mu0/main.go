package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/mu0/emulator"
)

func main() {
	var step bool
	var verbose bool
	var limit int
	var watch string

	flag.BoolVar(&step, "s", false, "Execute one instruction at a time")
	flag.IntVar(&limit, "n", 0, "Abort after N instructions (0 = no limit)")
	flag.StringVar(&watch, "b", "", "Break when the expression over pc/acc/mem(addr) is true")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: mu0 [-s] [-n limit] [-b expr] source", os.Args[0])
	}
	source := flag.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	emu := emulator.New()
	emu.Verbose = verbose
	emu.StepLimit = limit

	if err := emu.Load(inf); err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if len(watch) != 0 {
		if err := emu.AddWatch(watch); err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	}

	st := emu.Machine.State()
	fmt.Println("Memory dump before program execution:")
	fmt.Print(emulator.DumpMemory(&st.Memory))

	if step || len(watch) != 0 {
		err = stepped(emu, step)
	} else {
		_, err = emu.Run()
	}

	switch {
	case errors.Is(err, emulator.ErrStepLimit):
		fmt.Printf("Aborted after %d instructions.\n", emu.Steps())
	case err != nil:
		log.Fatal(err)
	}

	st = emu.Machine.State()
	switch {
	case st.Fault != nil:
		fmt.Printf("Reached end of instructions: %v.\n", st.Fault)
	case st.Halted:
		fmt.Printf("Reached STOP instruction at line %d.\n", emu.LineNo())
	}

	fmt.Println("Memory dump after program end:")
	fmt.Print(emulator.DumpMemory(&st.Memory))
}

// stepped executes one instruction at a time, reporting machine state after
// each. In interactive mode it waits for a key between instructions; with
// break expressions registered it pauses only when one fires.
func stepped(emu *emulator.Emulator, interactive bool) (err error) {
	if interactive {
		if terr := enterRawTerm(); terr == nil {
			defer exitRawTerm()
		}
	}

	for {
		lineno := emu.LineNo()

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}

		st := emu.Machine.State()

		if interactive {
			fmt.Printf("\nExecuted line %d\n", lineno)
			fmt.Print(emulator.DumpState(st))
			fmt.Println("Memory dump after instruction execution:")
			fmt.Print(emulator.DumpMemory(&st.Memory))
		}

		watch, werr := emu.Broke()
		if werr != nil {
			err = werr
			return
		}
		if watch != nil {
			fmt.Printf("\nBreak '%v' at line %d\n", watch.Expr, emu.LineNo())
			fmt.Print(emulator.DumpState(st))
			if !interactive {
				return
			}
		}

		if interactive {
			fmt.Print("Press any key for next instruction")
			waitKey()
			fmt.Println()
		}
	}
}
