package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAssembler(f *testing.F) {
	f.Add("LOAD 0x10\nADD 0x11\nSTORE 0x12\nSTOP\n")
	f.Add("INI 0x10 0xfa3\nJGE 0x0\nJNE 0x1\n")
	f.Add("; comment\n\nJUMP 0xfff\n")
	f.Add("INI 0x10\nSTOP extra\nNOP\n")
	f.Add("LOAD 0x1000\nINI 0x10 0x1000\nLOAD 0xqq\n")
	f.Add(strings.Join(divisionProgram, "\n"))

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, mem, err := asm.Parse(strings.NewReader(source))
		if err != nil {
			// Every rejection carries a line diagnostic; nothing partial
			// comes back.
			var se *ErrSyntax
			assert.True(errors.As(err, &se))
			assert.GreaterOrEqual(se.LineNo, 1)
			assert.Nil(prog)
			assert.Nil(mem)
			return
		}

		// Whatever assembles must execute without panicking; bound the run
		// since arbitrary programs may loop forever.
		m := NewMachine(prog, mem)
		for range 4096 {
			_, serr := m.Step()
			if serr != nil {
				assert.ErrorIs(serr, ErrMachineHalted)
				return
			}
			if m.Halted() {
				break
			}
		}
	})
}
