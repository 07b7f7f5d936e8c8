package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
)

// lineKind classifies one source line.
type lineKind int

const (
	lineBlank       = lineKind(0) // blank or comment-only
	lineData        = lineKind(1) // INI directive
	lineInstruction = lineKind(2)
)

// classified is the decoded form of a single source line.
type classified struct {
	kind  lineKind
	addr  MemAddr // lineData target cell
	value Value   // lineData cell value
	instr Instruction
}

// Assembler translates MU0 source text into a Program and an initialized
// Memory image.
//
// Instruction positions are assigned sequentially from 0, counting only
// instruction lines; blank lines, comments and INI directives never occupy
// an instruction slot. INI directives write to the memory image immediately,
// last write wins. Any malformed line aborts the whole assembly.
type Assembler struct {
	Verbose bool // If set, verbosely logs each source line.

	instrs []Instruction
	memory Memory
}

// classify decodes one line of source text. It is a pure function of the
// line; no state is carried between lines.
func (asm *Assembler) classify(text string) (cl classified, err error) {
	body, comment, _ := strings.Cut(text, ";")
	body = strings.TrimSpace(body)
	comment = strings.TrimSpace(comment)

	words := strings.Fields(body)
	if len(words) == 0 {
		return
	}

	// INI ADDR VALUE
	if words[0] == "INI" {
		if len(words) < 3 {
			err = ErrOperandMissing
			return
		}
		if len(words) > 3 {
			err = ErrOperandExtra
			return
		}
		cl.kind = lineData
		cl.addr, err = ParseAddr(words[1])
		if err != nil {
			return
		}
		cl.value, err = ParseValue(words[2])
		return
	}

	op, ok := opcodeMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	cl.kind = lineInstruction
	cl.instr = Instruction{Op: op, Text: body, Comment: comment}

	if !op.HasOperand() {
		if len(words) > 1 {
			err = ErrOperandExtra
		}
		return
	}

	if len(words) < 2 {
		err = ErrOperandMissing
		return
	}
	if len(words) > 2 {
		err = ErrOperandExtra
		return
	}

	if op.Jumps() {
		cl.instr.Target, err = ParseIndex(words[1])
	} else {
		cl.instr.Addr, err = ParseAddr(words[1])
	}

	return
}

// Parse assembles an input stream. On success it returns the frozen Program
// and the memory image populated by the INI directives; on any error no
// partial program is produced.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, mem *Memory, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.instrs = asm.instrs[:0]
	asm.memory = Memory{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v", lineno, line)
		}

		var cl classified
		cl, err = asm.classify(line)
		if err != nil {
			return
		}

		switch cl.kind {
		case lineBlank:
			// no instruction slot, no memory write
		case lineData:
			asm.memory.Store(cl.addr, cl.value)
		case lineInstruction:
			cl.instr.LineNo = lineno
			asm.instrs = append(asm.instrs, cl.instr)
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		instrs: slices.Clone(asm.instrs),
	}
	mem = &Memory{}
	*mem = asm.memory

	return
}
