package cpu

import (
	"errors"

	"github.com/ezrec/mu0/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrMachineHalted = errors.New(f("machine halted"))

	// Assembler errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
)

// ErrSyntax reports the offending source line for any assembly failure.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrLiteral is a malformed hexadecimal literal.
type ErrLiteral string

func (err ErrLiteral) Error() string {
	return f("'%v' is not a 0x hexadecimal literal", string(err))
}

// ErrAddrRange is an address literal needing more than three hexadecimal
// digits.
type ErrAddrRange string

func (err ErrAddrRange) Error() string {
	return f("address '%v' exceeds 0xfff", string(err))
}

// ErrValueRange is a data value whose bit pattern does not fit a 12-bit cell.
type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("value '%v' exceeds 12 bits", string(err))
}

// ErrPcRange is a program counter outside the instruction list.
type ErrPcRange struct {
	Pc  InstrIndex
	Len int
}

func (err *ErrPcRange) Error() string {
	return f("program counter 0x%03x outside program of %d instructions", uint16(err.Pc), err.Len)
}

func (err *ErrPcRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrPcRange)
	return
}
