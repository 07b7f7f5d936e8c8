package emulator

import (
	"errors"

	"github.com/ezrec/mu0/translate"
)

var f = translate.From

// ErrStepLimit reports that the configured step limit was reached before
// the machine halted.
var ErrStepLimit = errors.New(f("step limit reached"))

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch is an invalid watch expression.
type ErrWatch string

func (err ErrWatch) Error() string {
	return f("'%v' is not a valid watch expression", string(err))
}
