package emulator

import (
	"errors"

	"github.com/ezrec/mipslite/translate"
)

var f = translate.From

var (
	ErrTicksExceeded = errors.New(f("tick limit exceeded"))
	ErrNoProgram     = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint32
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc 0x%04X %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
