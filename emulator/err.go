package emulator

import (
	"errors"

	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	ErrCycleLimit = errors.New(f("cycle limit exceeded"))
	ErrBreakExpr  = errors.New(f("break expression invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Iptr int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("script position %d %v", err.Iptr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
