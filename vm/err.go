package vm

import (
	"errors"

	"github.com/ezrec/cellvm/translate"
)

var f = translate.From

var (
	// Script validation errors
	ErrUnmatchedOpen  = errors.New(f("open bracket unmatched"))
	ErrUnmatchedClose = errors.New(f("close bracket unmatched"))

	// Execution errors
	ErrChannelInvalid = errors.New(f("channel invalid"))
)

// ErrScript indicates the position of a script validation error.
type ErrScript struct {
	Pos int
	Err error
}

func (err ErrScript) Error() string {
	return f("script position %d %v", err.Pos, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
