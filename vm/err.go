package vm

import (
	"errors"

	"github.com/dfintha/brainfuck/translate"
)

var f = translate.From

var (
	// Load errors
	ErrProgramCapacity = errors.New(f("program capacity exceeded"))

	// Resolve errors
	ErrUnmatchedBracket = errors.New(f("unmatched bracket"))

	// Execution errors
	ErrPointerRange   = errors.New(f("data pointer out of range"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
)

// ErrOffset locates a failure at a program offset.
type ErrOffset struct {
	Offset int
	Err    error
}

func (err ErrOffset) Error() string {
	return f("offset %d %v", err.Offset, err.Err)
}

func (err ErrOffset) Unwrap() error {
	return err.Err
}
