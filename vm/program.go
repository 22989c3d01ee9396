package vm

import (
	"io"
	"iter"
)

const PROGRAM_LIMIT = 30000 // Default program capacity, in bytes.

// Program is an immutable instruction sequence, loaded once before
// execution begins and never mutated afterward.
type Program struct {
	Code []byte
}

// Load consumes an entire program from r, up to limit bytes. A limit
// of zero or less selects PROGRAM_LIMIT. A stream yielding more than
// limit bytes fails with ErrProgramCapacity instead of silently
// overflowing.
func Load(r io.Reader, limit int) (prog *Program, err error) {
	if limit <= 0 {
		limit = PROGRAM_LIMIT
	}

	code, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return
	}
	if len(code) > limit {
		err = ErrProgramCapacity
		return
	}

	prog = &Program{Code: code}
	return
}

// Len returns the number of loaded instruction bytes. The engine
// terminates once the instruction pointer reaches this value.
func (prog *Program) Len() int {
	return len(prog.Code)
}

// At returns the instruction at offset ip.
func (prog *Program) At(ip int) Instruction {
	return Instruction(prog.Code[ip])
}

// Instructions yields every (offset, instruction) pair in program
// order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, in Instruction) bool) {
		for ip, code := range prog.Code {
			if !yield(ip, Instruction(code)) {
				return
			}
		}
	}
}
