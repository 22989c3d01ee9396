// Package interpreter composes the virtual machine with its I/O
// channels and drives a loaded program to completion.
package interpreter

import (
	"context"

	"github.com/dfintha/brainfuck/io"
	"github.com/dfintha/brainfuck/vm"
)

// Interpreter state. Machine + I/O channels + run budget.
type Interpreter struct {
	Verbose bool // If set, enables verbose logging.
	*vm.Vm       // The machine being driven.

	Stream io.Tape // Process-stream channel serving ',' and '.'.

	StepLimit int // Abort after this many instructions; zero is unlimited.

	ProgramLimit int // Program capacity; zero selects vm.PROGRAM_LIMIT.
	TapeLimit    int // Tape capacity; zero selects vm.TAPE_LIMIT.
}

// NewInterpreter creates an interpreter with an empty program, a
// zeroed tape, and both machine channels wired to the stream tape.
func NewInterpreter() (interp *Interpreter) {
	interp = &Interpreter{
		Vm: vm.NewVm(&vm.Program{}, vm.JumpTable{}, vm.NewTape(0)),
	}

	interp.Vm.Input = &interp.Stream
	interp.Vm.Output = &interp.Stream

	return
}

// Reset rewinds the machine and its channels to the initial state.
func (interp *Interpreter) Reset() {
	interp.Vm.Verbose = interp.Verbose
	interp.Vm.Reset()
}

// Run drives the machine until the program terminates, the context is
// cancelled, or the step budget is exhausted. The context and budget
// are checked once per instruction, since a Brainfuck program may
// legitimately never halt on its own.
func (interp *Interpreter) Run(ctx context.Context) (err error) {
	interp.Vm.Verbose = interp.Verbose

	for {
		if err = ctx.Err(); err != nil {
			return
		}
		if interp.StepLimit > 0 && interp.Vm.Steps >= interp.StepLimit {
			err = &ErrRuntime{Step: interp.Vm.Steps, Err: ErrStepLimit}
			return
		}

		var done bool
		done, err = interp.Vm.Step()
		if err != nil {
			err = &ErrRuntime{Step: interp.Vm.Steps, Err: err}
			return
		}
		if done {
			return
		}
	}
}
