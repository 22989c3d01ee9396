package interpreter

import (
	"io"

	"github.com/dfintha/brainfuck/vm"
)

// Load consumes an entire program from r, resolves its brackets, and
// leaves the machine reset and ready to run. A malformed program is
// rejected here; no instruction of it ever executes.
func (interp *Interpreter) Load(r io.Reader) (err error) {
	prog, err := vm.Load(r, interp.ProgramLimit)
	if err != nil {
		return
	}

	jumps, err := vm.Resolve(prog)
	if err != nil {
		return
	}

	interp.Vm.Program = prog
	interp.Vm.Jumps = jumps
	interp.Vm.Tape = vm.NewTape(interp.TapeLimit)
	interp.Reset()

	return
}
