package vm

import (
	"log"

	"github.com/dfintha/brainfuck/io"
)

// Channel is a byte I/O channel interface.
type Channel io.Channel

// Vm is the execution engine: a state machine over the instruction
// pointer and the data pointer, consulting the jump table on loop
// instructions and the I/O channels on read and write instructions.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program  // Loaded instruction sequence.
	Jumps   JumpTable // Bracket matches, precomputed by Resolve.
	Tape    *Tape     // Mutable cell memory.

	Input  Channel // Source for ',' instructions.
	Output Channel // Sink for '.' instructions.

	Ip    int // Current instruction pointer.
	Steps int // Instructions executed since the last reset.
}

// NewVm assembles a machine around a resolved program. The I/O
// channels must be attached before the first read or write
// instruction executes.
func NewVm(prog *Program, jumps JumpTable, tape *Tape) (vm *Vm) {
	vm = &Vm{
		Program: prog,
		Jumps:   jumps,
		Tape:    tape,
	}

	return
}

// Reset rewinds the machine to its initial state: instruction and
// data pointers at zero, all cells zero, both channels rewound.
func (vm *Vm) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	vm.Ip = 0
	vm.Steps = 0
	vm.Tape.Reset()

	if vm.Input != nil {
		vm.Input.Rewind()
	}
	if vm.Output != nil {
		vm.Output.Rewind()
	}
}

// Done reports whether the instruction pointer has reached the end of
// the program.
func (vm *Vm) Done() bool {
	return vm.Ip >= vm.Program.Len()
}

// Step fetches, decodes, and executes a single instruction. done is
// true once the instruction pointer reaches the end of the program.
// Every failure aborts the run; none is recoverable.
func (vm *Vm) Step() (done bool, err error) {
	if vm.Done() {
		done = true
		return
	}

	in := vm.Program.At(vm.Ip)
	if vm.Verbose {
		log.Printf("vm: %04d: %v dp=%d cell=%d", vm.Ip, in, vm.Tape.Dp, vm.Tape.Cell())
	}

	next_ip := vm.Ip + 1

	switch in {
	case INST_NEXT:
		err = vm.Tape.Move(1)
	case INST_PREV:
		err = vm.Tape.Move(-1)
	case INST_INCR:
		vm.Tape.SetCell(vm.Tape.Cell() + 1)
	case INST_DECR:
		vm.Tape.SetCell(vm.Tape.Cell() - 1)
	case INST_WRITE:
		if vm.Output == nil {
			err = ErrChannelInvalid
		} else {
			err = vm.Output.Send(vm.Tape.Cell())
		}
	case INST_READ:
		if vm.Input == nil {
			err = ErrChannelInvalid
		} else {
			var value byte
			var ok bool
			value, ok, err = vm.Input.Receive()
			if err == nil {
				if !ok {
					// End of input stores the zero sentinel.
					value = 0
				}
				vm.Tape.SetCell(value)
			}
		}
	case INST_OPEN:
		if vm.Tape.Cell() == 0 {
			close_ip, ok := vm.Jumps[vm.Ip]
			if !ok {
				err = ErrUnmatchedBracket
			} else {
				next_ip = close_ip + 1
			}
		}
	case INST_CLOSE:
		if vm.Tape.Cell() != 0 {
			open_ip, ok := vm.Jumps[vm.Ip]
			if !ok {
				err = ErrUnmatchedBracket
			} else {
				next_ip = open_ip + 1
			}
		}
	default:
		// Comment byte.
	}

	if err != nil {
		err = ErrOffset{Offset: vm.Ip, Err: err}
		return
	}

	vm.Ip = next_ip
	vm.Steps++
	done = vm.Done()

	return
}
