package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dfintha/brainfuck/interpreter"
	"github.com/dfintha/brainfuck/vm"
)

// Exit codes, one per failure class. Normal termination exits 0.
const (
	EXIT_FAILURE  = 1 // Usage errors, missing files, aborted runs.
	EXIT_CAPACITY = 2
	EXIT_BRACKET  = 3
	EXIT_POINTER  = 4
	EXIT_IO       = 5
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, vm.ErrProgramCapacity):
		return EXIT_CAPACITY
	case errors.Is(err, vm.ErrUnmatchedBracket):
		return EXIT_BRACKET
	case errors.Is(err, vm.ErrPointerRange):
		return EXIT_POINTER
	case errors.Is(err, interpreter.ErrStepLimit),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return EXIT_FAILURE
	}

	return EXIT_IO
}

func main() {
	var program string
	var input string
	var output string
	var programLimit int
	var tapeLimit int
	var stepLimit int
	var verbose bool

	flag.StringVar(&program, "f", "-", "Program file")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.IntVar(&programLimit, "p", vm.PROGRAM_LIMIT, "Program capacity in bytes")
	flag.IntVar(&tapeLimit, "t", vm.TAPE_LIMIT, "Tape capacity in cells")
	flag.IntVar(&stepLimit, "s", 0, "Step limit, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	interp := interpreter.NewInterpreter()
	interp.Verbose = verbose
	interp.ProgramLimit = programLimit
	interp.TapeLimit = tapeLimit
	interp.StepLimit = stepLimit

	var source io.Reader = os.Stdin
	if program != "-" {
		inf, err := os.Open(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		defer inf.Close()
		source = inf
	} else {
		program = "stdin"
	}

	if input == "-" {
		interp.Stream.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		interp.Stream.Input = inf
	}

	if output == "-" {
		interp.Stream.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		interp.Stream.Output = ouf
	}

	if err := interp.Load(source); err != nil {
		log.Printf("%v: %v", program, err)
		os.Exit(exitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := interp.Run(ctx); err != nil {
		log.Printf("%v: %v", program, err)
		os.Exit(exitCode(err))
	}
}
