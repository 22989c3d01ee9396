package io

// Buffer is an in-memory, rewindable channel. Received bytes are
// consumed from the front of Input; Send appends to Output, bounded
// by Capacity when it is non-zero.
type Buffer struct {
	Capacity int // Output capacity in bytes; zero is unbounded.

	Input  []byte
	Output []byte

	readIndex int
}

var _ Channel = (*Buffer)(nil)

// Rewind restarts the input and discards any accumulated output.
func (bc *Buffer) Rewind() {
	bc.readIndex = 0
	bc.Output = nil
}

// Receive consumes the next input byte. ok is false once the input is
// exhausted.
func (bc *Buffer) Receive() (value byte, ok bool, err error) {
	if bc.readIndex >= len(bc.Input) {
		return
	}

	value = bc.Input[bc.readIndex]
	bc.readIndex++
	ok = true
	return
}

// Send appends a byte to the output. Returns ErrChannelFull once the
// output has reached capacity.
func (bc *Buffer) Send(value byte) (err error) {
	if bc.Capacity != 0 && len(bc.Output) >= bc.Capacity {
		err = ErrChannelFull
		return
	}

	bc.Output = append(bc.Output, value)
	return
}
