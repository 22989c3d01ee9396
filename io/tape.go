package io

import (
	"io"
)

// Tape adapts an io.Reader and io.Writer pair into a Channel. Reads
// and writes block on the underlying streams.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive reads the next byte from the input stream, blocking until a
// byte is available. ok is false once the stream is exhausted; an
// unset input stream reads as exhausted.
func (tc *Tape) Receive() (value byte, ok bool, err error) {
	if tc.Input == nil {
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			value = one[0]
			ok = true
			err = nil
			return
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
	}
}

// Send writes a byte to the output stream. An unset output stream
// discards the byte.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
