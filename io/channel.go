// Package io provides the byte channel implementations the virtual
// machine reads from and writes to. A channel is a blocking byte
// stream: Tape adapts process files and sockets, Buffer is an
// in-memory channel for deterministic tests.
package io

// Channel defines the byte-level I/O contract between the machine and
// the outside world. Channels operate one byte at a time and block
// until the underlying stream is ready.
type Channel interface {
	// Rewind resets the channel to its initial state, where possible.
	Rewind()
	// Receive blocks for the next byte. ok is false at end of input.
	Receive() (value byte, ok bool, err error)
	// Send writes a single byte to the channel.
	Send(value byte) error
}
