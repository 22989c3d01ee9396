package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeReceive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte("ab"))}

	value, ok, err := tape.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('a'), value)

	value, ok, err = tape.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte('b'), value)

	_, ok, err = tape.Receive()
	assert.NoError(err)
	assert.False(ok)
}

func TestTapeSend(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &Tape{Output: &out}

	assert.NoError(tape.Send('h'))
	assert.NoError(tape.Send('i'))
	assert.Equal([]byte("hi"), out.Bytes())
}

func TestTapeUnset(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	tape.Rewind()

	_, ok, err := tape.Receive()
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(tape.Send(0))
}
