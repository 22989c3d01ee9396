package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	buffer := &Buffer{Input: []byte{1, 2}}

	value, ok, err := buffer.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte(1), value)

	assert.NoError(buffer.Send(10))
	assert.NoError(buffer.Send(20))
	assert.Equal([]byte{10, 20}, buffer.Output)

	value, ok, err = buffer.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte(2), value)

	_, ok, err = buffer.Receive()
	assert.NoError(err)
	assert.False(ok)
}

func TestBufferRewind(t *testing.T) {
	assert := assert.New(t)

	buffer := &Buffer{Input: []byte{7}}

	_, ok, _ := buffer.Receive()
	assert.True(ok)
	assert.NoError(buffer.Send(7))

	buffer.Rewind()
	assert.Empty(buffer.Output)

	value, ok, err := buffer.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte(7), value)
}

func TestBufferCapacity(t *testing.T) {
	assert := assert.New(t)

	buffer := &Buffer{Capacity: 2}

	assert.NoError(buffer.Send(1))
	assert.NoError(buffer.Send(2))
	assert.ErrorIs(buffer.Send(3), ErrChannelFull)
	assert.Equal([]byte{1, 2}, buffer.Output)
}
