package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeMove(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(4)
	assert.Equal(4, len(tape.Cells))
	assert.Equal(0, tape.Dp)

	assert.ErrorIs(tape.Move(-1), ErrPointerRange)
	assert.Equal(0, tape.Dp)

	assert.NoError(tape.Move(1))
	assert.NoError(tape.Move(1))
	assert.NoError(tape.Move(1))
	assert.Equal(3, tape.Dp)

	assert.ErrorIs(tape.Move(1), ErrPointerRange)
	assert.Equal(3, tape.Dp)

	assert.NoError(tape.Move(-1))
	assert.Equal(2, tape.Dp)
}

func TestTapeWrap(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(0)
	assert.Equal(TAPE_LIMIT, len(tape.Cells))

	tape.SetCell(255)
	tape.SetCell(tape.Cell() + 1)
	assert.Equal(uint8(0), tape.Cell())

	tape.SetCell(tape.Cell() - 1)
	assert.Equal(uint8(255), tape.Cell())
}

func TestTapeReset(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(8)
	assert.NoError(tape.Move(3))
	tape.SetCell(42)

	tape.Reset()
	assert.Equal(0, tape.Dp)
	for _, cell := range tape.Cells {
		assert.Equal(uint8(0), cell)
	}
}
