package vm

const TAPE_LIMIT = 30000 // Default tape capacity, in cells.

// Tape is the machine's mutable memory: a fixed-capacity sequence of
// unsigned 8-bit cells plus the data pointer. Cell arithmetic wraps
// modulo 256 by type; pointer motion outside the tape is an error,
// never a silent neighbor access.
type Tape struct {
	Cells []uint8
	Dp    int
}

// NewTape allocates a zeroed tape. A capacity of zero or less selects
// TAPE_LIMIT.
func NewTape(capacity int) (tape *Tape) {
	if capacity <= 0 {
		capacity = TAPE_LIMIT
	}

	tape = &Tape{
		Cells: make([]uint8, capacity),
	}

	return
}

// Reset zeroes every cell and returns the data pointer to the origin.
func (tape *Tape) Reset() {
	clear(tape.Cells)
	tape.Dp = 0
}

// Move adjusts the data pointer by delta, failing with
// ErrPointerRange when the pointer would leave the tape.
func (tape *Tape) Move(delta int) (err error) {
	dp := tape.Dp + delta
	if dp < 0 || dp >= len(tape.Cells) {
		err = ErrPointerRange
		return
	}

	tape.Dp = dp
	return
}

// Cell returns the value of the cell under the data pointer.
func (tape *Tape) Cell() uint8 {
	return tape.Cells[tape.Dp]
}

// SetCell stores value in the cell under the data pointer.
func (tape *Tape) SetCell(value uint8) {
	tape.Cells[tape.Dp] = value
}
