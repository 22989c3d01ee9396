package vm

// Instruction is a single program byte. The eight recognized
// instructions are their ASCII characters; any other byte is a
// comment and executes as a no-op.
type Instruction byte

const (
	INST_NEXT  = Instruction('>') // dp += 1
	INST_PREV  = Instruction('<') // dp -= 1
	INST_INCR  = Instruction('+') // cell[dp] += 1
	INST_DECR  = Instruction('-') // cell[dp] -= 1
	INST_WRITE = Instruction('.') // emit cell[dp]
	INST_READ  = Instruction(',') // read into cell[dp]
	INST_OPEN  = Instruction('[') // jump past the match when cell[dp] == 0
	INST_CLOSE = Instruction(']') // jump after the match when cell[dp] != 0
)

// Recognized reports whether the instruction is one of the eight
// operations rather than a comment byte.
func (in Instruction) Recognized() bool {
	switch in {
	case INST_NEXT, INST_PREV, INST_INCR, INST_DECR,
		INST_WRITE, INST_READ, INST_OPEN, INST_CLOSE:
		return true
	}

	return false
}

// String returns the instruction character, or a hex dump of a
// comment byte.
func (in Instruction) String() string {
	if !in.Recognized() {
		return f("0x%02x", byte(in))
	}

	return string(rune(in))
}
