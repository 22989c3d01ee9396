package vm

// JumpTable maps every loop-open offset to its matching loop-close
// offset and vice versa, making loop jumps O(1) at run time.
type JumpTable map[int]int

// Resolve scans the program once, left to right, matching brackets
// with a stack of pending opens. Malformed nesting fails with
// ErrUnmatchedBracket, wrapped with the offending offset, before any
// instruction executes.
func Resolve(prog *Program) (jumps JumpTable, err error) {
	jumps = JumpTable{}

	var pending Stack
	for ip, in := range prog.Instructions() {
		switch in {
		case INST_OPEN:
			pending.Push(ip)
		case INST_CLOSE:
			open, ok := pending.Pop()
			if !ok {
				jumps = nil
				err = ErrOffset{Offset: ip, Err: ErrUnmatchedBracket}
				return
			}
			jumps[open] = ip
			jumps[ip] = open
		}
	}

	if open, ok := pending.Pop(); ok {
		jumps = nil
		err = ErrOffset{Offset: open, Err: ErrUnmatchedBracket}
		return
	}

	return
}
