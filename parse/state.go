package parse

// State is a cursor over an argument vector. A fresh State starts before the
// first argument; the first Advance moves onto it.
type State struct {
	pos  int
	args []string
}

// NewState creates a State over the given argument vector
func NewState(args []string) *State {
	return &State{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *State) Pos() int {
	return s.pos
}

// CurrentArg returns the argument under the cursor, or "" when the cursor is
// out of range
func (s *State) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance moves to the next argument, returning false at the end of input
func (s *State) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}
