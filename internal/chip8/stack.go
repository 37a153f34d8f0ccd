package chip8

// StackLimit is the maximum call nesting depth.
const StackLimit = 12

// Stack is a bounded stack of subroutine return addresses.
type Stack struct {
	entries [StackLimit]uint16
	depth   int
}

// Push stores a return address. It returns false without modifying the
// stack if the nesting limit is reached.
func (s *Stack) Push(address uint16) bool {
	if s.depth == StackLimit {
		return false
	}
	s.entries[s.depth] = address
	s.depth++
	return true
}

// Pop removes and returns the most recent return address.
// It returns false if the stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.entries[s.depth], true
}

// Depth returns the number of stored return addresses.
func (s *Stack) Depth() int {
	return s.depth
}

// Entries returns a copy of the stored return addresses, oldest first.
func (s *Stack) Entries() []uint16 {
	entries := make([]uint16, s.depth)
	copy(entries, s.entries[:s.depth])
	return entries
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.depth = 0
}
