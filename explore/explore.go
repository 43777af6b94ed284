package explore

import "github.com/katalvlaran/gramo/state"

// Callback is invoked with the current state whenever a full mapping
// is found. It returns false to stop the search immediately.
type Callback func(s state.State) bool

// Run drives s to enumerate every full mapping reachable from its
// current position, invoking cb on each. It returns false if cb ever
// returned false (the search was stopped early), true if the search
// ran to exhaustion.
//
// Run never mutates s beyond what a matching Advance/Revert and
// Push/Pop pair leaves behind: on return, s is in exactly the state it
// was in on entry.
func Run(s state.State, cb Callback) bool {
	if s.Full() {
		return cb(s)
	}

	// Candidates() may return a view aliasing internal state storage
	// that a deeper recursive call (sharing the same reused buffer)
	// would invalidate; materialise it once before descending.
	cands := append([]int(nil), s.Candidates()...)

	for _, y := range cands {
		s.Advance()

		proceed := true
		if s.Assign(y) {
			s.Push(y)
			proceed = Run(s, cb)
			s.Pop()
		}

		s.Revert()

		if !proceed {
			return false
		}
	}

	return true
}
