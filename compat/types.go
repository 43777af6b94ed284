// File: types.go
// Role: the Matrix interface shared by Dense, Log, and Packed.
package compat

// Matrix is a versioned boolean matrix over pattern rows [0,Rows()) and
// target columns [0,Cols()). All implementations in this package are
// non-copyable by convention (use a pointer receiver type) and are
// intended for single-threaded use by exactly one matching state.
type Matrix interface {
	// Rows returns m (the pattern vertex count).
	Rows() int

	// Cols returns n (the target vertex count).
	Cols() int

	// Get reports whether M(i,j) is currently live.
	Get(i, j int) bool

	// Set marks M(i,j) live.
	Set(i, j int)

	// Unset clears M(i,j). A no-op if already clear.
	Unset(i, j int)

	// Advance opens a new version frame.
	Advance()

	// Revert restores M to the state captured by the matching Advance.
	// Panics if called without a pending Advance (programming error).
	Revert()

	// NumCandidates returns the number of live cells in row i.
	NumCandidates(i int) int

	// Possible reports whether row i has any live cell.
	Possible(i int) bool

	// Row returns, in ascending order, the columns j with Get(i,j)==true.
	// The returned slice is a fresh copy: callers may retain it across
	// mutations to M, unlike graph.Graph's aliased accessors.
	Row(i int) []int
}
