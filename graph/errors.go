package graph

import "errors"

// Sentinel errors for graph construction. All are returned, never
// panicked — index-out-of-range on an already-built *Graph is a
// programming error and panics instead (see invariant checks in
// methods.go).
var (
	// ErrNegativeVertexCount indicates a negative vertex count was requested.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be >= 0")

	// ErrVertexOutOfRange indicates an edge endpoint falls outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)
