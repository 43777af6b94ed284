package state

import "github.com/katalvlaran/gramo/graph"

// SimpleState holds no compatibility matrix: feasibility is decided
// fresh at every Assign from degree bounds and the shared topology
// condition. It is the lightest-weight, O(1)-space-per-level variant
// in the catalogue ("simple").
type SimpleState struct {
	base
	cand []int // reused candidate buffer
}

var _ State = (*SimpleState)(nil)

// NewSimple builds a SimpleState over pattern g and target h, visiting
// pattern vertices in the given order.
func NewSimple(g, h *graph.Graph, order []int, sem Semantic, vertexEq VertexEq, edgeEq EdgeEq) *SimpleState {
	return &SimpleState{base: newBase(g, h, order, sem, vertexEq, edgeEq)}
}

// Candidates returns every H vertex not yet mapped.
func (s *SimpleState) Candidates() []int {
	s.cand = s.cand[:0]
	for j := 0; j < s.n; j++ {
		if s.inv[j] == -1 {
			s.cand = append(s.cand, j)
		}
	}

	return s.cand
}

// Advance is a no-op: SimpleState carries no versioned matrix.
func (s *SimpleState) Advance() {}

// Revert is a no-op, matching Advance.
func (s *SimpleState) Revert() {}

// Assign checks U(x,y), degree bounds, and the shared topology
// condition (which itself enforces the induced/mono distinction).
func (s *SimpleState) Assign(y int) bool {
	x := s.current()
	if !s.vertexEq(x, y) {
		return false
	}
	if s.g.OutDegree(x) > s.h.OutDegree(y) || s.g.InDegree(x) > s.h.InDegree(y) {
		return false
	}

	return topologyCondition(&s.base, x, y)
}

// Push commits y to the current pattern vertex; SimpleState needs no
// extra propagation beyond the shared cursor bookkeeping.
func (s *SimpleState) Push(y int) {
	s.doPush(s.current(), y)
}

// Pop reverses the most recent Push.
func (s *SimpleState) Pop() {
	s.doPop()
}
