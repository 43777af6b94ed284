package state

import (
	"github.com/katalvlaran/gramo/compat"
	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/internal/partition"
)

// UllmannState drives candidate generation straight from a fully
// Ullmann-refined compatibility matrix: candidates for x are exactly
// row x of M, Assign is a single M lookup, and Push re-runs the
// neighbourhood filter (row x restricted to y, column y restricted to
// x, then full refinement). AfterOnly switches the refinement to test
// the Ullmann condition only against each pattern vertex's "after"
// (not-yet-visited) neighbours, matching the "ullmann_oalwna"
// candidate restriction without a second struct.
type UllmannState struct {
	base
	M         compat.Matrix
	afterOnly bool
	part      *partition.Partition // non-nil iff afterOnly
}

var _ State = (*UllmannState)(nil)

// NewUllmann builds an UllmannState backed by the given matrix
// implementation, already sized Rows()==m, Cols()==n, and runs the
// common initial filter plus a global Ullmann refinement.
func NewUllmann(g, h *graph.Graph, order []int, sem Semantic, vertexEq VertexEq, edgeEq EdgeEq, M compat.Matrix, afterOnly bool) *UllmannState {
	u := &UllmannState{base: newBase(g, h, order, sem, vertexEq, edgeEq), M: M, afterOnly: afterOnly}
	initialCompatibility(&u.base, M)

	if afterOnly {
		u.part = partition.New(g)
		ullmannRefineAfter(h, M, u.part)
	} else {
		ullmannRefine(g, h, M)
	}

	return u
}

// Candidates returns row x of M, restricted to still-unmatched columns.
func (u *UllmannState) Candidates() []int {
	x := u.current()
	row := u.M.Row(x)
	out := row[:0:0]
	for _, j := range row {
		if u.inv[j] == -1 {
			out = append(out, j)
		}
	}

	return out
}

func (u *UllmannState) Advance() { u.M.Advance() }
func (u *UllmannState) Revert()  { u.M.Revert() }

// Assign checks M(x,y) directly; the matrix already encodes every
// degree, label and topology constraint discovered so far.
func (u *UllmannState) Assign(y int) bool {
	x := u.current()

	return u.M.Get(x, y) && u.inv[y] == -1
}

// Push restricts row x and column y to the committed pair, runs the
// neighbourhood filter, and re-refines.
func (u *UllmannState) Push(y int) {
	x := u.current()
	for _, j := range u.M.Row(x) {
		if j != y {
			u.M.Unset(x, j)
		}
	}
	for i := 0; i < u.m; i++ {
		if i != x && u.M.Get(i, y) {
			u.M.Unset(i, y)
		}
	}
	neighborhoodFilter(&u.base, u.M, x, y)

	if u.afterOnly {
		u.part.Push(x)
		ullmannRefineAfter(u.h, u.M, u.part)
	} else {
		ullmannRefine(u.g, u.h, u.M)
	}
	u.doPush(x, y)
}

// Pop reverses Push; the matrix content is restored by the matching
// Revert, so Pop only rewinds the cursor, map and (afterOnly) partition.
func (u *UllmannState) Pop() {
	u.doPop()
	if u.afterOnly {
		u.part.Pop()
	}
}
