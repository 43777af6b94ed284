package state

import (
	"github.com/katalvlaran/gramo/compat"
	"github.com/katalvlaran/gramo/graph"
)

// DynamicState re-selects the next pattern vertex at every level as
// the unvisited vertex with the fewest live candidates (ties broken
// by earliest position in the current order), instead of following a
// fixed order computed once at construction — the behaviour shared by dynamic_mat,
// dynamic_sorted_vector and dynamic_linked_mat, which differ only in
// M's backing representation (a concern compat.Matrix already
// abstracts over).
type DynamicState struct {
	base
	M             compat.Matrix
	PartialRefine bool
}

var _ State = (*DynamicState)(nil)

// NewDynamic builds a DynamicState. order is only the initial
// unvisited-tail seed (any permutation, typically 0..m-1); it is
// mutated in place as vertices are chosen.
func NewDynamic(g, h *graph.Graph, order []int, sem Semantic, vertexEq VertexEq, edgeEq EdgeEq, M compat.Matrix, partialRefine bool) *DynamicState {
	d := &DynamicState{base: newBase(g, h, order, sem, vertexEq, edgeEq), M: M, PartialRefine: partialRefine}
	initialCompatibility(&d.base, M)

	return d
}

// pickNext finds, among order[xit:], the index of the vertex with the
// fewest live M-candidates, swaps it into position xit, and returns
// it. The swap is not undone: deeper levels only permute positions
// after xit, so Pop still finds this vertex at order[xit].
func (d *DynamicState) pickNext() int {
	best := d.xit
	for k := d.xit + 1; k < d.m; k++ {
		if d.M.NumCandidates(d.order[k]) < d.M.NumCandidates(d.order[best]) {
			best = k
		}
	}
	d.order[d.xit], d.order[best] = d.order[best], d.order[d.xit]

	return d.order[d.xit]
}

func (d *DynamicState) Candidates() []int {
	x := d.pickNext()
	row := d.M.Row(x)
	out := row[:0:0]
	for _, j := range row {
		if d.inv[j] == -1 {
			out = append(out, j)
		}
	}

	return out
}

func (d *DynamicState) Advance() { d.M.Advance() }
func (d *DynamicState) Revert()  { d.M.Revert() }

// Assign trusts M: any remaining live cell is feasible by construction
// of the filter and neighbourhood propagation.
func (d *DynamicState) Assign(y int) bool {
	x := d.order[d.xit]

	return d.M.Get(x, y) && d.inv[y] == -1
}

// Push commits y, runs the neighbourhood filter (and partial Ullmann
// refinement, if configured) over the remaining unvisited rows, and
// advances the cursor. Candidates already rotated x into order[xit].
func (d *DynamicState) Push(y int) {
	x := d.order[d.xit]
	neighborhoodFilter(&d.base, d.M, x, y)
	if d.PartialRefine {
		partialUllmannRefine(&d.base, d.M, x, y)
	}
	d.doPush(x, y)
}

func (d *DynamicState) Pop() { d.doPop() }
