package state

import "github.com/katalvlaran/gramo/graph"

// Semantic selects whether a state enforces induced or monomorphism
// matching. It is a runtime tag read by the shared helpers in
// helpers.go, rather than a type split into separate hierarchies.
type Semantic int

const (
	// Mono requires every edge of G to map onto an edge of H; absent
	// edges in G impose no constraint.
	Mono Semantic = iota
	// Induced additionally requires non-edges of G to map onto
	// non-edges of H.
	Induced
)

// VertexEq is the user-supplied vertex-equivalence predicate U(u,v).
type VertexEq func(g, h int) bool

// EdgeEq is the user-supplied edge-equivalence predicate
// E(x1,x2,y1,y2) checked whenever an edge between two pattern
// vertices is compared against its candidate image in H.
type EdgeEq func(x1, x2, y1, y2 int) bool

// AlwaysVertexEq and AlwaysEdgeEq are the default predicates used by
// recipes that do not filter on labels.
func AlwaysVertexEq(int, int) bool                   { return true }
func AlwaysEdgeEq(int, int, int, int) bool            { return true }

// State is the capability set every matching-state variant implements.
// The explore driver is written solely against this interface.
type State interface {
	// Empty reports whether nothing is mapped yet (level == 0).
	Empty() bool
	// Full reports whether every pattern vertex is mapped (level == m).
	Full() bool
	// Candidates returns the target vertices to try for the current
	// pattern vertex. The slice may alias internal storage: the caller
	// must not retain it across Advance/Assign/Push/Pop/Revert.
	Candidates() []int
	// Advance opens a new version frame on the compatibility matrix.
	Advance()
	// Assign attempts to bind the current pattern vertex to y, running
	// whatever feasibility checks this variant performs. It returns
	// false (without mutating observable state beyond Advance) when y
	// is infeasible.
	Assign(y int) bool
	// Push commits y, recording undo information for Pop, and advances
	// to the next pattern vertex.
	Push(y int)
	// Pop reverses the most recent Push.
	Pop()
	// Revert reverses the most recent Advance.
	Revert()

	// Mapped returns the target vertex currently bound to pattern
	// vertex x, or -1 if x is unmapped. Used by the callback view and
	// by property tests.
	Mapped(x int) int
	// NumVertices returns m, the pattern vertex count.
	NumVertices() int
}

// base carries the fields every variant shares: the borrowed graphs,
// the partial map and its inverse, the vertex order and its cursor,
// and the two user predicates. Variants embed base and add whatever
// extra bookkeeping their strategy needs.
type base struct {
	g, h *graph.Graph
	m, n int

	order []int // permutation of 0..m, fixed at construction (dynamic variants may mutate it)
	xit   int    // index into order: order[0:xit] is the visited prefix

	mapv []int // mapv[x] = y, or -1
	inv  []int // inv[y] = x, or -1

	sem      Semantic
	vertexEq VertexEq
	edgeEq   EdgeEq
}

func newBase(g, h *graph.Graph, order []int, sem Semantic, vertexEq VertexEq, edgeEq EdgeEq) base {
	m, n := g.NumVertices(), h.NumVertices()
	mapv := make([]int, m)
	inv := make([]int, n)
	for i := range mapv {
		mapv[i] = -1
	}
	for j := range inv {
		inv[j] = -1
	}

	return base{
		g: g, h: h, m: m, n: n,
		order: order, xit: 0,
		mapv: mapv, inv: inv,
		sem: sem, vertexEq: vertexEq, edgeEq: edgeEq,
	}
}

func (b *base) Empty() bool { return b.xit == 0 }
func (b *base) Full() bool  { return b.xit == b.m }

func (b *base) Mapped(x int) int    { return b.mapv[x] }
func (b *base) NumVertices() int    { return b.m }

// current returns the pattern vertex at the search cursor.
func (b *base) current() int { return b.order[b.xit] }

// bind records x<->y in the partial map (called by Push, not Assign).
func (b *base) bind(x, y int) {
	b.mapv[x] = y
	b.inv[y] = x
}

// unbind reverses bind (called by Pop).
func (b *base) unbind(x, y int) {
	b.mapv[x] = -1
	b.inv[y] = -1
}

// doPush commits x<->y and advances the search cursor. Every variant's
// Push calls this after running its own propagation.
func (b *base) doPush(x, y int) {
	b.bind(x, y)
	b.xit++
}

// doPop reverses the most recent doPush.
func (b *base) doPop() {
	b.xit--
	x := b.order[b.xit]
	y := b.mapv[x]
	b.unbind(x, y)
}
