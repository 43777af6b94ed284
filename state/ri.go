package state

import "github.com/katalvlaran/gramo/graph"

// RIConfig selects which member of the RI/RIIMP parent-based family an
// RIState behaves as. Every member shares the same
// candidate shape — restrict to a mapped neighbour's H-image
// adjacency instead of scanning all of H — and differs only in how
// many mapped neighbours contribute to that restriction and whether a
// lookahead rank check gates Assign.
//
//   - ri, ri2, refined_ri: Intersect=false (parent only). ri2's
//     "before-partitioned" restriction is already exactly what
//     topologyCondition checks, since it only ever looks at already-
//     mapped (i.e. "before") pattern neighbours; refined_ri sets
//     PartialRefine, which adds the per-neighbour "exists compatible j"
//     filter to Assign (see hasCompatibleCandidate in helpers.go).
//   - riimp, riimp2: Intersect=true (all mapped neighbours narrow the
//     candidate set, not just the parent).
//   - ri_lookahead: Lookahead=true, gating Assign on a degree-rank
//     comparison in addition to topologyCondition.
type RIConfig struct {
	Intersect     bool
	PartialRefine bool
	Lookahead     bool
}

// RIState generates candidates from the H-neighbourhood of already-
// mapped pattern neighbours rather than scanning every unmatched H
// vertex, falling back to a full scan when x has no mapped neighbour
// yet.
type RIState struct {
	base
	cfg  RIConfig
	cand []int
}

var _ State = (*RIState)(nil)

// NewRI builds an RIState with the given config.
func NewRI(g, h *graph.Graph, order []int, sem Semantic, vertexEq VertexEq, edgeEq EdgeEq, cfg RIConfig) *RIState {
	return &RIState{base: newBase(g, h, order, sem, vertexEq, edgeEq), cfg: cfg}
}

// Candidates restricts to the intersection (riimp*) or the single
// parent's (ri*) H-neighbourhood among mapped pattern neighbours of
// the current vertex, falling back to every unmatched H vertex when
// none is mapped yet.
func (r *RIState) Candidates() []int {
	x := r.current()
	var live map[int]bool

	for k := 0; k < r.xit; k++ {
		i := r.order[k]
		rel := classify(r.g, x, i)
		if rel == relNone {
			continue
		}
		j := r.mapv[i]

		// x->i in G requires y->j in H, so y must be a predecessor of
		// j (h.InNeighbors(j)); i->x in G requires j->y, so y must be
		// a successor of j (h.OutNeighbors(j)); both directions in G
		// require both in H, i.e. their intersection.
		var nbrs []int
		switch rel {
		case relSucc:
			nbrs = r.h.InNeighbors(j)
		case relPred:
			nbrs = r.h.OutNeighbors(j)
		case relBoth:
			nbrs = intersectSorted(r.h.InNeighbors(j), r.h.OutNeighbors(j))
		}

		if live == nil {
			live = make(map[int]bool, len(nbrs))
			for _, j := range nbrs {
				live[j] = true
			}
			if !r.cfg.Intersect {
				break
			}
			continue
		}

		next := make(map[int]bool, len(nbrs))
		for _, j := range nbrs {
			if live[j] {
				next[j] = true
			}
		}
		live = next
	}

	r.cand = r.cand[:0]
	if live == nil {
		for j := 0; j < r.n; j++ {
			if r.inv[j] == -1 {
				r.cand = append(r.cand, j)
			}
		}

		return r.cand
	}

	for j := range live {
		if r.inv[j] == -1 {
			r.cand = append(r.cand, j)
		}
	}

	return r.cand
}

// intersectSorted returns the sorted intersection of two sorted,
// duplicate-free slices.
func intersectSorted(a, b []int) []int {
	out := make([]int, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func (r *RIState) Advance() {}
func (r *RIState) Revert()  {}

// Assign checks U(x,y), degree bounds and topologyCondition, exactly
// as SimpleState; ri_lookahead additionally requires y's degree rank
// to dominate x's, with equality required on the mapped-neighbour
// count under induced semantics; refined_ri (PartialRefine) further
// requires every unmapped pattern neighbour of x to still have some
// compatible H candidate reachable from y.
func (r *RIState) Assign(y int) bool {
	x := r.current()
	if !r.vertexEq(x, y) {
		return false
	}
	if r.g.OutDegree(x) > r.h.OutDegree(y) || r.g.InDegree(x) > r.h.InDegree(y) {
		return false
	}
	if r.cfg.Lookahead {
		visX := countMappedNeighbors(&r.base, x)
		visY := countMappedTargetNeighbors(&r.base, y)
		if r.sem == Induced && visX != visY {
			return false
		}
		if visY < visX {
			return false
		}
	}

	if !topologyCondition(&r.base, x, y) {
		return false
	}

	if r.cfg.PartialRefine {
		for _, i := range r.g.UndirectedNeighbors(x) {
			if r.mapv[i] == -1 && !hasCompatibleCandidate(&r.base, x, y, i) {
				return false
			}
		}
	}

	return true
}

func countMappedNeighbors(b *base, x int) int {
	count := 0
	for k := 0; k < b.xit; k++ {
		if classify(b.g, x, b.order[k]) != relNone {
			count++
		}
	}

	return count
}

func countMappedTargetNeighbors(b *base, y int) int {
	count := 0
	for j := 0; j < b.n; j++ {
		x := b.inv[j]
		if x == -1 {
			continue
		}
		if b.h.Edge(y, j) || b.h.Edge(j, y) {
			count++
		}
	}

	return count
}

// Push commits y; refined_ri's propagation is identical to plain ri's
// (the spec's variant table lists its push column as "counts as ri"),
// so PartialRefine only changes Assign, never Push.
func (r *RIState) Push(y int) {
	r.doPush(r.current(), y)
}

func (r *RIState) Pop() { r.doPop() }
