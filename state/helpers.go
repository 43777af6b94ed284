package state

import (
	"github.com/katalvlaran/gramo/compat"
	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/internal/partition"
)

// relation classifies pattern vertex i against the vertex x currently
// being assigned.
type relation int

const (
	relNone relation = iota
	relSucc
	relPred
	relBoth
)

func classify(g *graph.Graph, x, i int) relation {
	out, in := g.Edge(x, i), g.Edge(i, x)
	switch {
	case out && in:
		return relBoth
	case out:
		return relSucc
	case in:
		return relPred
	default:
		return relNone
	}
}

// topologyCondition checks the per-assignment feasibility shared by
// every non-M-only variant: every already-mapped pattern vertex
// related to x must be related to y the same way in H, under the
// edge-equivalence predicate; induced mode additionally forbids an
// edge appearing where G has none.
func topologyCondition(b *base, x, y int) bool {
	for k := 0; k < b.xit; k++ {
		i := b.order[k]
		j := b.mapv[i]
		rel := classify(b.g, x, i)

		switch rel {
		case relSucc, relBoth:
			if !b.h.Edge(y, j) || !b.edgeEq(x, i, y, j) {
				return false
			}
		}
		switch rel {
		case relPred, relBoth:
			if !b.h.Edge(j, y) || !b.edgeEq(i, x, j, y) {
				return false
			}
		}
		if b.sem == Induced && rel == relNone {
			if b.h.Edge(y, j) || b.h.Edge(j, y) {
				return false
			}
		}
	}

	return true
}

// neighborhoodFilter propagates the commitment of x -> y into every
// unmatched row of M: successors of x must keep only successors of y,
// predecessors of x only predecessors of y (in both cases also passing
// the edge-equivalence predicate), and (induced only)
// non-neighbours of x must drop any H-vertex adjacent to y in either
// direction. Only unmatched columns (inv[j]==-1) are touched.
func neighborhoodFilter(b *base, M compat.Matrix, x, y int) {
	for i := 0; i < b.m; i++ {
		if b.mapv[i] != -1 || i == x {
			continue
		}
		rel := classify(b.g, x, i)
		if rel == relNone && b.sem != Induced {
			continue
		}

		for _, j := range M.Row(i) {
			if b.inv[j] != -1 {
				continue
			}

			var drop bool
			switch rel {
			case relSucc:
				drop = !b.h.Edge(y, j) || !b.edgeEq(x, i, y, j)
			case relPred:
				drop = !b.h.Edge(j, y) || !b.edgeEq(i, x, j, y)
			case relBoth:
				drop = !b.h.Edge(y, j) || !b.h.Edge(j, y) || !b.edgeEq(x, i, y, j) || !b.edgeEq(i, x, j, y)
			case relNone:
				drop = b.h.Edge(y, j) || b.h.Edge(j, y)
			}
			if drop {
				M.Unset(i, j)
			}
		}
	}
}

// ullmannCompatible reports whether every neighbour of i has some
// compatible neighbour of j, and symmetrically for in-neighbours, per
// the current contents of M.
func ullmannCompatible(g, h *graph.Graph, M compat.Matrix, i, j int) bool {
	for _, w := range g.OutNeighbors(i) {
		if !anyCompatible(h, M, w, j, true) {
			return false
		}
	}
	for _, w := range g.InNeighbors(i) {
		if !anyCompatible(h, M, w, j, false) {
			return false
		}
	}

	return true
}

func anyCompatible(h *graph.Graph, M compat.Matrix, w, j int, out bool) bool {
	for _, jp := range M.Row(w) {
		if out && h.Edge(j, jp) {
			return true
		}
		if !out && h.Edge(jp, j) {
			return true
		}
	}

	return false
}

// ullmannRefine runs the global Ullmann fixed point over M: clear any
// (i,j) lacking a compatible neighbour pairing until nothing changes.
func ullmannRefine(g, h *graph.Graph, M compat.Matrix) {
	for {
		changed := false
		for i := 0; i < M.Rows(); i++ {
			for _, j := range M.Row(i) {
				if !ullmannCompatible(g, h, M, i, j) {
					M.Unset(i, j)
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// ullmannCompatibleAfter is ullmannCompatible restricted to i's
// not-yet-visited ("after") pattern neighbours, per part's current
// partition ("ullmann_oalwna": test the Ullmann condition only on
// after-neighbours).
func ullmannCompatibleAfter(h *graph.Graph, M compat.Matrix, part *partition.Partition, i, j int) bool {
	for _, w := range part.OutAfter(i) {
		if !anyCompatible(h, M, w, j, true) {
			return false
		}
	}
	for _, w := range part.InAfter(i) {
		if !anyCompatible(h, M, w, j, false) {
			return false
		}
	}

	return true
}

// ullmannRefineAfter is ullmannRefine using the after-only condition.
func ullmannRefineAfter(h *graph.Graph, M compat.Matrix, part *partition.Partition) {
	for {
		changed := false
		for i := 0; i < M.Rows(); i++ {
			for _, j := range M.Row(i) {
				if !ullmannCompatibleAfter(h, M, part, i, j) {
					M.Unset(i, j)
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// partialUllmannRefine is the second-order propagation run after
// neighborhoodFilter by variants that request it: for every unmatched
// neighbour pair (i,j) reachable from x/y, drop (i,j) if some unmapped
// out-neighbour of i has no live, unmatched out-neighbour of j in its
// row of M (see hasFutureCompatible; in-neighbours of i are not tested).
func partialUllmannRefine(b *base, M compat.Matrix, x, y int) {
	for _, i := range b.g.OutNeighbors(x) {
		if b.mapv[i] != -1 {
			continue
		}
		for _, j := range b.h.OutNeighbors(y) {
			if b.inv[j] != -1 || !M.Get(i, j) {
				continue
			}
			if !hasFutureCompatible(b, M, i, j) {
				M.Unset(i, j)
			}
		}
	}
	for _, i := range b.g.InNeighbors(x) {
		if b.mapv[i] != -1 {
			continue
		}
		for _, j := range b.h.InNeighbors(y) {
			if b.inv[j] != -1 || !M.Get(i, j) {
				continue
			}
			if !hasFutureCompatible(b, M, i, j) {
				M.Unset(i, j)
			}
		}
	}
}

// hasCompatibleCandidate is the matrix-free counterpart of
// hasFutureCompatible, used by RIState's PartialRefine: it reports
// whether unmapped pattern neighbour i of x — related to x the way rel
// classifies — has at least one still-unmapped H vertex reachable from
// y, in the matching direction(s), that also passes the degree/label
// filter initialCompatibility would apply. A false result means no
// future extension of x->y can ever map i, so refined_ri rejects the
// assignment outright instead of discovering the dead end later.
func hasCompatibleCandidate(b *base, x, y, i int) bool {
	compatible := func(j int) bool {
		return b.inv[j] == -1 && b.vertexEq(i, j) && b.g.OutDegree(i) <= b.h.OutDegree(j) && b.g.InDegree(i) <= b.h.InDegree(j)
	}

	switch classify(b.g, x, i) {
	case relSucc:
		for _, j := range b.h.OutNeighbors(y) {
			if compatible(j) {
				return true
			}
		}

		return false
	case relPred:
		for _, j := range b.h.InNeighbors(y) {
			if compatible(j) {
				return true
			}
		}

		return false
	case relBoth:
		for _, j := range intersectSorted(b.h.OutNeighbors(y), b.h.InNeighbors(y)) {
			if compatible(j) {
				return true
			}
		}

		return false
	default:
		return true
	}
}

func hasFutureCompatible(b *base, M compat.Matrix, i, j int) bool {
	for _, ip := range b.g.OutNeighbors(i) {
		if b.mapv[ip] != -1 {
			continue
		}
		supported := false
		for _, jp := range b.h.OutNeighbors(j) {
			if b.inv[jp] == -1 && M.Get(ip, jp) {
				supported = true
				break
			}
		}
		if !supported {
			return false
		}
	}

	return true
}

// parentOf returns the first already-visited pattern vertex adjacent
// (in either direction) to x, or -1 if x has no visited neighbour yet.
func parentOf(b *base, x int) int {
	for k := 0; k < b.xit; k++ {
		i := b.order[k]
		if classify(b.g, x, i) != relNone {
			return i
		}
	}

	return -1
}

// initialCompatibility builds the common construction-time filter:
// cell (i,j) is live iff U(i,j) and i's degree bounds fit within j's.
func initialCompatibility(b *base, M compat.Matrix) {
	for i := 0; i < b.m; i++ {
		for j := 0; j < b.n; j++ {
			if b.vertexEq(i, j) &&
				b.g.OutDegree(i) <= b.h.OutDegree(j) &&
				b.g.InDegree(i) <= b.h.InDegree(j) {
				M.Set(i, j)
			}
		}
	}
}
