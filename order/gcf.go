package order

import "github.com/katalvlaran/gramo/graph"

// GreatestConstraintFirst picks, at each step, the unchosen vertex
// maximising the lexicographic rank (vis, neigh, unv):
//   - vis is the count of u's already-chosen neighbours;
//   - neigh is the count of distinct already-chosen vertices reachable
//     from u through one still-available neighbour of u;
//   - unv is the count of u's still-available neighbours that are not
//     yet adjacent, in either direction, to any chosen vertex.
//
// All three are recomputed every step: choosing a vertex can change
// every other unchosen vertex's rank, not just its own. The initial
// pick is the highest-degree vertex (ties broken by ascending index).
//
// Complexity: O(m^2 * maxdeg^2) for the greedy selection loop (m steps,
// each ranking up to m unchosen vertices at O(maxdeg^2) apiece).
func GreatestConstraintFirst(g *graph.Graph) []int {
	m := g.NumVertices()
	if m == 0 {
		return nil
	}

	undirected := make([][]int, m)
	for v := 0; v < m; v++ {
		undirected[v] = g.UndirectedNeighbors(v)
	}

	chosen := make([]bool, m)
	// availUnv[v] is true until v first becomes adjacent to some chosen
	// vertex, at which point it leaves the "untouched" pool for good.
	availUnv := make([]bool, m)
	for v := range availUnv {
		availUnv[v] = true
	}

	first := 0
	for v := 1; v < m; v++ {
		if len(undirected[v]) > len(undirected[first]) {
			first = v
		}
	}
	out := make([]int, 0, m)
	out = append(out, first)
	chosen[first] = true
	touchNeighbours(undirected, availUnv, first)

	for len(out) < m {
		best := -1
		var bestVis, bestNeigh, bestUnv int
		for u := 0; u < m; u++ {
			if chosen[u] {
				continue
			}
			vis, neigh, unv := gcfRank(undirected, chosen, availUnv, u)
			if best == -1 || gcfGreater(vis, neigh, unv, bestVis, bestNeigh, bestUnv) {
				best, bestVis, bestNeigh, bestUnv = u, vis, neigh, unv
			}
		}
		out = append(out, best)
		chosen[best] = true
		touchNeighbours(undirected, availUnv, best)
	}

	return out
}

// touchNeighbours clears availUnv for every neighbour of a just-chosen
// vertex: those neighbours are no longer "untouched by the frontier".
func touchNeighbours(undirected [][]int, availUnv []bool, u int) {
	for _, v := range undirected[u] {
		availUnv[v] = false
	}
}

// gcfRank computes u's current (vis, neigh, unv) triple. neigh counts
// each already-chosen vertex at most once even if reachable through
// several of u's available neighbours.
func gcfRank(undirected [][]int, chosen, availUnv []bool, u int) (vis, neigh, unv int) {
	reached := make(map[int]bool)
	for _, w := range undirected[u] {
		if chosen[w] {
			vis++
			continue
		}
		if availUnv[w] {
			unv++
		}
		for _, ww := range undirected[w] {
			if chosen[ww] {
				reached[ww] = true
			}
		}
	}

	return vis, len(reached), unv
}

func gcfGreater(vis, neigh, unv, bvis, bneigh, bunv int) bool {
	if vis != bvis {
		return vis > bvis
	}
	if neigh != bneigh {
		return neigh > bneigh
	}

	return unv > bunv
}
