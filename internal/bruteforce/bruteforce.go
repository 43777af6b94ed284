package bruteforce

import "github.com/katalvlaran/gramo/graph"

// Mapping is a full injection from pattern vertices to target
// vertices, indexed by pattern vertex.
type Mapping []int

// Matches enumerates every injective mapping from g onto h satisfying
// the chosen semantic and predicates, by trying every permutation of
// m target vertices out of n. Intended for m <= 6, n <= 8 only.
func Matches(g, h *graph.Graph, induced bool, vertexEq func(x, y int) bool, edgeEq func(x1, x2, y1, y2 int) bool) []Mapping {
	m, n := g.NumVertices(), h.NumVertices()
	used := make([]bool, n)
	cur := make([]int, m)
	var out []Mapping

	var rec func(x int)
	rec = func(x int) {
		if x == m {
			mapping := append(Mapping(nil), cur...)
			out = append(out, mapping)

			return
		}
		for y := 0; y < n; y++ {
			if used[y] || !vertexEq(x, y) {
				continue
			}
			if !feasible(g, h, cur, x, y, induced, edgeEq) {
				continue
			}
			used[y] = true
			cur[x] = y
			rec(x + 1)
			used[y] = false
		}
	}
	rec(0)

	return out
}

func feasible(g, h *graph.Graph, cur []int, x, y int, induced bool, edgeEq func(x1, x2, y1, y2 int) bool) bool {
	for i := 0; i < x; i++ {
		j := cur[i]
		gOut, gIn := g.Edge(x, i), g.Edge(i, x)

		if gOut && (!h.Edge(y, j) || !edgeEq(x, i, y, j)) {
			return false
		}
		if gIn && (!h.Edge(j, y) || !edgeEq(i, x, j, y)) {
			return false
		}
		if induced && !gOut && !gIn && (h.Edge(y, j) || h.Edge(j, y)) {
			return false
		}
	}

	return true
}
