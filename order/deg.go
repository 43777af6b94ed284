package order

import (
	"sort"

	"github.com/katalvlaran/gramo/graph"
)

// DEG orders vertices by decreasing total degree (OutDegree+InDegree),
// ties broken by ascending index for determinism.
//
// Complexity: O(m log m).
func DEG(g *graph.Graph) []int {
	m := g.NumVertices()
	type scored struct {
		v   int
		deg int
	}
	rows := make([]scored, m)
	for v := 0; v < m; v++ {
		rows[v] = scored{v: v, deg: g.Degree(v)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].deg != rows[j].deg {
			return rows[i].deg > rows[j].deg
		}
		return rows[i].v < rows[j].v
	})

	out := make([]int, m)
	for i, r := range rows {
		out[i] = r.v
	}

	return out
}
