package order

import "github.com/katalvlaran/gramo/graph"

// RDEGCNC iteratively chooses the unordered vertex with the greatest
// count of already-ordered neighbours (direction-agnostic: N(v)∪N⁻(v)),
// tie-breaking on clust(v)+deg(v), where clust(v) counts the (w, r)
// pairs with w ∈ N(v)∪N⁻(v), r ∈ N(v)∪N⁻(v) (equivalently, r adjacent
// to v in either direction), and r ∈ N(w)∪N⁻(w). The initial pick is
// vertex 0 (any vertex is valid; index 0 under ties per spec).
//
// Complexity: O(m^2) for the greedy selection loop plus O(m * maxdeg^2)
// to precompute the clustering score once per vertex.
func RDEGCNC(g *graph.Graph) []int {
	m := g.NumVertices()
	if m == 0 {
		return nil
	}

	undirected := make([][]int, m)
	score := make([]int, m)
	for v := 0; v < m; v++ {
		undirected[v] = g.UndirectedNeighbors(v)
	}
	for v := 0; v < m; v++ {
		score[v] = undirectedDegree(undirected, v) + clusterCount(undirected, v)
	}

	chosen := make([]bool, m)
	orderedNbrCount := make([]int, m)
	out := make([]int, 0, m)

	first := 0
	out = append(out, first)
	chosen[first] = true
	for _, w := range undirected[first] {
		orderedNbrCount[w]++
	}

	for len(out) < m {
		best := -1
		for v := 0; v < m; v++ {
			if chosen[v] {
				continue
			}
			if best == -1 || rdegBetter(v, best, orderedNbrCount, score) {
				best = v
			}
		}
		out = append(out, best)
		chosen[best] = true
		for _, w := range undirected[best] {
			if !chosen[w] {
				orderedNbrCount[w]++
			}
		}
	}

	return out
}

func rdegBetter(a, b int, cnt, score []int) bool {
	if cnt[a] != cnt[b] {
		return cnt[a] > cnt[b]
	}
	if score[a] != score[b] {
		return score[a] > score[b]
	}

	return a < b
}

func undirectedDegree(undirected [][]int, v int) int {
	return len(undirected[v])
}

// clusterCount counts ordered pairs (w, r) with w, r ∈ undirected[v] and
// r ∈ undirected[w].
func clusterCount(undirected [][]int, v int) int {
	nbrs := undirected[v]
	count := 0
	for _, w := range nbrs {
		wSet := membershipSet(undirected[w])
		for _, r := range nbrs {
			if wSet[r] {
				count++
			}
		}
	}

	return count
}

func membershipSet(sorted []int) map[int]bool {
	s := make(map[int]bool, len(sorted))
	for _, v := range sorted {
		s[v] = true
	}

	return s
}
