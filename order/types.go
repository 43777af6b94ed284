package order

import "github.com/katalvlaran/gramo/graph"

// Strategy computes a vertex order for g: a permutation of
// {0, ..., g.NumVertices()-1}. Recipes (package recipe) select a
// Strategy by value, the same way the teacher's builder package
// composes Constructor values.
type Strategy func(g *graph.Graph) []int

// IsPermutation reports whether order is a permutation of {0,...,m-1}.
// Exercised by property tests (§8 property 8); not used on the hot path.
func IsPermutation(perm []int, m int) bool {
	if len(perm) != m {
		return false
	}
	seen := make([]bool, m)
	for _, v := range perm {
		if v < 0 || v >= m || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
