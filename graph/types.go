// File: types.go
// Role: the Graph type and its construction from an edge list.
package graph

import "sort"

// Edge is a directed pair (From, To) over the dense vertex set
// {0, ..., n-1}. Used only at construction time; the built *Graph
// stores neighbours as sorted adjacency slices, not edge lists.
type Edge struct {
	From int
	To   int
}

// Graph is an immutable, read-only directed graph over {0, ..., n-1}.
//
// Invariants (hold for the lifetime of the value):
//   - every out[u] / in[u] slice is sorted ascending and free of duplicates;
//   - nonOut[u] / nonIn[u], when present, are the sorted complements of
//     out[u] / in[u] within {0,...,n-1} \ {u} (self excluded by construction);
//   - a self-loop (u,u), if present, is a member of out[u] and in[u] and is
//     never a member of nonOut[u] / nonIn[u].
type Graph struct {
	n      int
	out    [][]int
	in     [][]int
	nonOut [][]int // nil unless built WithComplement
	nonIn  [][]int // nil unless built WithComplement
}

// Option configures graph construction.
type Option func(*buildConfig)

type buildConfig struct {
	complement bool
}

// WithComplement additionally derives, per vertex, the sorted
// complementary "non-out" and "non-in" neighbour lists (self excluded),
// read through NonOutNeighbors/NonInNeighbors. The matching states and
// package internal/partition do not read them: the neighborhood filter
// tests non-edges with Edge directly.
func WithComplement() Option {
	return func(c *buildConfig) { c.complement = true }
}

// New builds a *Graph with n vertices from the given edge list.
// Parallel edges collapse silently (adjacency is a set, not a multiset);
// self-loops are permitted and recorded as ordinary edges.
//
// Complexity: O(n + len(edges) log len(edges)).
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([][]int, n)
	in := make([][]int, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrVertexOutOfRange
		}
		out[e.From] = append(out[e.From], e.To)
		in[e.To] = append(in[e.To], e.From)
	}
	for u := 0; u < n; u++ {
		out[u] = sortUnique(out[u])
		in[u] = sortUnique(in[u])
	}

	g := &Graph{n: n, out: out, in: in}
	if cfg.complement {
		g.nonOut = make([][]int, n)
		g.nonIn = make([][]int, n)
		for u := 0; u < n; u++ {
			g.nonOut[u] = complement(n, u, out[u])
			g.nonIn[u] = complement(n, u, in[u])
		}
	}

	return g, nil
}

// NewFromOutAdjacency builds a *Graph directly from per-vertex
// out-neighbour lists (the shape the AMALFI parser produces); in-
// neighbours are derived by transposition. Each outAdj[u] need not be
// sorted or deduplicated on entry.
func NewFromOutAdjacency(outAdj [][]int, opts ...Option) (*Graph, error) {
	n := len(outAdj)
	edges := make([]Edge, 0, n)
	for u, nbrs := range outAdj {
		for _, v := range nbrs {
			edges = append(edges, Edge{From: u, To: v})
		}
	}

	return New(n, edges, opts...)
}

func sortUnique(s []int) []int {
	if len(s) == 0 {
		return s
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// complement returns, in ascending order, every vertex in {0,...,n-1}
// except u itself and every member of present (present must be sorted).
func complement(n, u int, present []int) []int {
	out := make([]int, 0, n)
	pi := 0
	for v := 0; v < n; v++ {
		if v == u {
			continue
		}
		for pi < len(present) && present[pi] < v {
			pi++
		}
		if pi < len(present) && present[pi] == v {
			continue
		}
		out = append(out, v)
	}

	return out
}
