package fixtures

import (
	"math/rand"

	"github.com/katalvlaran/gramo/graph"
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minPartitionSize = 1
)

// mirror appends the reverse of every edge in es, turning a one-way edge
// list into an undirected (both-directions) one. Used by every shape below
// when directed is false, the same "mirror for undirected" policy the
// teacher's generators apply per edge.
func mirror(es []graph.Edge, directed bool) []graph.Edge {
	if directed {
		return es
	}
	out := make([]graph.Edge, 0, len(es)*2)
	for _, e := range es {
		out = append(out, e, graph.Edge{From: e.To, To: e.From})
	}

	return out
}

// Path builds 0 -> 1 -> ... -> n-1 (n >= 1; a single vertex with no edges
// is a valid degenerate path).
func Path(n int, directed bool, opts ...graph.Option) (*graph.Graph, error) {
	if n < minPathNodes {
		return nil, ErrTooFewVertices
	}
	edges := make([]graph.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1})
	}

	return graph.New(n, mirror(edges, directed), opts...)
}

// Cycle builds the n-vertex ring 0 -> 1 -> ... -> n-1 -> 0 (n >= 3).
func Cycle(n int, directed bool, opts ...graph.Option) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, ErrTooFewVertices
	}
	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: (i + 1) % n})
	}

	return graph.New(n, mirror(edges, directed), opts...)
}

// Complete builds the complete graph K_n: every ordered pair i<j, mirrored
// unless directed (n >= 1).
func Complete(n int, directed bool, opts ...graph.Option) (*graph.Graph, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewVertices
	}
	edges := make([]graph.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.Edge{From: i, To: j})
		}
	}

	return graph.New(n, mirror(edges, directed), opts...)
}

// Star builds a hub-and-spoke graph: vertex 0 is the hub, 1..n-1 are
// leaves, spokes run hub -> leaf (n >= 2).
func Star(n int, directed bool, opts ...graph.Option) (*graph.Graph, error) {
	if n < minStarNodes {
		return nil, ErrTooFewVertices
	}
	edges := make([]graph.Edge, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		edges = append(edges, graph.Edge{From: 0, To: leaf})
	}

	return graph.New(n, mirror(edges, directed), opts...)
}

// Bipartite builds the complete bipartite graph K_{n1,n2}: the left
// partition occupies vertices 0..n1-1, the right partition n1..n1+n2-1,
// every cross-pair left -> right is an edge (n1,n2 >= 1).
func Bipartite(n1, n2 int, directed bool, opts ...graph.Option) (*graph.Graph, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, ErrTooFewVertices
	}
	edges := make([]graph.Edge, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			edges = append(edges, graph.Edge{From: i, To: n1 + j})
		}
	}

	return graph.New(n1+n2, mirror(edges, directed), opts...)
}

// Random builds an Erdos-Renyi graph over n vertices: every ordered pair
// (i,j), i != j (when !directed, every pair i < j, then mirrored), is
// included independently with probability p, trialled in ascending (i,j)
// order for a fixed rng so the result is deterministic for a fixed seed
// (n >= 1, 0 <= p <= 1).
func Random(n int, p float64, directed bool, rng *rand.Rand, opts ...graph.Option) (*graph.Graph, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	var edges []graph.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !directed && j < i {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{From: i, To: j})
			}
		}
	}

	return graph.New(n, mirror(edges, directed), opts...)
}
