package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/graph"
)

func TestNewBasic(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 1}})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.True(t, g.Edge(0, 1))
	require.False(t, g.Edge(1, 0))
	require.Equal(t, 1, g.OutDegree(0)) // duplicate edge collapsed
	require.Equal(t, []int{1}, g.OutNeighbors(0))
	require.Equal(t, []int{0}, g.InNeighbors(1))
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := graph.New(2, []graph.Edge{{From: 0, To: 5}})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestNewRejectsNegativeCount(t *testing.T) {
	_, err := graph.New(-1, nil)
	require.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestSelfLoopExcludedFromComplement(t *testing.T) {
	// Vertex 0 has a self-loop and an edge to 1; vertex 2 is isolated.
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 0}, {From: 0, To: 1}}, graph.WithComplement())
	require.NoError(t, err)

	require.True(t, g.Edge(0, 0))
	require.Contains(t, g.OutNeighbors(0), 0)
	require.NotContains(t, g.NonOutNeighbors(0), 0, "self must never appear in the complement")
	require.Equal(t, []int{2}, g.NonOutNeighbors(0))
}

func TestUndirectedNeighbors(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{From: 0, To: 1}, {From: 2, To: 0}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, g.UndirectedNeighbors(0))
}

func TestNonOutNeighborsPanicsWithoutComplement(t *testing.T) {
	g, err := graph.New(2, nil)
	require.NoError(t, err)
	require.Panics(t, func() { g.NonOutNeighbors(0) })
}

func TestNewFromOutAdjacency(t *testing.T) {
	g, err := graph.NewFromOutAdjacency([][]int{{1, 2}, {2}, {}})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.True(t, g.Edge(0, 2))
	require.Equal(t, 2, g.InDegree(2))
}
