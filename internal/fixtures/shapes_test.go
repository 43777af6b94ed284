package fixtures_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/internal/fixtures"
)

func TestPathShape(t *testing.T) {
	g, err := fixtures.Path(4, true)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, []int{1}, g.OutNeighbors(0))
	require.Empty(t, g.OutNeighbors(3))

	_, err = fixtures.Path(0, true)
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCycleShape(t *testing.T) {
	g, err := fixtures.Cycle(5, true)
	require.NoError(t, err)
	require.Equal(t, []int{0}, g.OutNeighbors(4))
	for v := 0; v < 5; v++ {
		require.Len(t, g.OutNeighbors(v), 1)
		require.Len(t, g.InNeighbors(v), 1)
	}

	_, err = fixtures.Cycle(2, true)
	require.ErrorIs(t, err, fixtures.ErrTooFewVertices)
}

func TestCompleteShapeUndirected(t *testing.T) {
	g, err := fixtures.Complete(4, false)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		require.Len(t, g.OutNeighbors(v), 3)
	}
}

func TestStarShape(t *testing.T) {
	g, err := fixtures.Star(5, false)
	require.NoError(t, err)
	require.Len(t, g.OutNeighbors(0), 4)
	for leaf := 1; leaf < 5; leaf++ {
		require.Len(t, g.OutNeighbors(leaf), 1)
		require.Equal(t, 0, g.OutNeighbors(leaf)[0])
	}
}

func TestBipartiteShape(t *testing.T) {
	g, err := fixtures.Bipartite(2, 3, true)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Len(t, g.OutNeighbors(0), 3)
	require.Empty(t, g.OutNeighbors(2))
}

func TestRandomShapeDeterministic(t *testing.T) {
	g1, err := fixtures.Random(6, 0.5, true, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	g2, err := fixtures.Random(6, 0.5, true, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		require.Equal(t, g1.OutNeighbors(v), g2.OutNeighbors(v))
	}

	_, err = fixtures.Random(3, 1.5, true, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, fixtures.ErrInvalidProbability)
}
