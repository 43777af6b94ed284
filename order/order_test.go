package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/order"
)

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)

	return g
}

func TestDEGIsPermutation(t *testing.T) {
	g := path3(t)
	perm := order.DEG(g)
	require.True(t, order.IsPermutation(perm, 3))
	// vertex 1 has degree 2 (one in, one out); it must lead.
	require.Equal(t, 1, perm[0])
}

func TestRDEGCNCIsPermutation(t *testing.T) {
	g := path3(t)
	perm := order.RDEGCNC(g)
	require.True(t, order.IsPermutation(perm, 3))
	require.Equal(t, 0, perm[0])
}

func TestGreatestConstraintFirstIsPermutation(t *testing.T) {
	g := path3(t)
	perm := order.GreatestConstraintFirst(g)
	require.True(t, order.IsPermutation(perm, 3))
	require.Equal(t, 1, perm[0])
}

func TestOrdersOnEmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	require.Empty(t, order.DEG(g))
	require.Empty(t, order.RDEGCNC(g))
	require.Empty(t, order.GreatestConstraintFirst(g))
}
