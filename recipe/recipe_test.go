package recipe_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/recipe"
	"github.com/katalvlaran/gramo/state"
)

func allRecipes() []string {
	names := recipe.Names()
	sort.Strings(names)

	return names
}

func countVia(t *testing.T, name string, g, h *graph.Graph, sem state.Semantic) int {
	t.Helper()
	count := 0
	_, err := recipe.Match(name, g, h, sem, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(state.State) bool {
		count++
		return true
	})
	require.NoError(t, err)

	return count
}

func TestSelfMatchPathOfThree(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)

	for _, name := range allRecipes() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 1, countVia(t, name, g, g, state.Induced))
			require.Equal(t, 1, countVia(t, name, g, g, state.Mono))
		})
	}
}

func TestTriangleIntoK4(t *testing.T) {
	tri, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}})
	require.NoError(t, err)

	var k4edges []graph.Edge
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				k4edges = append(k4edges, graph.Edge{From: i, To: j})
			}
		}
	}
	k4, err := graph.New(4, k4edges)
	require.NoError(t, err)

	for _, name := range allRecipes() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 24, countVia(t, name, tri, k4, state.Induced))
			require.Equal(t, 24, countVia(t, name, tri, k4, state.Mono))
		})
	}
}

func TestNoMatch(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}})
	require.NoError(t, err)
	h, err := graph.New(2, []graph.Edge{{From: 1, To: 0}})
	require.NoError(t, err)

	for _, name := range allRecipes() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 0, countVia(t, name, g, h, state.Induced))
		})
	}
}

func TestFourCycleAutomorphisms(t *testing.T) {
	c4, err := graph.New(4, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}})
	require.NoError(t, err)

	for _, name := range allRecipes() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 4, countVia(t, name, c4, c4, state.Induced))
		})
	}
}

func TestFourCycleUndirectedEncodingAutomorphisms(t *testing.T) {
	// Undirected encoding: two directed edges per undirected edge.
	c4u, err := graph.New(4, []graph.Edge{
		{From: 0, To: 1}, {From: 1, To: 0},
		{From: 1, To: 2}, {From: 2, To: 1},
		{From: 2, To: 3}, {From: 3, To: 2},
		{From: 3, To: 0}, {From: 0, To: 3},
	})
	require.NoError(t, err)

	require.Equal(t, 8, countVia(t, "simple", c4u, c4u, state.Induced))
}

func TestEdgePredicateFilter(t *testing.T) {
	// G and H both have e1=(0->1), e2=(0->2); without edge_eq both the
	// identity and the {1,2}-swap are valid mono mappings. edge_eq
	// requires matching (label[x],label[y]) pairs, which admits only
	// the swap.
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
	require.NoError(t, err)
	h, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
	require.NoError(t, err)

	labelG := []string{"a", "p", "q"}
	labelH := []string{"a", "q", "p"}

	edgeEq := func(x1, x2, y1, y2 int) bool {
		return labelG[x1] == labelH[y1] && labelG[x2] == labelH[y2]
	}

	unfiltered := 0
	_, err = recipe.Match("simple", g, h, state.Mono, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(state.State) bool {
		unfiltered++
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 2, unfiltered)

	var mapping []int
	filtered := 0
	_, err = recipe.Match("simple", g, h, state.Mono, state.AlwaysVertexEq, edgeEq, func(s state.State) bool {
		filtered++
		mapping = []int{s.Mapped(0), s.Mapped(1), s.Mapped(2)}
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, filtered)
	require.Equal(t, []int{0, 2, 1}, mapping)
}

func TestEarlyTerminationAcrossRecipes(t *testing.T) {
	c4, err := graph.New(4, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}})
	require.NoError(t, err)

	for _, name := range allRecipes() {
		t.Run(name, func(t *testing.T) {
			count := 0
			ranToExhaustion, err := recipe.Match(name, c4, c4, state.Induced, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(state.State) bool {
				count++
				return false
			})
			require.NoError(t, err)
			require.False(t, ranToExhaustion)
			require.Equal(t, 1, count)
		})
	}
}

func TestUnknownRecipe(t *testing.T) {
	g, err := graph.New(1, nil)
	require.NoError(t, err)

	_, err = recipe.Match("nonexistent", g, g, state.Mono, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(state.State) bool { return true })
	require.Error(t, err)
}
