package bruteforce_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/internal/bruteforce"
	"github.com/katalvlaran/gramo/internal/fixtures"
	"github.com/katalvlaran/gramo/recipe"
	"github.com/katalvlaran/gramo/state"
)

func randomGraph(t *testing.T, rng *rand.Rand, n, edgeChance int) *graph.Graph {
	t.Helper()
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Intn(100) < edgeChance {
				edges = append(edges, graph.Edge{From: u, To: v})
			}
		}
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func mappingSet(ms []bruteforce.Mapping) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		s := ""
		for _, y := range m {
			s += string(rune('a' + y))
		}
		out[i] = s
	}
	sort.Strings(out)

	return out
}

func recipeMappingSet(t *testing.T, name string, g, h *graph.Graph, sem state.Semantic) []string {
	t.Helper()
	var out []string
	_, err := recipe.Match(name, g, h, sem, state.AlwaysVertexEq, state.AlwaysEdgeEq, func(s state.State) bool {
		str := ""
		for x := 0; x < s.NumVertices(); x++ {
			str += string(rune('a' + s.Mapped(x)))
		}
		out = append(out, str)

		return true
	})
	require.NoError(t, err)
	sort.Strings(out)

	return out
}

func TestRecipesMatchBruteforce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 8; trial++ {
		g := randomGraph(t, rng, 4, 40)
		h := randomGraph(t, rng, 6, 40)

		for _, sem := range []state.Semantic{state.Mono, state.Induced} {
			induced := sem == state.Induced
			want := mappingSet(bruteforce.Matches(g, h, induced, func(int, int) bool { return true }, func(int, int, int, int) bool { return true }))

			for _, name := range recipe.Names() {
				got := recipeMappingSet(t, name, g, h, sem)
				require.Equal(t, want, got, "trial %d recipe %s sem %v", trial, name, sem)
			}
		}
	}
}

// TestRecipesMatchBruteforceStructuredFixtures cross-validates the same way
// but over the named structured shapes instead of pure random graphs, so the
// automorphism-heavy cases (cycles, complete graphs) get covered too.
func TestRecipesMatchBruteforceStructuredFixtures(t *testing.T) {
	pattern, err := fixtures.Cycle(4, true)
	require.NoError(t, err)
	target, err := fixtures.Complete(6, true)
	require.NoError(t, err)

	for _, sem := range []state.Semantic{state.Mono, state.Induced} {
		induced := sem == state.Induced
		want := mappingSet(bruteforce.Matches(pattern, target, induced, func(int, int) bool { return true }, func(int, int, int, int) bool { return true }))

		for _, name := range recipe.Names() {
			got := recipeMappingSet(t, name, pattern, target, sem)
			require.Equal(t, want, got, "recipe %s sem %v", name, sem)
		}
	}
}
