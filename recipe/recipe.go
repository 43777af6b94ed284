package recipe

import (
	"fmt"

	"github.com/katalvlaran/gramo/compat"
	"github.com/katalvlaran/gramo/explore"
	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/order"
	"github.com/katalvlaran/gramo/state"
)

// MatchFunc is the shape every named recipe implements.
type MatchFunc func(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool

// Simple runs the matrix-free, full-H-scan variant with DEG ordering.
func Simple(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewSimple(g, h, order.DEG(g), sem, vertexEq, edgeEq)

	return explore.Run(s, cb)
}

// Ullmann runs the classic row/column-restriction variant over a
// Dense (frame-copy) compatibility matrix with GCF ordering.
func Ullmann(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewUllmann(g, h, order.GreatestConstraintFirst(g), sem, vertexEq, edgeEq, compat.NewDense(g.NumVertices(), h.NumVertices()), false)

	return explore.Run(s, cb)
}

// UllmannAfterOnly restricts the Ullmann refinement to each pattern
// vertex's not-yet-visited neighbours (named "ullmann_oalwna"; the
// source documents it for monomorphism only, but the implementation
// imposes no such restriction).
func UllmannAfterOnly(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewUllmann(g, h, order.GreatestConstraintFirst(g), sem, vertexEq, edgeEq, compat.NewDense(g.NumVertices(), h.NumVertices()), true)

	return explore.Run(s, cb)
}

// UllmannLog is Ullmann over a Log (log-replay) matrix instead of Dense.
func UllmannLog(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewUllmann(g, h, order.GreatestConstraintFirst(g), sem, vertexEq, edgeEq, compat.NewLog(g.NumVertices(), h.NumVertices()), false)

	return explore.Run(s, cb)
}

// UllmannPacked is Ullmann over a Packed (bit-packed rows) matrix.
func UllmannPacked(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewUllmann(g, h, order.GreatestConstraintFirst(g), sem, vertexEq, edgeEq, compat.NewPacked(g.NumVertices(), h.NumVertices()), false)

	return explore.Run(s, cb)
}

// RI restricts candidates to the parent vertex's H-neighbourhood,
// with RDEG-CNC ordering (named "ri").
func RI(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewRI(g, h, order.RDEGCNC(g), sem, vertexEq, edgeEq, state.RIConfig{})

	return explore.Run(s, cb)
}

// RI2 is registered under its own name because the spec lists it
// separately, but it is not a distinct code path: ri2's "before-
// partitioned" restriction is exactly what topologyCondition already
// checks (see state.RIConfig's doc comment), so it is literally RI.
func RI2(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	return RI(g, h, sem, vertexEq, edgeEq, cb)
}

// RefinedRI adds the per-neighbour "exists compatible j" filter to
// Assign, on top of plain RI's candidate generation (named
// "refined_ri").
func RefinedRI(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewRI(g, h, order.RDEGCNC(g), sem, vertexEq, edgeEq, state.RIConfig{PartialRefine: true})

	return explore.Run(s, cb)
}

// RIImp additionally intersects the H-neighbourhoods of every mapped
// pattern neighbour, not just the parent (named "riimp").
func RIImp(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewRI(g, h, order.RDEGCNC(g), sem, vertexEq, edgeEq, state.RIConfig{Intersect: true})

	return explore.Run(s, cb)
}

// RIImp2 is registered under its own name for the same reason as RI2:
// the spec's own variant table lists "riimp / riimp2" as a single
// combined row, so riimp2 is literally RIImp, not a second code path.
func RIImp2(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	return RIImp(g, h, sem, vertexEq, edgeEq, cb)
}

// RILookahead gates Assign on a degree-rank comparison between x and y
// in addition to the shared topology condition (named "ri_lookahead").
func RILookahead(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewRI(g, h, order.RDEGCNC(g), sem, vertexEq, edgeEq, state.RIConfig{Lookahead: true})

	return explore.Run(s, cb)
}

// Dynamic reorders the unvisited tail at every level by fewest live
// candidates, backed by a Dense matrix (named "dynamic_mat").
func Dynamic(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewDynamic(g, h, identityOrder(g.NumVertices()), sem, vertexEq, edgeEq, compat.NewDense(g.NumVertices(), h.NumVertices()), true)

	return explore.Run(s, cb)
}

// DynamicPacked is Dynamic backed by a Packed matrix (named
// "dynamic_sorted_vector"'s compact-row counterpart).
func DynamicPacked(g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) bool {
	s := state.NewDynamic(g, h, identityOrder(g.NumVertices()), sem, vertexEq, edgeEq, compat.NewPacked(g.NumVertices(), h.NumVertices()), true)

	return explore.Run(s, cb)
}

func identityOrder(m int) []int {
	out := make([]int, m)
	for i := range out {
		out[i] = i
	}

	return out
}

var registry = map[string]MatchFunc{
	"simple":         Simple,
	"ullmann":        Ullmann,
	"ullmann_oalwna": UllmannAfterOnly,
	"ullmann_log":    UllmannLog,
	"ullmann_packed": UllmannPacked,
	"ri":             RI,
	"ri2":            RI2,
	"refined_ri":     RefinedRI,
	"riimp":          RIImp,
	"riimp2":         RIImp2,
	"ri_lookahead":   RILookahead,
	"dynamic_mat":    Dynamic,
	"dynamic_packed": DynamicPacked,
}

// Match looks up a named recipe and runs it. It is the entry point the
// CLI uses so that the binary file format and driver stay decoupled
// from any particular compile-time recipe choice.
func Match(name string, g, h *graph.Graph, sem state.Semantic, vertexEq state.VertexEq, edgeEq state.EdgeEq, cb explore.Callback) (bool, error) {
	fn, ok := registry[name]
	if !ok {
		return false, fmt.Errorf("recipe: unknown recipe %q", name)
	}

	return fn(g, h, sem, vertexEq, edgeEq, cb), nil
}

// Names returns every registered recipe name in unspecified order;
// callers needing a stable list should sort it themselves.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	return out
}
