// File: gonum_adapter.go
// Role: expose a *Graph as a gonum.org/v1/gonum/graph.Directed, so any
// gonum-based tool (visualizers, generic traversals) can walk a pattern
// or target graph without a bespoke adapter.
package graph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// node implements gonum/graph.Node over a plain int64 vertex index.
type node int64

func (n node) ID() int64 { return int64(n) }

// GonumView adapts a *Graph to gonum/graph.Directed. It is a thin
// wrapper that defers to the underlying *Graph; Nodes, From and To
// build a fresh []graph.Node from the adjacency data on every call.
type GonumView struct {
	g *Graph
}

// Gonum wraps g as a gonum/graph.Directed.
func Gonum(g *Graph) *GonumView { return &GonumView{g: g} }

var _ graph.Directed = (*GonumView)(nil)

// Node returns the node with the given ID, or nil if id is out of range.
func (v *GonumView) Node(id int64) graph.Node {
	if id < 0 || id >= int64(v.g.n) {
		return nil
	}
	return node(id)
}

// Nodes returns all nodes 0..n-1 in ascending order.
func (v *GonumView) Nodes() graph.Nodes {
	nodes := make([]graph.Node, v.g.n)
	for i := 0; i < v.g.n; i++ {
		nodes[i] = node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the out-neighbours of u.
func (v *GonumView) From(uid int64) graph.Nodes {
	v.g.checkVertex(int(uid))
	nbrs := v.g.out[uid]
	nodes := make([]graph.Node, len(nbrs))
	for i, w := range nbrs {
		nodes[i] = node(w)
	}
	return iterator.NewOrderedNodes(nodes)
}

// To returns the in-neighbours of v (gonum calls the target vertex "v"
// by convention; here it is the vertex id of interest).
func (v *GonumView) To(vid int64) graph.Nodes {
	v.g.checkVertex(int(vid))
	nbrs := v.g.in[vid]
	nodes := make([]graph.Node, len(nbrs))
	for i, w := range nbrs {
		nodes[i] = node(w)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports an edge in either direction between x and y.
func (v *GonumView) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports whether the directed edge uid->vid exists.
func (v *GonumView) HasEdgeFromTo(uid, vid int64) bool {
	if uid < 0 || uid >= int64(v.g.n) || vid < 0 || vid >= int64(v.g.n) {
		return false
	}
	return v.g.Edge(int(uid), int(vid))
}

// Edge returns the edge from uid to vid, or nil if none exists.
func (v *GonumView) Edge(uid, vid int64) graph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simpleEdge{from: node(uid), to: node(vid)}
}

type simpleEdge struct {
	from, to node
}

func (e simpleEdge) From() graph.Node { return e.from }
func (e simpleEdge) To() graph.Node   { return e.to }
func (e simpleEdge) ReversedEdge() graph.Edge {
	return simpleEdge{from: e.to, to: e.from}
}
