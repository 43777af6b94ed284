// Package graph provides a read-only, indexable representation of a
// finite directed graph over the dense vertex set {0, ..., n-1}.
//
// What & Why:
//
//	The matching engine (package state) needs bidirectional,
//	O(log d)-or-better adjacency queries over both the pattern graph G
//	and the target graph H. A *Graph stores, per vertex, its sorted
//	out-neighbours and in-neighbours, and — when built with
//	WithComplement — the complementary "non-out" and "non-in" lists
//	(the engine's own neighborhood filter tests non-edges with Edge
//	instead of reading these lists).
//
//	Graphs are immutable after construction: every neighbour slice is
//	sorted once and never mutated again, so a *Graph may be shared
//	freely (including across the pattern/target pair of a single
//	search and across concurrent searches, though the engine itself is
//	single-threaded — see package explore).
//
// Self-loops: an edge (u, u) is a real edge and appears in out[u] and
// in[u]; it never appears in the complementary non-out[u]/non-in[u]
// lists, because those lists exclude u itself by construction. This
// pins the convention flagged as an open question in the source
// material: self-loops are edges, never non-edges.
//
// Complexity:
//
//	New:              O(V + E log E) (sorting neighbour lists).
//	Edge:             O(log d) via binary search over a sorted slice.
//	OutDegree/InDegree: O(1).
//	OutNeighbors/InNeighbors/NonOutNeighbors/NonInNeighbors: O(1), returns
//	  a read-only slice aliasing internal storage — callers must not mutate it.
package graph
