// Package gramo is a backtracking engine for subgraph isomorphism on
// finite, directed, vertex- and edge-labelled graphs.
//
// Given a pattern graph G (m vertices) and a target graph H (n ≥ m
// vertices), gramo enumerates every injective mapping φ: V(G) → V(H)
// that satisfies a chosen semantic:
//
//   - induced      — φ is an isomorphism onto the induced subgraph φ(V(G))
//   - monomorphism — every edge of G maps to an edge of H; non-edges are
//     unconstrained
//
// Two user predicates narrow matches further: a vertex-equivalence
// predicate U(u,v) and an edge-equivalence predicate E(u1,u2,v1,v2).
//
// Package layout:
//
//	graph/    — read-only, indexable directed-graph representation
//	order/    — vertex-ordering strategies (DEG, RDEG-CNC, GCF)
//	compat/   — versioned boolean compatibility matrix M
//	state/    — the matching-state family (ullmann, simple, ri family,
//	            dynamic family; no ullimp family) and the shared helpers
//	            (topology condition, neighborhood filter, Ullmann
//	            refinement) they compose
//	explore/  — the generic depth-first enumerator driving any state
//	recipe/   — named {graph, order, state, matrix} combinations
//	amalfi/   — the little-endian AMALFI binary graph format
//	cmd/gramo — a CLI that loads two AMALFI files and prints a match count
//
// The engine is single-threaded and synchronous by design: search is an
// ordinary depth-first recursion, termination is cooperative through a
// callback's return value, and there is no hidden state shared across
// goroutines.
//
//	go get github.com/katalvlaran/gramo
package gramo
