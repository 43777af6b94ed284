// Package order computes a total vertex order on the pattern graph G: a
// permutation of {0, ..., m-1} that the matching engine (package state)
// processes in sequence during the depth-first search.
//
// Three strategies are provided, each a pure function *graph.Graph ->
// []int computed once at search start (dynamic states in package state
// may reorder the unexplored tail at every level; that reordering is a
// search-time concern, not a package order concern):
//
//   - DEG          — decreasing total degree, ties broken by index.
//   - RDEGCNC      — iteratively picks the unordered vertex with the
//     greatest count of already-ordered neighbours, breaking ties on a
//     clustering-plus-degree score.
//   - GreatestConstraintFirst (GCF) — picks, at each step, the unchosen
//     vertex maximising (visited-neighbour count, neighbourhood size,
//     unvisited-neighbour count) lexicographically.
//
// Complexity: DEG is O(m log m). RDEGCNC is O(m^2 + m * maxdeg^2) (the
// clustering score is computed once per vertex up front). GCF is
// O(m^2 * maxdeg^2) (every step re-ranks every unchosen vertex).
package order
