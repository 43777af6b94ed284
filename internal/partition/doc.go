// Package partition maintains, for a fixed pattern graph G, a mutable
// before/after partition of every vertex's neighbour lists — the
// "orderable" behaviour of §4.1, owned by the matching state instead of
// the graph (design note §9: "move the mid-pointer array into the
// state, leaving the graph immutable; the state owns the partition").
//
// Push(u) marks pattern vertex u as visited: in every neighbour list
// that contains u, u is rotated into the "before" side and that list's
// mid pointer advances past it. Pop(u) reverses the most recent Push in
// LIFO order, restoring both the partition and the internal vertex
// arrangement exactly.
//
// Complexity: Push/Pop cost O(deg(u)) — one O(1) swap per neighbour
// relationship touched. Before/After queries are O(1) slice reads.
package partition
