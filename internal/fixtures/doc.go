// Package fixtures builds structured *graph.Graph instances for tests and
// benchmarks — paths, cycles, complete graphs, stars, complete bipartite
// graphs and Erdos-Renyi random graphs — adapted from the teacher's named-
// constructor generators over the dense int-indexed domain these packages
// use instead of string-keyed vertices.
//
// Every constructor here is deterministic given its arguments (and, for
// Random, a seeded *rand.Rand), matching the determinism contract the
// teacher's generators document: same inputs, same edge set, every time.
package fixtures
