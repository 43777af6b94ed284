// Package bruteforce provides a reference enumerator for subgraph
// isomorphism, used only to validate the matching-state family
// against: it tries every injective function V(G) -> V(H) with no
// pruning, rather than a search strategy. Correct by inspection, not
// by performance.
package bruteforce
