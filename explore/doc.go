// Package explore implements the generic depth-first search driver:
// a single recursive function parameterised by a state.State and a
// Callback, with no knowledge of which matching-state variant or
// compatibility-matrix representation is in play.
package explore
