// Package recipe exposes fixed combinations of {graph type, vertex
// order, matching state, compatibility matrix} as named entry points,
// so callers never have to assemble a state.State by hand.
//
// Every recipe shares the same Match signature: it enumerates every
// mapping from pattern G onto target H under the given Semantic and
// user predicates, invoking cb for each and stopping early if cb
// returns false.
package recipe
