// Package state implements the matching-state family: the per-node
// search state the explore driver advances and backtracks through.
//
// Every variant implements State — empty/full/candidates/advance/
// assign/push/pop/revert — as a single concrete struct rather than a
// base/mono/induced type hierarchy; Semantic is a runtime tag read by
// the free functions in helpers.go, which every variant composes:
// topologyCondition, neighborhoodFilter, ullmannRefine and
// partialUllmannRefine. (helpers.go also defines parentOf, which no
// variant calls; RIState computes its parent restriction in Candidates.)
//
// Four families cover the documented variant catalogue:
//
//	Simple   - no compatibility matrix; candidates are every unmatched
//	           H vertex; feasibility is topologyCondition plus degree
//	           bounds. Corresponds to "simple".
//	Ullmann  - row x of a fully Ullmann-refined compatibility matrix;
//	           NewUllmann's afterOnly flag selects the "oalwna" after-only
//	           restriction. Corresponds to "ullmann", "ullmann_oalwna".
//	RI       - candidates drawn from the parent vertex's H-neighbours
//	           when x has a visited neighbour, else every unmatched H
//	           vertex; Config selects among ri, ri2, riimp, riimp2,
//	           refined_ri and ri_lookahead. The ullimp* family is NOT
//	           covered here: ullimp2/3/4 and ullimp_ri/ullimp_no_after
//	           are M-centric (their candidates and propagation are
//	           defined in terms of the compatibility matrix row M[x]),
//	           and RIState has no matrix field, so they are not
//	           expressible as an RIConfig combination.
//	Dynamic  - re-selects the next pattern vertex at every level by
//	           minimum live-candidate count instead of a fixed order;
//	           corresponds to the dynamic_* family.
//
// Each family is offered under both Mono and Induced semantics via the
// Semantic tag passed to its constructor, per design note on collapsing the source's deep type
// hierarchy into tag-selected behaviour on a handful of structs.
package state
