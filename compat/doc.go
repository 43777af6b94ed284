// Package compat implements the versioned compatibility matrix M used by
// the matching-state family (package state): an m×n boolean matrix where
// M(i,j)=1 means target vertex j is currently a feasible candidate for
// pattern vertex i.
//
// M supports a stack of version frames: Advance opens a new frame, and a
// matching Revert restores M to exactly the state it had when that frame
// was opened, undoing any Set/Unset performed since. Frames nest:
// Advance/Revert pairs behave like balanced parentheses.
//
// Three implementations satisfy the same Matrix interface:
//
//   - Dense  — frame-copy: Advance snapshots the whole current frame;
//     Revert restores the snapshot. O(m*n) per level, O(1) per Set/Unset.
//   - Log    — log-replay: a single live frame plus a stack of cleared
//     cell indices; Advance records a checkpoint, Revert replays undos
//     back to it. O(1) amortized per level, O(changes) per Revert.
//   - Packed — like Dense, but each row is packed into []uint64 words
//     instead of one bool per cell; Get/Set/Unset use shift-and-mask
//     for O(1) bit tests and flips, and Row(i) walks set bits via
//     bits.TrailingZeros64 instead of scanning one cell at a time.
//
// Every implementation also maintains a live-cell count per row
// (NumCandidates) incrementally, so property test 9 (NumCandidates(i)
// == Σ_j Get(i,j)) holds at all times without a re-scan.
package compat
