// Package amalfi reads the AMALFI binary graph format: a sequence of
// little-endian uint16 values — a vertex-count header, then for each
// vertex its out-degree followed by that many target indices.
//
// This is I/O-boundary code: failures here are ordinary errors, never
// panics, since a malformed file is an external-world fact rather than
// a bug in the engine.
package amalfi
