package fixtures

import "errors"

// ErrTooFewVertices indicates a size parameter (n, n1, n2) is smaller than
// the minimum the requested shape needs.
var ErrTooFewVertices = errors.New("fixtures: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("fixtures: probability out of range")
