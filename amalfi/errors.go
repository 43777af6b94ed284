package amalfi

import "errors"

// ErrShortRead is returned when the input ends before a complete
// uint16 value, degree count, or neighbour list has been read.
var ErrShortRead = errors.New("amalfi: short read")

// ErrTargetOutOfRange is returned when a neighbour index names a
// vertex beyond the header's declared count.
var ErrTargetOutOfRange = errors.New("amalfi: target vertex out of range")
