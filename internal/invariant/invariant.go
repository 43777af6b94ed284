// Package invariant centralizes the "this can only happen on a bug"
// checks used throughout the engine. A violated invariant is not a
// recoverable error: callers panic immediately rather than thread a
// spurious error return through every hot-path call.
package invariant

import "fmt"

// Check panics with a formatted message if cond is false.
func Check(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
