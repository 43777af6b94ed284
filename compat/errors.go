package compat

import "errors"

// ErrUnbalancedRevert indicates Revert was called without a matching,
// still-open Advance. It is a programming error in the caller (the
// explore driver always pairs Advance with exactly one Revert per
// candidate), so state code should treat it as a bug report, not a
// recoverable condition.
var ErrUnbalancedRevert = errors.New("compat: revert without matching advance")
