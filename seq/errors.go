// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// errors.go — sentinel errors for the seq package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Operations attach method context via %w wrapping (see seqErrorf).
//   • Argument validation happens before any traversal side effect: an
//     operation that returns a non-nil error has not advanced, re-armed,
//     or otherwise mutated its receiver.

package seq

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates an out-of-domain parameter: a negative
// tuple length r, repeat count n, cap, or index, or a slice step below 1.
// It is the only error the core itself produces; failures raised by
// caller-supplied callbacks propagate unchanged.
// Usage: if errors.Is(err, seq.ErrInvalidArgument) { /* fix the call */ }.
var ErrInvalidArgument = errors.New("seq: invalid argument")

// seqErrorf wraps ErrInvalidArgument with the offending method and value,
// producing errors of the form "Method(param=v): seq: invalid argument".
func seqErrorf(method, param string, value int) error {
	return fmt.Errorf("%s(%s=%d): %w", method, param, value, ErrInvalidArgument)
}
