// SPDX-License-Identifier: MIT
// Package: lazyseq/gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Validation happens at construction time, before any element exists.

package gen

import "errors"

// ErrBadSize indicates a negative count for a finite producer
// (Range, Repeat).
// Usage: if errors.Is(err, gen.ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("gen: invalid size/length")

// ErrZeroStep indicates a zero step for Span, which would never advance.
// Usage: if errors.Is(err, gen.ErrZeroStep) { /* pick a non-zero step */ }.
var ErrZeroStep = errors.New("gen: step must be non-zero")
