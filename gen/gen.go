// SPDX-License-Identifier: MIT
// Package: lazyseq/gen
//
// gen.go — finite and infinite element producers.
//
// Every constructor returns an iter.Seq that evaluates nothing until
// ranged over, making these the natural feed for seq.From. Finite
// producers validate their parameters up front with sentinel errors;
// the infinite ones (Count, RepeatForever, Fibonacci) are documented as
// never-terminating and must be bounded by the consumer.

package gen

import (
	"fmt"
	"iter"
)

// Range yields 0, 1, …, n-1. A negative n fails with ErrBadSize.
func Range(n int) (iter.Seq[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("Range(n=%d): %w", n, ErrBadSize)
	}
	return Span(0, n, 1)
}

// Span yields start, start+step, … up to but excluding stop, in either
// direction depending on the sign of step (half-open interval, like a
// classic stepped range). An empty interval yields nothing. A zero step
// fails with ErrZeroStep.
func Span(start, stop, step int) (iter.Seq[int], error) {
	if step == 0 {
		return nil, fmt.Errorf("Span(step=0): %w", ErrZeroStep)
	}
	return func(yield func(int) bool) {
		if step > 0 {
			for v := start; v < stop; v += step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := start; v > stop; v += step {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Count yields start, start+step, start+2·step, … without end. It never
// terminates on its own; bound it with seq.Head, seq.TakeWhile or
// seq.LengthCap.
func Count(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Repeat yields v exactly n times. A negative n fails with ErrBadSize.
func Repeat[T any](v T, n int) (iter.Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Repeat(n=%d): %w", n, ErrBadSize)
	}
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// RepeatForever yields v without end. Never terminates on its own.
func RepeatForever[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}

// Fibonacci yields 0, 1, 1, 2, 3, 5, … without end. Values wrap around
// on int overflow past the 92nd element; bound consumption well before
// that if exact values matter. Never terminates on its own.
func Fibonacci() iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 0, 1
		for yield(a) {
			a, b = b, a+b
		}
	}
}

// FromFunc adapts a raw pull function into a producer. next is called
// once per element until it reports ok=false; it is never called again
// after that within one pass over the returned Seq.
func FromFunc[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
