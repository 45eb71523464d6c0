// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// transform.go — element-wise lazy transformations: Accumulate, Map,
// Filter, DropWhile, TakeWhile.
//
// Each operation consumes ONE traversal of its receiver (re-arming it for
// independent later use) and returns a brand-new Sequence. Nothing is
// evaluated at construction time; elements flow only when the result is
// traversed. Caller-supplied callbacks must be non-nil and their panics
// propagate unchanged.

package seq

// Accumulate returns the running reductions of the sequence under
// combine: the first output equals the first input element, the k-th
// output is combine applied to the previous output and the k-th input.
// An empty input yields an empty output.
//
//	Of(1, 2, 3).Accumulate(add) → 1, 3, 6
func (s *Sequence[T]) Accumulate(combine func(T, T) T) *Sequence[T] {
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		var (
			acc    T
			primed bool
		)
		for v := range src {
			if primed {
				acc = combine(acc, v)
			} else {
				acc, primed = v, true
			}
			if !yield(acc) {
				return
			}
		}
	})
}

// AccumulateFrom is Accumulate seeded with an initial accumulator: the
// first output is combine(initial, first input). The initial value itself
// is not yielded, and an empty input still yields an empty output.
func (s *Sequence[T]) AccumulateFrom(initial T, combine func(T, T) T) *Sequence[T] {
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		acc := initial
		for v := range src {
			acc = combine(acc, v)
			if !yield(acc) {
				return
			}
		}
	})
}

// Map returns a new Sequence whose elements are fn applied to each
// element of s. Package-level because Go methods cannot introduce the
// output type parameter.
func Map[A, B any](s *Sequence[A], fn func(A) B) *Sequence[B] {
	src := s.Traverse()
	return From(func(yield func(B) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// Filter returns a new Sequence keeping only the elements satisfying
// pred, in order.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		for v := range src {
			if pred(v) && !yield(v) {
				return
			}
		}
	})
}

// DropWhile returns a new Sequence that skips the leading run of
// elements satisfying pred and yields everything from the first
// non-satisfying element onward, that element included.
func (s *Sequence[T]) DropWhile(pred func(T) bool) *Sequence[T] {
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		dropping := true
		for v := range src {
			if dropping {
				if pred(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	})
}

// TakeWhile returns a new Sequence of the leading run of elements
// satisfying pred, stopping at the first element that fails it and
// pulling nothing beyond that element.
func (s *Sequence[T]) TakeWhile(pred func(T) bool) *Sequence[T] {
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		for v := range src {
			if !pred(v) || !yield(v) {
				return
			}
		}
	})
}

// NonZero returns the Go analog of a truthiness predicate: it reports
// whether an element differs from the zero value of its type. Handy as
// the argument to Filter, DropWhile and TakeWhile.
func NonZero[T comparable]() func(T) bool {
	var zero T
	return func(v T) bool { return v != zero }
}
