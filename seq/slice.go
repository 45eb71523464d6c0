// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// slice.go — positional operations: Slice, Head, Tail, At, Consume.

package seq

import "iter"

// End marks an unbounded stop position for Slice.
const End = -1

// Slice returns the lazy sub-sequence of positions start, start+step,
// start+2·step, … strictly below stop (half-open interval). stop may be
// End for "until exhaustion". Defaults of the classic slicing triple are
// therefore Slice(0, End, 1).
//
// Fails with ErrInvalidArgument when start < 0, stop < End, or step < 1,
// without touching the receiver.
func (s *Sequence[T]) Slice(start, stop, step int) (*Sequence[T], error) {
	switch {
	case start < 0:
		return nil, seqErrorf("Slice", "start", start)
	case stop < End:
		return nil, seqErrorf("Slice", "stop", stop)
	case step < 1:
		return nil, seqErrorf("Slice", "step", step)
	}
	return From(sliceSeq(s.Traverse(), start, stop, step)), nil
}

// sliceSeq implements the half-open positional window over one traversal.
// It stops pulling from src as soon as the window is provably exhausted.
func sliceSeq[T any](src iter.Seq[T], start, stop, step int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if stop != End && start >= stop {
			return
		}
		pos, want := 0, start
		for v := range src {
			if pos == want {
				if !yield(v) {
					return
				}
				want += step
				if stop != End && want >= stop {
					return
				}
			}
			pos++
		}
	}
}

// Head returns the first n elements (fewer if the sequence is shorter).
// A negative n fails with ErrInvalidArgument.
func (s *Sequence[T]) Head(n int) (*Sequence[T], error) {
	if n < 0 {
		return nil, seqErrorf("Head", "n", n)
	}
	return From(sliceSeq(s.Traverse(), 0, n, 1)), nil
}

// Tail returns the last n elements. Internally it keeps a ring buffer of
// at most min(n, length) slots, so memory stays bounded even when the
// receiver is arbitrarily long; the drain that fills the ring is deferred
// to the first pull of the result. Like every "last element" query, Tail
// diverges when traversed over an unbounded receiver.
// A negative n fails with ErrInvalidArgument.
func (s *Sequence[T]) Tail(n int) (*Sequence[T], error) {
	if n < 0 {
		return nil, seqErrorf("Tail", "n", n)
	}
	src := s.Traverse()
	return From(func(yield func(T) bool) {
		if n == 0 {
			return
		}
		ring := make([]T, 0, n)
		head := 0 // index of the oldest element once the ring is full
		for v := range src {
			if len(ring) < n {
				ring = append(ring, v)
				continue
			}
			ring[head] = v
			head = (head + 1) % n
		}
		for i := range ring {
			if !yield(ring[(head+i)%len(ring)]) {
				return
			}
		}
	}), nil
}

// At returns the element at the given 0-based position. ok=false reports
// an out-of-range index, which is not an error: it stands in for the
// caller's own default. A negative index fails with ErrInvalidArgument.
//
// Costs one traversal of at most index+1 elements; the receiver stays
// independently usable afterwards.
func (s *Sequence[T]) At(index int) (v T, ok bool, err error) {
	if index < 0 {
		var zero T
		return zero, false, seqErrorf("At", "index", index)
	}
	pos := 0
	for el := range s.Traverse() {
		if pos == index {
			return el, true, nil
		}
		pos++
	}
	var zero T
	return zero, false, nil
}

// Consume advances the sequence past its first n elements in place,
// without yielding them: the receiver's contents become everything after
// position n-1. Consuming past the end leaves an empty sequence.
// A negative n fails with ErrInvalidArgument and leaves the receiver
// untouched.
func (s *Sequence[T]) Consume(n int) error {
	if n < 0 {
		return seqErrorf("Consume", "n", n)
	}
	cur := s.traverse()
	for i := 0; i < n; i++ {
		if _, ok := cur.next(); !ok {
			break
		}
	}
	s.refresh(cur)
	return nil
}

// ConsumeAll drains the sequence entirely in place, leaving it empty.
// Diverges by design when the receiver is unbounded.
func (s *Sequence[T]) ConsumeAll() {
	cur := s.traverse()
	for {
		if _, ok := cur.next(); !ok {
			break
		}
	}
	s.refresh(cur)
}
