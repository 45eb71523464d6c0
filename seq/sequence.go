// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// sequence.go — the Sequence type: construction, refresh, traversal,
// and the whole-sequence queries (Collect, Length, Contains, IsEmpty).

package seq

import (
	"iter"
	"slices"
)

// Sequence is a lazily-evaluated, repeatedly traversable ordered sequence.
//
// It bridges the gap between a one-shot iterator (forward-only, consumed
// once) and a materialized slice (fully buffered): a Sequence can be
// traversed any number of times, yet only ever buffers as much as one
// traversal's drift requires, and its producer is pulled at most once and
// only on demand.
//
// Every traversal observes the same logical contents as the first one,
// regardless of how many traversals came before (multi-pass invariant).
// Transformations return brand-new Sequences and leave the receiver
// independently usable; Append, Prepend, Insert, Extend, Consume and
// ConsumeAll mutate the receiver in place instead.
//
// A Sequence exclusively owns its producer and replay state. It is safe
// to traverse distinct Sequences from distinct goroutines, but a single
// Sequence must only ever be driven by one goroutine: Traverse re-arms
// internal state as a side effect, and that side effect is deliberately
// unsynchronized (single-threaded, cooperative evaluation).
//
// The zero value is an empty sequence.
type Sequence[T any] struct {
	items   *cursor[T] // serves the current traversal
	reserve *cursor[T] // owns the contents of the next traversal
}

// New returns an empty Sequence.
func New[T any]() *Sequence[T] {
	s := &Sequence[T]{}
	s.refresh(emptyCursor[T]())
	return s
}

// Of returns a Sequence over the given values.
func Of[T any](items ...T) *Sequence[T] {
	return From(slices.Values(items))
}

// From returns a Sequence over an arbitrary producer. The producer may be
// finite or infinite, single-use or reusable, and may carry side effects:
// it is pulled at most once, lazily, as traversals demand elements.
func From[T any](src iter.Seq[T]) *Sequence[T] {
	s := &Sequence[T]{}
	s.Update(src)
	return s
}

// FromFunc returns a Sequence over a raw pull function. next must keep
// returning ok=false once exhausted.
func FromFunc[T any](next func() (T, bool)) *Sequence[T] {
	s := &Sequence[T]{}
	s.refresh(&cursor[T]{next: next})
	return s
}

// Update replaces the receiver's producer in place, discarding all prior
// replay state. Object identity is preserved: existing references to the
// Sequence observe the new contents on their next traversal.
func (s *Sequence[T]) Update(src iter.Seq[T]) {
	s.refresh(newCursor(src))
}

// refresh re-arms the sequence from a single cursor by splitting it into
// the (items, reserve) pair. Used by every constructor and every in-place
// operation.
func (s *Sequence[T]) refresh(c *cursor[T]) {
	s.items, s.reserve = tee(c)
}

// ensure makes the zero value behave as an empty sequence.
func (s *Sequence[T]) ensure() {
	if s.items == nil {
		s.refresh(emptyCursor[T]())
	}
}

// traverse hands out the cursor serving the current traversal and
// atomically re-arms the receiver for the one after it. The handed-out
// cursor is a strictly longer chain of tee splits on every call, but each
// split buffers only the drift between its two branches, so no eager
// materialization ever happens.
func (s *Sequence[T]) traverse() *cursor[T] {
	s.ensure()
	cur := s.items
	s.refresh(s.reserve)
	return cur
}

// Traverse returns one complete forward pass over the current logical
// contents as a single-use iter.Seq, and re-arms the receiver so that the
// next Traverse observes the same contents again.
//
// The returned Seq must be ranged over at most once. Abandoning it midway
// (break, early return) is always safe and leaves the receiver consistent.
func (s *Sequence[T]) Traverse() iter.Seq[T] {
	return s.traverse().seq()
}

// Collect materializes one traversal into a fresh slice.
// Diverges by design when the receiver is unbounded; bound it first with
// Head, Slice or TakeWhile.
func (s *Sequence[T]) Collect() []T {
	return slices.Collect(s.Traverse())
}

// Length returns the exact number of elements, which costs one full
// traversal. Diverges by design when the receiver is unbounded (e.g.
// built from CycleForever or an infinite producer); use LengthCap as the
// safe path.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Sequence[T]) Length() int {
	n := 0
	for range s.Traverse() {
		n++
	}
	return n
}

// LengthCap returns min(cap, Length()) while pulling at most cap
// elements, so it terminates in O(cap) even against an infinite producer.
// A negative cap fails with ErrInvalidArgument.
func (s *Sequence[T]) LengthCap(cap int) (int, error) {
	if cap < 0 {
		return 0, seqErrorf("LengthCap", "cap", cap)
	}
	if cap == 0 {
		return 0, nil
	}
	n := 0
	for range s.Traverse() {
		n++
		if n == cap {
			break
		}
	}
	return n, nil
}

// IsEmpty reports whether the sequence has no elements, pulling at most
// one element of evaluation. It does not change what later traversals
// yield.
func (s *Sequence[T]) IsEmpty() bool {
	n, _ := s.LengthCap(1)
	return n == 0
}

// ContainsFunc reports whether some element of one traversal satisfies
// pred, short-circuiting on the first match.
func (s *Sequence[T]) ContainsFunc(pred func(T) bool) bool {
	for v := range s.Traverse() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Contains reports whether value occurs in the sequence. It
// short-circuits on the first match; on a miss it costs one full
// traversal and therefore diverges on an unbounded receiver that never
// produces value.
func Contains[T comparable](s *Sequence[T], value T) bool {
	return s.ContainsFunc(func(v T) bool { return v == value })
}
