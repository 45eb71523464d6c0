// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// tee.go — the single internal primitive behind multi-pass replay.
//
// A Sequence never re-runs its original producer and never materializes
// its full contents. Instead, every traversal splits one forward-only
// cursor into two independent forward-only cursors that share a buffered
// backlog: one branch serves the caller, the other owns the contents of
// the next traversal. Every public operation reaches this machinery only
// through Sequence.Traverse and Sequence.Update.

package seq

import "iter"

// cursor is a single-use, forward-only pull stream of T.
// Once next reports ok=false it keeps reporting ok=false.
type cursor[T any] struct {
	next func() (T, bool)
}

// newCursor adapts an iter.Seq into a cursor. The underlying pull
// iterator is created on the first next call, so wrapping a producer
// evaluates nothing by itself. The pull's stop function is deliberately
// not retained: a cursor abandoned mid-stream may still be replayed
// through its tee sibling, so the coroutine behind iter.Pull is left for
// the garbage collector to reclaim once the cursor becomes unreachable.
func newCursor[T any](src iter.Seq[T]) *cursor[T] {
	var (
		pull func() (T, bool)
		done bool
	)
	return &cursor[T]{next: func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		if pull == nil {
			pull, _ = iter.Pull(src)
		}
		v, ok := pull()
		if !ok {
			done = true
			pull = nil
		}
		return v, ok
	}}
}

// emptyCursor returns an already-exhausted cursor.
func emptyCursor[T any]() *cursor[T] {
	return &cursor[T]{next: func() (T, bool) {
		var zero T
		return zero, false
	}}
}

// seq exposes the remainder of the cursor as a single-use iter.Seq.
// Abandoning the range loop leaves the cursor positioned after the last
// pulled element; the shared tee backlog stays consistent.
func (c *cursor[T]) seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// teeState is the backlog shared by the two branches of one tee split.
// pend[i] holds elements already pulled from src by the sibling branch
// but not yet consumed by branch i, so memory is bounded by how far the
// two branches have drifted apart, never by the length of the stream.
type teeState[T any] struct {
	src  *cursor[T]
	pend [2][]T
	done bool
}

func (t *teeState[T]) pull(branch int) (T, bool) {
	if q := t.pend[branch]; len(q) > 0 {
		v := q[0]
		t.pend[branch] = q[1:]
		return v, true
	}
	if t.done {
		var zero T
		return zero, false
	}
	v, ok := t.src.next()
	if !ok {
		t.done = true
		return v, false
	}
	t.pend[1-branch] = append(t.pend[1-branch], v)
	return v, true
}

// tee splits src into two independent cursors over the same remaining
// elements. src must not be pulled directly afterwards.
func tee[T any](src *cursor[T]) (*cursor[T], *cursor[T]) {
	st := &teeState[T]{src: src}
	a := &cursor[T]{next: func() (T, bool) { return st.pull(0) }}
	b := &cursor[T]{next: func() (T, bool) { return st.pull(1) }}
	return a, b
}

// chainSeq yields every element of each source in order. Sources are
// consumed lazily: a later source is not touched until the earlier ones
// are exhausted.
func chainSeq[T any](srcs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, src := range srcs {
			for v := range src {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// singleSeq yields exactly one value.
func singleSeq[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}
