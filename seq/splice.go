// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// splice.go — concatenation and in-place splicing: Concat, ConcatBefore,
// Extend, Append, Prepend, Insert.

package seq

import "iter"

// Concat returns a new Sequence of the receiver's contents followed by
// other. other is pulled lazily, and only after the receiver's traversal
// is exhausted.
func (s *Sequence[T]) Concat(other iter.Seq[T]) *Sequence[T] {
	return From(chainSeq(s.Traverse(), other))
}

// ConcatBefore returns a new Sequence of other followed by the
// receiver's contents — the mirror image of Concat for when the receiver
// belongs on the right.
func (s *Sequence[T]) ConcatBefore(other iter.Seq[T]) *Sequence[T] {
	return From(chainSeq(other, s.Traverse()))
}

// Extend appends the elements of other to the receiver in place,
// preserving object identity.
func (s *Sequence[T]) Extend(other iter.Seq[T]) {
	s.Update(chainSeq(s.Traverse(), other))
}

// Append adds item to the end of the sequence in place.
func (s *Sequence[T]) Append(item T) {
	s.Extend(singleSeq(item))
}

// Prepend adds item to the start of the sequence in place.
func (s *Sequence[T]) Prepend(item T) {
	s.Update(chainSeq(singleSeq(item), s.Traverse()))
}

// Insert splices item in at the given 0-based position in place, so that
// a following traversal yields the first index elements, then item, then
// the rest. An index beyond the end simply appends. The splice costs two
// deferred traversals of the receiver's prior contents: one for the
// prefix, one skipped up to the suffix. A negative index fails with
// ErrInvalidArgument and leaves the receiver untouched.
func (s *Sequence[T]) Insert(index int, item T) error {
	if index < 0 {
		return seqErrorf("Insert", "index", index)
	}
	prefix := sliceSeq(s.Traverse(), 0, index, 1)
	suffix := sliceSeq(s.Traverse(), index, End, 1)
	s.Update(chainSeq(prefix, singleSeq(item), suffix))
	return nil
}
