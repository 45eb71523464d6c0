// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// combinatorics.go — combinatorial expansion: Combinations,
// CombinationsWithReplacement, Permutations, PermutationsN, Cycle,
// CycleForever.
//
// Tuple operations follow the classic index-vector algorithms, emitting
// tuples in lexicographic order of input positions. The element pool is
// buffered lazily, on the first pull of the result, never at construction
// time. Each emitted tuple is a fresh slice the caller may retain.

package seq

import (
	"iter"
	"slices"
)

// Combinations returns all length-r subsequences of the sequence's
// elements, in lexicographic order by input position. r greater than the
// sequence length yields an empty result; r = 0 yields a single empty
// tuple. A negative r fails with ErrInvalidArgument.
//
// Package-level like Map and GroupBy: a method on Sequence[T] producing
// Sequence[[]T] would force the compiler to instantiate Sequence[[][]T],
// Sequence[[][][]T], … without end.
//
// Complexity: C(n, r) tuples; O(n + r) extra space beyond the output.
func Combinations[T any](s *Sequence[T], r int) (*Sequence[[]T], error) {
	if r < 0 {
		return nil, seqErrorf("Combinations", "r", r)
	}
	return From(combinationSeq(s.Traverse(), r, false)), nil
}

// CombinationsWithReplacement is Combinations with elements allowed to
// repeat within a tuple, so positions are non-decreasing rather than
// strictly increasing. Same error policy.
func CombinationsWithReplacement[T any](s *Sequence[T], r int) (*Sequence[[]T], error) {
	if r < 0 {
		return nil, seqErrorf("CombinationsWithReplacement", "r", r)
	}
	return From(combinationSeq(s.Traverse(), r, true)), nil
}

func combinationSeq[T any](src iter.Seq[T], r int, replacement bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := slices.Collect(src)
		n := len(pool)
		if replacement {
			if n == 0 && r > 0 {
				return
			}
		} else if r > n {
			return
		}
		idx := make([]int, r)
		if !replacement {
			for i := range idx {
				idx[i] = i
			}
		}
		for {
			tuple := make([]T, r)
			for i, j := range idx {
				tuple[i] = pool[j]
			}
			if !yield(tuple) {
				return
			}
			// Advance the index vector to the next tuple, scanning from
			// the right for the first position that can still move.
			i := r - 1
			if replacement {
				for ; i >= 0 && idx[i] == n-1; i-- {
				}
				if i < 0 {
					return
				}
				v := idx[i] + 1
				for j := i; j < r; j++ {
					idx[j] = v
				}
			} else {
				for ; i >= 0 && idx[i] == i+n-r; i-- {
				}
				if i < 0 {
					return
				}
				idx[i]++
				for j := i + 1; j < r; j++ {
					idx[j] = idx[j-1] + 1
				}
			}
		}
	}
}

// Permutations returns all full-length orderings of the sequence's
// elements, in lexicographic order by input position. Package-level for
// the same instantiation reason as Combinations.
//
// Complexity: n! tuples; use PermutationsN to bound the tuple length.
func Permutations[T any](s *Sequence[T]) *Sequence[[]T] {
	return From(permutationSeq(s.Traverse(), fullLength))
}

// PermutationsN returns all length-r orderings. r greater than the
// sequence length yields an empty result; r = 0 yields a single empty
// tuple. A negative r fails with ErrInvalidArgument.
func PermutationsN[T any](s *Sequence[T], r int) (*Sequence[[]T], error) {
	if r < 0 {
		return nil, seqErrorf("PermutationsN", "r", r)
	}
	return From(permutationSeq(s.Traverse(), r)), nil
}

// fullLength asks permutationSeq to use the pool length as r, which is
// only known after the pool has been buffered.
const fullLength = -1

func permutationSeq[T any](src iter.Seq[T], r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := slices.Collect(src)
		n := len(pool)
		if r == fullLength {
			r = n
		}
		if r > n {
			return
		}
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		cycles := make([]int, r)
		for i := range cycles {
			cycles[i] = n - i
		}
		emit := func() bool {
			tuple := make([]T, r)
			for i := 0; i < r; i++ {
				tuple[i] = pool[indices[i]]
			}
			return yield(tuple)
		}
		if !emit() {
			return
		}
		for {
			i := r - 1
			for ; i >= 0; i-- {
				cycles[i]--
				if cycles[i] == 0 {
					// Rotate indices[i:] left by one and reset the cycle.
					first := indices[i]
					copy(indices[i:], indices[i+1:])
					indices[n-1] = first
					cycles[i] = n - i
					continue
				}
				j := n - cycles[i]
				indices[i], indices[j] = indices[j], indices[i]
				if !emit() {
					return
				}
				break
			}
			if i < 0 {
				return
			}
		}
	}
}

// Cycle returns a new Sequence repeating the receiver's full contents n
// times. Each repetition is a fresh traversal of the receiver, taken
// lazily when the repetition begins, so in-place changes to the receiver
// become visible to repetitions that have not started yet. A negative n
// fails with ErrInvalidArgument; Cycle(0) is empty.
func (s *Sequence[T]) Cycle(n int) (*Sequence[T], error) {
	if n < 0 {
		return nil, seqErrorf("Cycle", "n", n)
	}
	recv := s
	return From(func(yield func(T) bool) {
		for round := 0; round < n; round++ {
			for v := range recv.Traverse() {
				if !yield(v) {
					return
				}
			}
		}
	}), nil
}

// CycleForever returns a new Sequence repeating the receiver's contents
// indefinitely. Constructing it evaluates nothing; fully traversing it
// never terminates, by definition. Every whole-sequence query on the
// result (Length, Collect, ConsumeAll, a missing-value Contains) diverges
// by design — bound it first with Head, Slice, TakeWhile or LengthCap.
// A CycleForever of an empty sequence also diverges when pulled, spinning
// through empty repetitions without ever producing an element.
func (s *Sequence[T]) CycleForever() *Sequence[T] {
	recv := s
	return From(func(yield func(T) bool) {
		for {
			for v := range recv.Traverse() {
				if !yield(v) {
					return
				}
			}
		}
	})
}
