// SPDX-License-Identifier: MIT
// Package: lazyseq/seq
//
// group.go — consecutive-run grouping.

package seq

// Group is one consecutive run of equal-keyed elements, as yielded by
// GroupBy. Items is a fresh, independent Sequence: it does not alias the
// parent and survives the parent's further iteration.
type Group[K comparable, T any] struct {
	Key   K
	Items *Sequence[T]
}

// GroupBy returns a Sequence of (key, subgroup) pairs over consecutive
// runs of elements sharing the same key value.
//
// Grouping is consecutive-only, never a full partition: non-adjacent
// equal keys form separate groups, exactly like single-pass grouping over
// a stream. Callers wanting a partition must pre-sort by key themselves;
// GroupBy deliberately preserves input order instead of "fixing" it.
//
//	GroupBy(Of(1, 1, 2, 2, 1), identity) → (1,[1 1]) (2,[2 2]) (1,[1])
//
// Each subgroup is buffered as its run is read off the input, so a group
// with unboundedly many equal-keyed elements in a row cannot be yielded;
// the outer sequence itself stays lazy from run to run. key must be
// non-nil; its panics propagate unchanged.
//
// Package-level because Go methods cannot introduce the key type
// parameter.
func GroupBy[T any, K comparable](s *Sequence[T], key func(T) K) *Sequence[Group[K, T]] {
	src := s.Traverse()
	return From(func(yield func(Group[K, T]) bool) {
		var (
			run     []T
			current K
			open    bool
		)
		for v := range src {
			k := key(v)
			if open && k != current {
				if !yield(Group[K, T]{Key: current, Items: Of(run...)}) {
					return
				}
				run = nil
			}
			current, open = k, true
			run = append(run, v)
		}
		if open {
			yield(Group[K, T]{Key: current, Items: Of(run...)})
		}
	})
}
