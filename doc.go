// Package lazyseq is your in-memory toolkit for lazy, repeatedly
// traversable sequences — pipelines that compose like collections but
// evaluate like iterators.
//
// 🚀 What is lazyseq?
//
//	A modern, pull-based library built on Go 1.23 iterators that brings
//	together:
//		• Sequence[T]: iterate the same logical contents any number of
//		  times while the producer runs at most once, on demand
//		• Lazy transformations: Accumulate, Map, Filter, DropWhile, TakeWhile
//		• Positional tools: Slice, Head, bounded-memory Tail, At, Consume
//		• Combinatorics: Combinations, Permutations, Cycle
//		• Consecutive grouping: GroupBy with independent subgroups
//		• Splicing: Concat, Extend, Append, Prepend, Insert
//		• Producers: ranges, counters and endless series in gen/
//
// ✨ Why choose lazyseq?
//
//   - One-shot sources become multi-pass – no re-running side effects,
//     no full materialization
//   - Infinite-friendly – capped queries (LengthCap, Head) stay bounded
//     against unbounded producers
//   - Pure Go – no cgo, pull-based iter.Seq all the way down
//   - Predictable failure surface – one sentinel (ErrInvalidArgument),
//     validated before any traversal begins
//
// Everything is organized under two subpackages:
//
//	seq/ — the Sequence type, its replay mechanism and all operations
//	gen/ — finite and infinite element producers that feed seq.From
//
// Quick taste:
//
//	s := seq.Of(1, 2, 3)
//	fmt.Println(s.Accumulate(add).Collect()) // [1 3 6]
//	fmt.Println(s.Collect())                 // [1 2 3], as many times as you like
//
// Dive into the scenario programs in examples/ and the per-package
// doc.go files for contracts, complexity notes and divergence hazards.
package lazyseq
