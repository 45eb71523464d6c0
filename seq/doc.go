// Package seq provides Sequence — a lazily-evaluated, repeatedly
// traversable sequence abstraction bridging the gap between a one-shot
// iterator and a fully materialized slice.
//
// 🚀 What is a Sequence?
//
//	A Go iter.Seq can usually be ranged over once; a slice can be ranged
//	forever but buffers everything up front. Sequence sits in between:
//	  • traverse the same logical contents any number of times
//	  • buffer only what a traversal has actually produced so far
//	  • compose ~20 lazy operations that return new Sequences
//	  • feed it finite or infinite producers alike
//
// ✨ How replay works (the one non-trivial mechanism):
//
//	Each traversal splits the current producer cursor into two
//	independent forward-only cursors sharing a buffered backlog
//	(itertools.tee style): one branch serves the caller, the other owns
//	the next traversal's contents. The original producer is pulled at
//	most once and never re-run, so producer side effects fire exactly
//	once per element, on demand. Every traversal after the first rides a
//	strictly longer chain of splits — never an eager copy.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lazyseq/gen"
//	  "github.com/katalvlaran/lazyseq/seq"
//	)
//
//	s := seq.Of(1, 2, 3)
//	sums := s.Accumulate(func(a, b int) int { return a + b })
//	fmt.Println(sums.Collect()) // [1 3 6]
//	fmt.Println(sums.Collect()) // [1 3 6] — traversable again
//	fmt.Println(s.Collect())    // [1 2 3] — receiver untouched
//
//	nat := seq.From(gen.Count(0, 1)) // infinite
//	n, _ := nat.LengthCap(5)         // 5, in bounded time
//
// Operation families:
//
//	transform      — Accumulate, AccumulateFrom, Map, Filter, DropWhile, TakeWhile
//	positional     — Slice, Head, Tail, At, Consume, ConsumeAll
//	combinatorial  — Combinations, CombinationsWithReplacement, Permutations, PermutationsN, Cycle, CycleForever
//	grouping       — GroupBy (consecutive runs only, never a full partition)
//	splicing       — Concat, ConcatBefore, Extend, Append, Prepend, Insert
//	queries        — Length, LengthCap, IsEmpty, Contains, ContainsFunc, Collect
//
// ⚠️ Divergence hazards (documented, not errors):
//
//	Length, Collect, ConsumeAll and a missing-value Contains each need a
//	full traversal, so they never return when the receiver is unbounded
//	(built from an infinite producer or CycleForever). The capped and
//	bounded variants (LengthCap, Head, Slice, TakeWhile) are the safe
//	defaults; unbounded variants are flagged in their own documentation.
//
// Concurrency: none, by design. Evaluation is single-threaded and
// cooperative; a Sequence must be driven by one goroutine only, though
// distinct Sequences are fully independent of each other.
package seq
