package seq_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/katalvlaran/lazyseq/gen"
	"github.com/katalvlaran/lazyseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting returns a single-use producer of 0..n-1 that bumps *pulls on
// every element it produces, so tests can observe exactly how often the
// underlying generation logic ran.
func counting(n int, pulls *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*pulls++
			if !yield(i) {
				return
			}
		}
	}
}

// TestSequence_MultiPassEquivalence verifies the core contract: every
// traversal yields the same elements as the first one.
func TestSequence_MultiPassEquivalence(t *testing.T) {
	s := seq.Of(1, 2, 3)

	first := s.Collect()
	second := s.Collect()
	third := s.Collect()

	assert.Equal(t, []int{1, 2, 3}, first, "first traversal must see original contents")
	assert.Equal(t, first, second, "second traversal must equal the first")
	assert.Equal(t, first, third, "third traversal must equal the first")
}

// TestSequence_ProducerRunsOncePerElement verifies that replay is served
// from the fork backlog, never by re-running the producer.
func TestSequence_ProducerRunsOncePerElement(t *testing.T) {
	pulls := 0
	s := seq.From(counting(4, &pulls))

	assert.Equal(t, []int{0, 1, 2, 3}, s.Collect())
	assert.Equal(t, 4, pulls, "first traversal produces each element once")

	assert.Equal(t, []int{0, 1, 2, 3}, s.Collect())
	assert.Equal(t, 4, pulls, "second traversal must not re-run the producer")
}

// TestSequence_LazyConstruction verifies that wrapping a producer and
// stacking transformations evaluates nothing; only traversal pulls.
func TestSequence_LazyConstruction(t *testing.T) {
	pulls := 0
	s := seq.From(counting(3, &pulls))
	assert.Zero(t, pulls, "From must not pull")

	doubled := seq.Map(s, func(v int) int { return 2 * v })
	assert.Zero(t, pulls, "Map must not pull at construction")

	forever := doubled.CycleForever()
	assert.Zero(t, pulls, "CycleForever must not pull at construction")

	head, err := forever.Head(2)
	require.NoError(t, err)
	assert.Zero(t, pulls, "Head must not pull at construction")

	assert.Equal(t, []int{0, 2}, head.Collect(), "traversal finally evaluates")
	assert.Equal(t, 2, pulls, "only the demanded elements were produced")
}

// TestSequence_ZeroValueIsEmpty verifies that the zero value behaves as
// an empty sequence across queries and traversals.
func TestSequence_ZeroValueIsEmpty(t *testing.T) {
	var s seq.Sequence[string]

	assert.True(t, s.IsEmpty(), "zero value is empty")
	assert.Zero(t, s.Length(), "zero value has length 0")
	assert.Empty(t, s.Collect(), "zero value traversal yields nothing")
}

// TestSequence_UpdateReplacesContents verifies that Update swaps the
// producer in place, preserving object identity, and discards replay
// state of the old contents.
func TestSequence_UpdateReplacesContents(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, s.Collect())

	s.Update(slices.Values([]int{7, 8}))
	assert.Equal(t, []int{7, 8}, s.Collect(), "contents replaced in place")
	assert.Equal(t, []int{7, 8}, s.Collect(), "new contents replay as usual")
}

// TestSequence_InterleavedTraversals verifies that two cursors obtained
// before either is consumed both see the full contents.
func TestSequence_InterleavedTraversals(t *testing.T) {
	s := seq.Of(1, 2, 3)
	t1 := s.Traverse()
	t2 := s.Traverse()

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(t1))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(t2))
}

// TestSequence_AbandonedTraversalIsSafe verifies that breaking out of a
// traversal leaves the receiver consistent for future passes.
func TestSequence_AbandonedTraversalIsSafe(t *testing.T) {
	s := seq.Of(1, 2, 3, 4)
	for v := range s.Traverse() {
		if v == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4}, s.Collect(), "abandonment must not lose elements")
}

// TestSequence_Length verifies the exact count over finite contents.
func TestSequence_Length(t *testing.T) {
	assert.Zero(t, seq.New[int]().Length())
	assert.Equal(t, 5, seq.Of(0, 1, 2, 3, 4).Length())
}

// TestSequence_LengthCap verifies the capped count: min(cap, length) in
// work proportional to the result, including against an infinite
// producer — the safe alternative to Length, which diverges by design
// when the receiver is unbounded.
func TestSequence_LengthCap(t *testing.T) {
	s := seq.Of(1, 2, 3)

	n, err := s.LengthCap(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "cap below length returns cap")

	n, err = s.LengthCap(10)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "cap above length returns true length")

	n, err = s.LengthCap(0)
	require.NoError(t, err)
	assert.Zero(t, n, "cap 0 is free")

	naturals := seq.From(gen.Count(0, 1))
	n, err = naturals.LengthCap(5)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "capped length terminates against an infinite producer")
}

// TestSequence_LengthCapNegative verifies the argument check fires
// before any traversal.
func TestSequence_LengthCapNegative(t *testing.T) {
	pulls := 0
	s := seq.From(counting(3, &pulls))

	_, err := s.LengthCap(-1)
	assert.ErrorIs(t, err, seq.ErrInvalidArgument, "negative cap must be rejected")
	assert.Zero(t, pulls, "failed validation must not touch the producer")
	assert.Equal(t, []int{0, 1, 2}, s.Collect(), "receiver unchanged after rejected call")
}

// TestSequence_IsEmptyIdempotent verifies the emptiness probe pulls at
// most one element and does not change what later traversals yield.
func TestSequence_IsEmptyIdempotent(t *testing.T) {
	pulls := 0
	s := seq.From(counting(3, &pulls))

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, pulls, "emptiness check evaluates at most one element")
	assert.Equal(t, []int{0, 1, 2}, s.Collect(), "probe must not alter contents")

	assert.True(t, seq.New[int]().IsEmpty())
}

// TestSequence_ContainsShortCircuits verifies membership stops producing
// on the first match and leaves the receiver reusable.
func TestSequence_ContainsShortCircuits(t *testing.T) {
	pulls := 0
	s := seq.From(counting(100, &pulls))

	assert.True(t, seq.Contains(s, 2))
	assert.Equal(t, 3, pulls, "match at position 2 must stop after three elements")

	assert.False(t, seq.Contains(s, 1000), "miss requires a full traversal")
	assert.Equal(t, []int{0, 1}, func() []int { h, _ := s.Head(2); return h.Collect() }())
}

// TestSequence_ContainsFunc verifies predicate-based membership.
func TestSequence_ContainsFunc(t *testing.T) {
	s := seq.Of("ant", "bee", "cat")
	assert.True(t, s.ContainsFunc(func(v string) bool { return v == "bee" }))
	assert.False(t, s.ContainsFunc(func(v string) bool { return v == "dog" }))
}

// TestSequence_FromFunc verifies construction from a raw pull function.
func TestSequence_FromFunc(t *testing.T) {
	i := 0
	s := seq.FromFunc(func() (int, bool) {
		if i == 3 {
			return 0, false
		}
		i++
		return i * 10, true
	})

	assert.Equal(t, []int{10, 20, 30}, s.Collect())
	assert.Equal(t, []int{10, 20, 30}, s.Collect(), "pull function is not re-run on replay")
}

// TestSequence_SideEffectingProducerFiresOnce verifies the documented
// contract for side-effecting producers: effects fire exactly once per
// element no matter how many traversals occur.
func TestSequence_SideEffectingProducerFiresOnce(t *testing.T) {
	var log []int
	src := func(yield func(int) bool) {
		for _, v := range []int{5, 6} {
			log = append(log, v)
			if !yield(v) {
				return
			}
		}
	}
	s := seq.From(src)

	for i := 0; i < 3; i++ {
		assert.Equal(t, []int{5, 6}, s.Collect())
	}
	assert.Equal(t, []int{5, 6}, log, "side effects fired exactly once per element")
}
