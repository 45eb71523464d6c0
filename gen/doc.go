// Package gen builds the element producers that feed seq.From — stepped
// ranges, repetition, counters and a few classic endless series.
//
// ✨ Key points:
//   - every constructor returns a plain iter.Seq and evaluates nothing
//     until ranged over
//   - finite producers (Range, Span, Repeat) validate parameters up
//     front with sentinel errors (ErrBadSize, ErrZeroStep)
//   - infinite producers (Count, RepeatForever, Fibonacci) never
//     terminate on their own and are named/documented accordingly;
//     bound them on the consuming side
//
// ⚙️ Usage:
//
//	r, err := gen.Range(10)           // 0..9
//	if err != nil { ... }
//	s := seq.From(r)
//
//	nat := seq.From(gen.Count(0, 1))  // 0, 1, 2, ... forever
//	first, _ := nat.Head(5)
package gen
