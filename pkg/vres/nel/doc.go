// Package nel provides a non-empty list, the merge-identity pattern for error
// accumulation: wrap a lone error into a singleton (vres.ToNel), then merge
// collections with Concat.
//
// Highlights:
// - Of/FromSlice: construct NonEmpty[T]
// - Head/Tail/Slice/Len: inspect
// - Concat: associative concatenation, usable as a vres.Combine
package nel
