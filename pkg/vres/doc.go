// Package vres provides an accumulating result type: Result[E, A] is either
// a success carrying A or a failure carrying E, together with an algebra for
// combining independent results so that failures are collected rather than
// discarded after the first.
//
// Highlights:
// - Success/Fail: construct Result[E, A]
// - Fold: the structural eliminator; GetOrElse/ValueOr/ForEach derive from it
// - Map/MapFail/BiMap/Swap: structural transforms on one or both sides
// - Ap/Map2/Map3: accumulating applicative combination (see Ap for ordering)
// - Append/OrElse/FindSuccess: semigroup and choice combination
// - Filter/Ensure/Excepting: predicate-driven rejection of successes
// - ToEither/ToOption/ToSlice/ToNel and the From* lifts: interop encodings
// - Traverse/BiTraverse/Sequence/TraverseAll: effectful threading
// - LoopSuccess/LoopFailure: flat-stack trampolined iteration
//
// All combination is driven by caller-supplied Combine operations; no default
// combination is ever assumed. Combiners for common payloads live in
// combiners.go. Short-circuiting bind is deliberately absent here; the chain
// subpackage provides it as a separate opt-in.
package vres
