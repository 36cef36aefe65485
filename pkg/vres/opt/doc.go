// Package opt provides an optional-value encoding used as an interop target
// for vres.Result.
//
// Highlights:
// - Some/None: construct Option[T]
// - Get/GetOrElse: extract with presence flag or default
// - Map: transform the held value
// - ToSlice: empty or singleton slice
//
// Converting a Result to an Option discards the error payload; see
// vres.ToOption for the caveats.
package opt
