// Package chain provides a fluent short-circuit bind over vres.Result[error, T]
// for composing dependent steps, where each step consumes the previous
// success.
//
// Highlights:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or (U, error)-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects on success only
// - Finally: reduce to a concrete value via handlers
//
// Chaining stops at the first failure by construction: later steps need the
// earlier success as input, so independent failures cannot be collected here.
// For accumulation across independent computations use vres.Ap, vres.Map2 or
// vres.Sequence.
package chain
