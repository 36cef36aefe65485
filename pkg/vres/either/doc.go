// Package either provides a minimal disjoint-union type used as the common
// interop encoding between vres.Result and other result-like abstractions.
//
// Highlights:
// - Left/Right: construct Either[L, R]
// - Fold: eliminate the union with one branch per side
// - MapLeft/MapRight: transform one side, pass the other through
// - Swap: exchange sides without touching the payload
//
// vres.ToEither and vres.FromEither form an exact bijection with this type.
package either
