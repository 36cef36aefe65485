package vres

// Combine is a caller-supplied associative combination for a payload type.
// The package never assumes a default combination exists; every accumulating
// operation takes one explicitly. See combiners.go for ready-made ones.
type Combine[T any] func(a, b T) T

// Ap applies a result-wrapped function rf to a result-wrapped value r:
//   - both success: the function is applied to the value
//   - exactly one failure: that failure propagates
//   - both failure: the errors are merged as combine(rf.Err(), r.Err()) —
//     the value-side error is appended onto the function-side error
//
// The both-failure order means a chain of Ap applications accumulates errors
// from the innermost function outward, not naively left to right; Map2/Map3
// arrange their arguments so errors come out in declaration order.
//
// Ap is what makes independent failures collectable. There is deliberately no
// bind here: bind must short-circuit, because the second computation's input
// depends on the first's success. The chain subpackage provides that as a
// separate opt-in.
func Ap[E, A, B any](r Result[E, A], rf Result[E, func(A) B], combine Combine[E]) Result[E, B] {
	switch {
	case r.isSuccess && rf.isSuccess:
		return Success[E](rf.value(r.value))
	case !r.isSuccess && !rf.isSuccess:
		return Fail[E, B](combine(rf.err, r.err))
	case !r.isSuccess:
		return Fail[E, B](r.err)
	default:
		return Fail[E, B](rf.err)
	}
}

// Map2 combines two independent results with f, accumulating failures via
// combine. Errors accumulate in argument order: combine(ra.Err(), rb.Err()).
func Map2[E, A, B, C any](ra Result[E, A], rb Result[E, B], f func(A, B) C, combine Combine[E]) Result[E, C] {
	rf := Map(ra, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return Ap(rb, rf, combine)
}

// Map3 combines three independent results with f, accumulating failures via
// combine in argument order.
func Map3[E, A, B, C, D any](ra Result[E, A], rb Result[E, B], rc Result[E, C], f func(A, B, C) D, combine Combine[E]) Result[E, D] {
	rf := Map2(ra, rb, func(a A, b B) func(C) D {
		return func(c C) D { return f(a, b, c) }
	}, combine)
	return Ap(rc, rf, combine)
}

// Append combines two results case-wise:
//   - both success: combineVal merges the payloads
//   - both failure: combineErr merges the errors
//   - mixed: the success wins and the failure is discarded; no value is ever
//     synthesized from only one side
func Append[E, A any](a, b Result[E, A], combineErr Combine[E], combineVal Combine[A]) Result[E, A] {
	switch {
	case a.isSuccess && b.isSuccess:
		return Success[E](combineVal(a.value, b.value))
	case !a.isSuccess && !b.isSuccess:
		return Fail[E, A](combineErr(a.err, b.err))
	case a.isSuccess:
		return a
	default:
		return b
	}
}

// OrElse returns r when it is a success; otherwise the alternative is
// evaluated and returned as-is. Pure left-biased choice, no accumulation.
func (r Result[E, A]) OrElse(alt func() Result[E, A]) Result[E, A] {
	if r.isSuccess {
		return r
	}
	return alt()
}

// FindSuccess is OrElse with accumulation on the all-failed path: when both r
// and the alternative fail, the errors are merged as
// combine(r.Err(), alt.Err()) instead of keeping only the second.
func FindSuccess[E, A any](r Result[E, A], alt func() Result[E, A], combine Combine[E]) Result[E, A] {
	if r.isSuccess {
		return r
	}
	other := alt()
	if other.isSuccess {
		return other
	}
	return Fail[E, A](combine(r.err, other.err))
}
