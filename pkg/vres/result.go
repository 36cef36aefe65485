package vres

import "fmt"

// Result is a closed two-case union: either a success carrying a value of A
// or a failure carrying an error payload of E. Exactly one payload exists at
// any time; the other side is structurally absent. Values are immutable once
// constructed.
type Result[E, A any] struct {
	value     A
	err       E
	isSuccess bool
}

func Success[E, A any](value A) Result[E, A] {
	return Result[E, A]{
		value:     value,
		isSuccess: true,
	}
}

func Fail[E, A any](err E) Result[E, A] {
	return Result[E, A]{
		err: err,
	}
}

// Value returns the success payload. On a failure it returns the zero value
// of A; check IsSuccess first, or use Fold/GetOrElse/ValueOr.
func (r Result[E, A]) Value() A {
	return r.value
}

// Err returns the failure payload. On a success it returns the zero value
// of E.
func (r Result[E, A]) Err() E {
	return r.err
}

func (r Result[E, A]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[E, A]) IsFailure() bool {
	return !r.isSuccess
}

// Fold is the structural eliminator: exactly one branch runs, chosen by the
// case. Every other read-only operation in this package is definable in terms
// of Fold.
func Fold[E, A, X any](r Result[E, A], onFailure func(E) X, onSuccess func(A) X) X {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// GetOrElse returns the success payload, or def on failure.
func (r Result[E, A]) GetOrElse(def A) A {
	if r.isSuccess {
		return r.value
	}
	return def
}

// GetOrElseF returns the success payload, or the result of def on failure.
// def runs only on the failure path.
func (r Result[E, A]) GetOrElseF(def func() A) A {
	if r.isSuccess {
		return r.value
	}
	return def()
}

// ValueOr returns the success payload, or f applied to the error payload.
func (r Result[E, A]) ValueOr(f func(E) A) A {
	if r.isSuccess {
		return r.value
	}
	return f(r.err)
}

// ForEach invokes f with the success payload; on a failure f is never called.
func (r Result[E, A]) ForEach(f func(A)) {
	if r.isSuccess {
		f(r.value)
	}
}

// Recover applies f to the error payload to produce a replacement result; a
// success passes through untouched. Together with Fail this forms the
// raise/handle pair for error-aware computations.
func (r Result[E, A]) Recover(f func(E) Result[E, A]) Result[E, A] {
	if r.isSuccess {
		return r
	}
	return f(r.err)
}

func (r Result[E, A]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
