package vres

import (
	"github.com/ib-77/vres/pkg/vres/either"
	"github.com/ib-77/vres/pkg/vres/nel"
	"github.com/ib-77/vres/pkg/vres/opt"
)

// ToEither converts to the disjoint-union encoding: failure becomes left,
// success becomes right. FromEither is its exact inverse.
func ToEither[E, A any](r Result[E, A]) either.Either[E, A] {
	if r.isSuccess {
		return either.Right[E](r.value)
	}
	return either.Left[E, A](r.err)
}

// FromEither converts from the disjoint-union encoding: left becomes failure,
// right becomes success. ToEither is its exact inverse.
func FromEither[E, A any](e either.Either[E, A]) Result[E, A] {
	if e.IsRight() {
		return Success[E](e.Right())
	}
	return Fail[E, A](e.Left())
}

// ToOption discards the error payload: success becomes Some, failure becomes
// None. The loss is deliberate; there is no inverse without the caller
// supplying an error value, see FromOption.
func ToOption[E, A any](r Result[E, A]) opt.Option[A] {
	if r.isSuccess {
		return opt.Some(r.value)
	}
	return opt.None[A]()
}

// FromOption lifts an optional value: Some becomes success, None becomes a
// failure carrying ifNone.
func FromOption[E, A any](o opt.Option[A], ifNone E) Result[E, A] {
	if v, ok := o.Get(); ok {
		return Success[E](v)
	}
	return Fail[E, A](ifNone)
}

// ToSlice discards the error payload: success becomes a singleton slice,
// failure an empty one.
func ToSlice[E, A any](r Result[E, A]) []A {
	if r.isSuccess {
		return []A{r.value}
	}
	return []A{}
}

// ToNel wraps a lone error payload into a singleton non-empty list, so the
// result can later be merged with other collected failures via nel.Concat
// without a custom combination.
func ToNel[E, A any](r Result[E, A]) Result[nel.NonEmpty[E], A] {
	if r.isSuccess {
		return Success[nel.NonEmpty[E]](r.value)
	}
	return Fail[nel.NonEmpty[E], A](nel.Of(r.err))
}

// FromPredicate lifts a plain value: when pred holds the value is rejected
// and the result is a failure carrying err; otherwise it is a success
// carrying the value.
func FromPredicate[E, A any](value A, pred func(A) bool, err E) Result[E, A] {
	if pred(value) {
		return Fail[E, A](err)
	}
	return Success[E](value)
}

// FromPredicateNel is FromPredicate with the error already wrapped for
// accumulation.
func FromPredicateNel[E, A any](value A, pred func(A) bool, err E) Result[nel.NonEmpty[E], A] {
	return ToNel(FromPredicate(value, pred, err))
}

// Try lifts an idiomatic Go (value, error) return: a nil error becomes a
// success carrying the value, anything else a failure carrying the error.
func Try[A any](value A, err error) Result[error, A] {
	if err != nil {
		return Fail[error, A](err)
	}
	return Success[error](value)
}
