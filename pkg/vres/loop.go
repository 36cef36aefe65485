package vres

import "github.com/ib-77/vres/pkg/vres/either"

// LoopSuccess repeatedly re-enters onSuccess while the current result is a
// success. The step either terminates with a left X or continues with a
// right replacement result. A failure at any point terminates via onFailure.
// Iteration is an explicit loop, so the call stack stays flat regardless of
// step count.
func LoopSuccess[E, A, X any](r Result[E, A], onSuccess func(A) either.Either[X, Result[E, A]], onFailure func(E) X) X {
	for {
		if !r.isSuccess {
			return onFailure(r.err)
		}
		step := onSuccess(r.value)
		if step.IsLeft() {
			return step.Left()
		}
		r = step.Right()
	}
}

// LoopFailure is the mirror of LoopSuccess: it re-enters onFailure while the
// current result is a failure, and a success at any point terminates via
// onSuccess.
func LoopFailure[E, A, X any](r Result[E, A], onFailure func(E) either.Either[X, Result[E, A]], onSuccess func(A) X) X {
	for {
		if r.isSuccess {
			return onSuccess(r.value)
		}
		step := onFailure(r.err)
		if step.IsLeft() {
			return step.Left()
		}
		r = step.Right()
	}
}
