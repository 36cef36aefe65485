package vres

// Map transforms the success payload; a failure passes through with its error
// payload untouched (the failure case never held an A, so the retyping is
// purely at the type level).
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.isSuccess {
		return Success[E](f(r.value))
	}
	return Fail[E, B](r.err)
}

// MapFail transforms the error payload; a success passes through untouched.
func MapFail[E, A, C any](r Result[E, A], f func(E) C) Result[C, A] {
	if r.isSuccess {
		return Success[C](r.value)
	}
	return Fail[C, A](f(r.err))
}

// BiMap applies onFailure to a failure's payload or onSuccess to a success's
// payload. Exactly one of the two is invoked.
func BiMap[E, A, C, B any](r Result[E, A], onFailure func(E) C, onSuccess func(A) B) Result[C, B] {
	if r.isSuccess {
		return Success[C](onSuccess(r.value))
	}
	return Fail[C, B](onFailure(r.err))
}

// Swap reinterprets a success as a failure and vice versa, with no payload
// transformation. Swap composed with Swap is the identity.
func Swap[E, A any](r Result[E, A]) Result[A, E] {
	if r.isSuccess {
		return Fail[A, E](r.value)
	}
	return Success[A](r.err)
}

// Filter keeps a success whose payload satisfies pred and turns one that does
// not into a failure carrying zero (the identity of the caller's error
// monoid). A failure always passes through unchanged.
func (r Result[E, A]) Filter(pred func(A) bool, zero E) Result[E, A] {
	if r.isSuccess && !pred(r.value) {
		return Fail[E, A](zero)
	}
	return r
}

// Ensure turns a success whose payload fails pred into a failure carrying
// onFailure. All other cases pass through unchanged.
func (r Result[E, A]) Ensure(onFailure E, pred func(A) bool) Result[E, A] {
	if r.isSuccess && !pred(r.value) {
		return Fail[E, A](onFailure)
	}
	return r
}

// Excepting applies a partial mapping to the success payload: when f reports
// true the success becomes a failure carrying the produced error. When f
// reports false the case is undefined for that payload and the success passes
// through. A failure always passes through unchanged.
func (r Result[E, A]) Excepting(f func(A) (E, bool)) Result[E, A] {
	if r.isSuccess {
		if e, ok := f(r.value); ok {
			return Fail[E, A](e)
		}
	}
	return r
}
