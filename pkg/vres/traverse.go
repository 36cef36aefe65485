package vres

import "github.com/ib-77/vres/pkg/vres/opt"

// Traverse threads an effectful computation through the success side of r.
// The target effect is described by two explicit capabilities rather than an
// ambient instance:
//   - lift maps an effectful B (the FB produced by f) to an effectful
//     success, i.e. the effect's own map specialized to wrap each B in
//     Success
//   - pure injects an already-known plain result into the effect
//
// On success the effect runs: Traverse returns lift(f(value)). On failure f
// is never invoked and the failure is injected via pure.
func Traverse[E, A, B, FB, FR any](r Result[E, A], f func(A) FB, lift func(FB) FR, pure func(Result[E, B]) FR) FR {
	if r.isSuccess {
		return lift(f(r.value))
	}
	return pure(Fail[E, B](r.err))
}

// BiTraverse runs an effect on whichever side is populated. liftFail and
// liftOk are the effect's map specialized to re-wrap the transformed payload
// in its original case. Exactly one of onFailure/onSuccess is invoked.
func BiTraverse[E, A, FC, FD, FR any](r Result[E, A], onFailure func(E) FC, onSuccess func(A) FD, liftFail func(FC) FR, liftOk func(FD) FR) FR {
	if r.isSuccess {
		return liftOk(onSuccess(r.value))
	}
	return liftFail(onFailure(r.err))
}

// TraverseSlice is Traverse specialized to the slice effect: a success fans
// out into one success per produced element, a failure stays a single
// failure (the slice effect's pure is a singleton).
func TraverseSlice[E, A, B any](r Result[E, A], f func(A) []B) []Result[E, B] {
	if !r.isSuccess {
		return []Result[E, B]{Fail[E, B](r.err)}
	}
	bs := f(r.value)
	out := make([]Result[E, B], len(bs))
	for i, b := range bs {
		out[i] = Success[E](b)
	}
	return out
}

// TraverseOption is Traverse specialized to the optional effect: on success
// the produced Option decides presence; on failure f is never invoked and
// the failure is present as-is.
func TraverseOption[E, A, B any](r Result[E, A], f func(A) opt.Option[B]) opt.Option[Result[E, B]] {
	if !r.isSuccess {
		return opt.Some(Fail[E, B](r.err))
	}
	if b, ok := f(r.value).Get(); ok {
		return opt.Some(Success[E, B](b))
	}
	return opt.None[Result[E, B]]()
}

// Sequence collapses many independent results into one: all successes yield
// the collected payloads in order, otherwise every error is accumulated via
// combine in input order.
func Sequence[E, A any](rs []Result[E, A], combine Combine[E]) Result[E, []A] {
	values := make([]A, 0, len(rs))
	var errs E
	failed := false
	for _, r := range rs {
		if r.isSuccess {
			values = append(values, r.value)
			continue
		}
		if failed {
			errs = combine(errs, r.err)
		} else {
			errs = r.err
			failed = true
		}
	}
	if failed {
		return Fail[E, []A](errs)
	}
	return Success[E](values)
}

// TraverseAll applies f to each item and sequences the outcomes, accumulating
// every failure via combine in input order.
func TraverseAll[E, A, B any](items []A, f func(A) Result[E, B], combine Combine[E]) Result[E, []B] {
	rs := make([]Result[E, B], len(items))
	for i, item := range items {
		rs[i] = f(item)
	}
	return Sequence(rs, combine)
}
