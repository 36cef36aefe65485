package vres

import "golang.org/x/exp/constraints"

// Equal reports payload equality under explicit payload equalities: two
// results are equal iff they are the same case and their payloads are equal.
// Cross-case values are never equal.
func Equal[E, A any](a, b Result[E, A], eqErr func(E, E) bool, eqVal func(A, A) bool) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return eqVal(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}

// Compare orders results under explicit payload orderings. Failures sort
// before successes; within the same case the payload ordering decides. The
// returned value follows the cmp convention: negative, zero or positive.
func Compare[E, A any](a, b Result[E, A], cmpErr func(E, E) int, cmpVal func(A, A) int) int {
	switch {
	case !a.isSuccess && b.isSuccess:
		return -1
	case a.isSuccess && !b.isSuccess:
		return 1
	case a.isSuccess:
		return cmpVal(a.value, b.value)
	default:
		return cmpErr(a.err, b.err)
	}
}

// CompareOrdered is Compare for naturally ordered payload types.
func CompareOrdered[E, A constraints.Ordered](a, b Result[E, A]) int {
	return Compare(a, b, orderedCmp[E], orderedCmp[A])
}

func orderedCmp[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
