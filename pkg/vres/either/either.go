package either

// Either holds exactly one of two payloads: a left L or a right R. By
// convention left carries a failure and right a success, but the type itself
// attaches no meaning to the sides.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload; it is meaningful only when IsLeft reports true.
func (e Either[L, R]) Left() L {
	return e.left
}

// Right returns the right payload; it is meaningful only when IsRight reports true.
func (e Either[L, R]) Right() R {
	return e.right
}

// Fold eliminates the union, invoking exactly one of the branches.
func Fold[L, R, X any](e Either[L, R], onLeft func(L) X, onRight func(R) X) X {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left payload; a right value passes through.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// MapRight transforms the right payload; a left value passes through.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, S](e.left)
}

// Swap exchanges the sides without touching the payload.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}
