package nel

// NonEmpty is a list that always holds at least one element. It is the
// default error accumulator: a lone failure wrapped into a singleton can be
// merged with other collected failures by plain concatenation, with no
// caller-supplied combination needed.
type NonEmpty[T any] struct {
	head T
	tail []T
}

func Of[T any](head T, tail ...T) NonEmpty[T] {
	cp := make([]T, len(tail))
	copy(cp, tail)
	return NonEmpty[T]{head: head, tail: cp}
}

// FromSlice builds a NonEmpty from a plain slice, reporting false when the
// slice is empty.
func FromSlice[T any](s []T) (NonEmpty[T], bool) {
	if len(s) == 0 {
		return NonEmpty[T]{}, false
	}
	return Of(s[0], s[1:]...), true
}

func (n NonEmpty[T]) Head() T {
	return n.head
}

func (n NonEmpty[T]) Tail() []T {
	cp := make([]T, len(n.tail))
	copy(cp, n.tail)
	return cp
}

func (n NonEmpty[T]) Len() int {
	return 1 + len(n.tail)
}

// Slice flattens the list into a plain slice of Len elements.
func (n NonEmpty[T]) Slice() []T {
	out := make([]T, 0, n.Len())
	out = append(out, n.head)
	return append(out, n.tail...)
}

// Concat joins two lists, keeping element order. It is associative, so it
// serves directly as a vres.Combine for NonEmpty payloads. Neither input is
// mutated.
func Concat[T any](a, b NonEmpty[T]) NonEmpty[T] {
	tail := make([]T, 0, len(a.tail)+b.Len())
	tail = append(tail, a.tail...)
	tail = append(tail, b.head)
	tail = append(tail, b.tail...)
	return NonEmpty[T]{head: a.head, tail: tail}
}
