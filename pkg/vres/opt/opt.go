package opt

// Option holds either one value of T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) GetOrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// ToSlice returns a singleton slice for Some and an empty slice for None.
func (o Option[T]) ToSlice() []T {
	if o.some {
		return []T{o.value}
	}
	return []T{}
}

// Map transforms the held value; None passes through.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}
