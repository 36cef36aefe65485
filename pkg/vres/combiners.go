package vres

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer boxed in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// UnwrapErrs flattens an error into its joined parts: a nil error yields an
// empty slice, a multi-error (anything implementing Unwrap() []error) yields
// its parts, anything else a singleton.
func UnwrapErrs(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrs is a Combine for plain error payloads. It flattens both sides
// before joining, so nested joins stay one level deep and the combination is
// associative.
func JoinErrs(a, b error) error {
	return errors.Join(append(UnwrapErrs(a), UnwrapErrs(b)...)...)
}

// ConcatStrings returns a Combine that concatenates string payloads with the
// given separator.
func ConcatStrings(sep string) Combine[string] {
	return func(a, b string) string {
		return a + sep + b
	}
}

// AppendSlices concatenates slice payloads in order. The inputs are not
// mutated; it is assignable to Combine[[]T].
func AppendSlices[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
