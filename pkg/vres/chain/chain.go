package chain

import (
	"context"

	"github.com/ib-77/vres/pkg/vres"
)

// Chain wraps a vres.Result with context to enable fluent short-circuit
// chaining: each step consumes the previous success, so the first failure
// skips everything after it. Failures cannot accumulate here; use vres.Ap or
// vres.Map2/Map3 when independent failures must be collected.
type Chain[T any] struct {
	ctx    context.Context
	result vres.Result[error, T]
}

// Start creates a new chain from a vres.Result
func Start[T any](ctx context.Context, result vres.Result[error, T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: vres.Success[error](value),
	}
}

// Result returns the underlying vres.Result
func (c *Chain[T]) Result() vres.Result[error, T] {
	return c.result
}

// Then chains a function that returns vres.Result[error, U]; it runs only on
// success.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) vres.Result[error, U]) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{
			ctx:    c.ctx,
			result: vres.Fail[error, U](c.result.Err()),
		}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: onSuccess(c.ctx, c.result.Value()),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, value T) vres.Result[error, U] {
		return vres.Try(tryOnSuccess(ctx, value))
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Then(c, func(ctx context.Context, value T) vres.Result[error, U] {
		return vres.Success[error](onSuccess(ctx, value))
	})
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	c.result.ForEach(func(value T) {
		onSuccess(c.ctx, value)
	})
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return vres.Fold(c.result,
		func(err error) U { return onFailure(c.ctx, err) },
		func(value T) U { return onSuccess(c.ctx, value) })
}
