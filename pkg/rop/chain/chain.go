package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) with(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: result}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Then(c.ctx, c.result, onSuccess))
}

// ThenNotNil chains a function that signals absence with nil
func ThenNotNil[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, ifNil rop.Error) *Chain[U] {
	return Start(c.ctx, solo.ThenNotNil(c.ctx, c.result, onSuccess, ifNil))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

func (c *Chain[T]) Validate(isValid func(context.Context, T) bool, err rop.Error) *Chain[T] {
	return c.with(solo.Validate(c.ctx, c.result, isValid, err))
}

// Tap performs a side effect without changing the result
func (c *Chain[T]) Tap(onSuccess func(context.Context, T)) *Chain[T] {
	return c.with(solo.Tap(c.ctx, c.result, onSuccess))
}

func (c *Chain[T]) TapError(onError func(context.Context, rop.Error)) *Chain[T] {
	return c.with(solo.TapError(c.ctx, c.result, onError))
}

func (c *Chain[T]) TapBoth(onSuccess func(context.Context, T), onError func(context.Context, rop.Error)) *Chain[T] {
	return c.with(solo.TapBoth(c.ctx, c.result, onSuccess, onError))
}

func (c *Chain[T]) Recover(onError func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return c.with(solo.Recover(c.ctx, c.result, onError))
}

func (c *Chain[T]) RecoverIf(category rop.Category, onError func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return c.with(solo.RecoverIf(c.ctx, c.result, category, onError))
}

func (c *Chain[T]) RecoverIfCode(code string, onError func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return c.with(solo.RecoverIfCode(c.ctx, c.result, code, onError))
}

// Match collapses the chain into a final value using solo.Match
func Match[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, rop.Error) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
