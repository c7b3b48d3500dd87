package core

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Success(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults[T](ctx, handlers, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults[T](ctx, ToChanHandlers[T]{}, values...)
}

// FromChanMany drains out until it is closed.
func FromChanMany[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
