package async

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

func lift[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	step func(ctx context.Context, in rop.Result[In]) rop.Result[Out]) <-chan rop.Result[Out] {
	return core.Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return step(ctx, core.Await(ctx, input))
	})
}

func Then[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Then(ctx, in, onSuccess)
	})
}

// ThenAsync is Then for functions that are themselves asynchronous.
func ThenAsync[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) <-chan rop.Result[Out]) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Then(ctx, in, func(ctx context.Context, v In) rop.Result[Out] {
			return core.Await(ctx, onSuccess(ctx, v))
		})
	})
}

func ThenNotNil[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out, ifNil rop.Error) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.ThenNotNil(ctx, in, onSuccess, ifNil)
	})
}

func Try[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, in, onTryExecute)
	})
}

func Map[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) <-chan rop.Result[Out] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, in, onSuccess)
	})
}

func Validate[T any](ctx context.Context, input <-chan rop.Result[T],
	isValid func(ctx context.Context, in T) bool, err rop.Error) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Validate(ctx, in, isValid, err)
	})
}

func Tap[T any](ctx context.Context, input <-chan rop.Result[T],
	onSuccess func(ctx context.Context, r T)) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, in, onSuccess)
	})
}

func TapError[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, err rop.Error)) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.TapError(ctx, in, onError)
	})
}

func TapBoth[T any](ctx context.Context, input <-chan rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error)) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.TapBoth(ctx, in, onSuccess, onError)
	})
}

func Recover[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Recover(ctx, in, onError)
	})
}

// RecoverAsync is Recover for asynchronous recovery functions.
func RecoverAsync[T any](ctx context.Context, input <-chan rop.Result[T],
	onError func(ctx context.Context, err rop.Error) <-chan rop.Result[T]) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Recover(ctx, in, func(ctx context.Context, err rop.Error) rop.Result[T] {
			return core.Await(ctx, onError(ctx, err))
		})
	})
}

func RecoverIf[T any](ctx context.Context, input <-chan rop.Result[T], category rop.Category,
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.RecoverIf(ctx, in, category, onError)
	})
}

func RecoverIfCode[T any](ctx context.Context, input <-chan rop.Result[T], code string,
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) <-chan rop.Result[T] {
	return lift(ctx, input, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.RecoverIfCode(ctx, in, code, onError)
	})
}

// Match awaits input and folds it. It blocks the caller.
func Match[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) Out {
	return solo.Match(ctx, core.Await(ctx, input), onSuccess, onError)
}

// Combine awaits inputs in argument order and stops at the first failure,
// which is returned unchanged.
func Combine[T any](ctx context.Context, inputs ...<-chan rop.Result[T]) <-chan rop.Result[[]T] {
	return core.Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		values := make([]T, 0, len(inputs))
		for _, p := range inputs {
			r := core.Await(ctx, p)
			if r.IsFailure() {
				return rop.FailFrom[T, []T](r)
			}
			values = append(values, r.Value())
		}
		return rop.Success(values)
	})
}

// CombineAll awaits every input in argument order and aggregates all failures
// like solo.CombineAll.
func CombineAll[T any](ctx context.Context, inputs ...<-chan rop.Result[T]) <-chan rop.Result[[]T] {
	return core.Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		results := make([]rop.Result[T], 0, len(inputs))
		for _, p := range inputs {
			results = append(results, core.Await(ctx, p))
		}
		return solo.CombineAll(ctx, results...)
	})
}
