package lite

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/async"
	"github.com/ib-77/outcome/pkg/rop/core"
)

// Run applies engine to every outcome of inputCh with lines workers. Items
// still queued when ctx is done are reported as cancelled failures.
func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine core.Engine[T, T], lines int) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout is Run for stages that change the value type.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine core.Engine[In, Out], lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = core.GetWorkerMaxCount(ctx, core.DefaultWorkers)
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}
	handlers := core.CancellationHandlers[In, Out]{
		OnCancel:            core.CancelRemaining[In, Out],
		OnCancelUnprocessed: core.CancelUnprocessed[In, Out],
	}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Then[In, Out any](onSuccess func(ctx context.Context, r In) rop.Result[Out]) core.Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return async.Then(ctx, core.Resolved(input), onSuccess)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return async.Try(ctx, core.Resolved(input), onTryExecute)
	}
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return async.Map(ctx, core.Resolved(input), onSuccess)
	}
}

func Validate[T any](isValid func(ctx context.Context, in T) bool, err rop.Error) core.Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return async.Validate(ctx, core.Resolved(input), isValid, err)
	}
}

func Tap[T any](onSuccess func(ctx context.Context, r T)) core.Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return async.Tap(ctx, core.Resolved(input), onSuccess)
	}
}

func Recover[T any](onError func(ctx context.Context, err rop.Error) rop.Result[T]) core.Engine[T, T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return async.Recover(ctx, core.Resolved(input), onError)
	}
}

// Finally folds every outcome of input into an Out. The returned channel is
// closed once input is exhausted; cancellation reaches it as failures.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range input {
			if in.IsSuccess() {
				out <- onSuccess(ctx, in.Value())
			} else {
				out <- onError(ctx, in.Err())
			}
		}
	}()

	return out
}
