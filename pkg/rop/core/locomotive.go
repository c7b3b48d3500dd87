package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/rop"
)

// Engine is one stage of a stream: it turns an input outcome into a pending
// output outcome.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out]

type CancellationHandlers[In, Out any] struct {
	// OnCancel receives the rest of the input once ctx is done.
	OnCancel func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
	// OnCancelUnprocessed receives the item that was read but not processed.
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In], outCh chan<- rop.Result[Out])
}

// Locomotive pulls outcomes from inputCh, runs engine on each and pushes the
// results to outCh until inputCh is closed or ctx is done. Several locomotives
// may share the same channels; wg is released when this one stops. Sends on
// outCh block, so the consumer must drain it until it is closed.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			// the item was taken, so its result is always delivered
			pr := Await(ctx, engine(ctx, in))
			outCh <- pr
			if onSuccess != nil {
				onSuccess(ctx, pr)
			}
		}
	}
}

// CancelRemaining drains inputCh after cancellation and reports every item as
// a Cancelled failure. With remaining processing disabled on ctx (see
// WithProcessOptions) the items are drained and dropped. Failed inputs keep
// their own error.
func CancelRemaining[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {
	if !IsProcessRemainingEnabled(ctx, true) {
		for range inputCh {
		}
		return
	}
	for in := range inputCh {
		CancelUnprocessed[In, Out](ctx, in, outCh)
	}
}

// CancelUnprocessed reports a single unprocessed item, see CancelRemaining.
func CancelUnprocessed[In, Out any](ctx context.Context, in rop.Result[In], outCh chan<- rop.Result[Out]) {
	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	if in.IsFailure() {
		outCh <- rop.FailFrom[In, Out](in)
		return
	}
	outCh <- rop.Fail[Out](rop.Cancelled(ctx.Err()))
}
