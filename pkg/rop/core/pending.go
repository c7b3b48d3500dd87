package core

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// PendingClosedCode marks a pending outcome whose channel was closed without
// delivering a value.
const PendingClosedCode = "PENDING_CLOSED"

// Resolved wraps an already available result as a pending one.
func Resolved[T any](r rop.Result[T]) <-chan rop.Result[T] {
	ch := make(chan rop.Result[T], 1)
	ch <- r
	close(ch)
	return ch
}

// Go runs fn in its own goroutine and returns its pending result. The channel
// is buffered, so the goroutine finishes even if nobody awaits it.
func Go[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T]) <-chan rop.Result[T] {
	ch := make(chan rop.Result[T], 1)
	go func() {
		defer close(ch)
		ch <- fn(ctx)
	}()
	return ch
}

// Await blocks until pending delivers. A value that has already arrived is
// returned even when ctx is done; otherwise a done ctx turns into a Cancelled
// failure, a closed channel without value into a PENDING_CLOSED failure.
func Await[T any](ctx context.Context, pending <-chan rop.Result[T]) rop.Result[T] {
	select {
	case r, ok := <-pending:
		return delivered(r, ok)
	default:
	}

	select {
	case r, ok := <-pending:
		return delivered(r, ok)
	case <-ctx.Done():
		return rop.Fail[T](rop.Cancelled(ctx.Err()))
	}
}

func delivered[T any](r rop.Result[T], ok bool) rop.Result[T] {
	if !ok {
		return rop.Fail[T](rop.Unexpected("pending outcome closed without a value", PendingClosedCode))
	}
	return r
}

// FromChanFirstOrDefault returns the first value of out, or defaultV if out is
// closed first or ctx is done before a value is ready.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	default:
	}

	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
