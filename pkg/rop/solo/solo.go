package solo

import (
	"context"
	"log/slog"

	"github.com/ib-77/outcome/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err rop.Error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Then[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

// ThenNotNil is Then for functions that signal absence with a nil pointer,
// map, slice or interface: a nil result becomes a failure with ifNil.
func ThenNotNil[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	ifNil rop.Error) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	out := onSuccess(ctx, input.Value())
	if rop.IsNil(out) {
		return rop.Fail[Out](ifNil)
	}
	return rop.Success(out)
}

// Try calls a Go-style (Out, error) function. The error is converted with
// rop.ErrorOf, a typed nil error counts as success. Panics are not recovered
// here, wrap the boundary with rop.Try.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Value())
	if rop.IsNil(err) {
		return rop.Success(out)
	}
	return rop.Fail[Out](rop.ErrorOf(err))
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

// Validate keeps a success only if isValid accepts its value, otherwise the
// result becomes a failure with err. The predicate never sees a failure.
func Validate[T any](ctx context.Context, input rop.Result[T],
	isValid func(ctx context.Context, in T) bool, err rop.Error) rop.Result[T] {

	if input.IsSuccess() && !isValid(ctx, input.Value()) {
		return rop.Fail[T](err)
	}
	return input
}

// AndValidate is Validate for predicates that build their own error.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, err rop.Error)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, err := validate(ctx, input.Value()); !isValid {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Tap[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func TapError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsFailure() {
		onError(ctx, input.Err())
	}
	return input
}

func TapBoth[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Err())
	}
	return input
}

// TapLog logs a failure at error level with the structured Error attached.
// A nil logger falls back to slog.Default.
func TapLog[T any](ctx context.Context, input rop.Result[T], logger *slog.Logger, msg string) rop.Result[T] {
	return TapError(ctx, input, func(ctx context.Context, err rop.Error) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.ErrorContext(ctx, msg, rop.SlogAttr(err))
	})
}

func Recover[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return onError(ctx, input.Err())
	}
	return input
}

// RecoverIf recovers only failures of the given category.
func RecoverIf[T any](ctx context.Context, input rop.Result[T], category rop.Category,
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() && input.Err().Category() == category {
		return onError(ctx, input.Err())
	}
	return input
}

// RecoverIfCode recovers only failures with the given code.
func RecoverIfCode[T any](ctx context.Context, input rop.Result[T], code string,
	onError func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() && input.Err().Code() == code {
		return onError(ctx, input.Err())
	}
	return input
}

func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}
