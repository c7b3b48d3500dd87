package rop

import (
	"errors"
	"fmt"
)

// Result holds exactly one of a success value or a failure Error.
// It is immutable and meant to be passed by value.
type Result[T any] struct {
	result    T
	err       Error
	isSuccess bool
}

// Unit is the payload of a Result that carries no value.
type Unit struct{}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err Error) Result[T] {
	return Result[T]{
		err:       err.orDefault(),
		isSuccess: false,
	}
}

// Ok is a successful Result[Unit].
func Ok() Result[Unit] {
	return Success(Unit{})
}

// FromError turns a native error into a failure. An Error found with
// errors.As is reused as is; context cancellation becomes Cancelled and
// anything else FromNative. A nil error yields a successful zero value.
func FromError[T any](err error) Result[T] {
	if IsNil(err) {
		var zero T
		return Success(zero)
	}
	return Fail[T](ErrorOf(err))
}

// ErrorOf converts any non-nil error into an Error, see FromError.
func ErrorOf(err error) Error {
	var e Error
	switch {
	case errors.As(err, &e):
		return e
	case IsCancellationError(err):
		return Cancelled(err)
	default:
		return FromNative(err)
	}
}

// FailFrom retypes a failure. It panics on a success, which has no error to carry.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.Err())
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. Calling it on a failure is a programming
// error and panics with *ContractViolation; use Fold, ValueOr or ValueOrElse
// when the state is not known.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(&ContractViolation{Op: "Value", Err: r.err.orDefault()})
	}
	return r.result
}

// Err returns the failure. Calling it on a success panics with *ContractViolation.
func (r Result[T]) Err() Error {
	if r.isSuccess {
		panic(&ContractViolation{Op: "Err"})
	}
	return r.err.orDefault()
}

func (r Result[T]) ValueOr(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

func (r Result[T]) ValueOrElse(onFailure func(err Error) T) T {
	if r.isSuccess {
		return r.result
	}
	return onFailure(r.err.orDefault())
}

// Unwrap returns the value or panics with *UnwrapError carrying the failure.
// It is an assertion for top-level boundaries and tests, never for chains.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(&UnwrapError{Err: r.err.orDefault()})
	}
	return r.result
}

// Get returns the value and the failure as a native error, nil on success.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	return r.result, r.err.orDefault()
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%s)", r.err.orDefault().Error())
}

// Fold destructures r through exactly one of two exhaustive branches.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(Error) R) R {
	if r.isSuccess {
		return onSuccess(r.result)
	}
	return onFailure(r.err.orDefault())
}

// ContractViolation is the panic value of Value on a failure or Err on a
// success. It signals a bug in the caller, not a business failure.
type ContractViolation struct {
	Op  string
	Err Error
}

func (c *ContractViolation) Error() string {
	if c.Op == "Err" {
		return "rop: Err called on a successful result"
	}
	return "rop: " + c.Op + " called on a failed result: " + c.Err.Error()
}

// UnwrapError is the panic value of Result.Unwrap on a failure.
type UnwrapError struct {
	Err Error
}

func (u *UnwrapError) Error() string {
	return "rop: unwrap of failed result: " + u.Err.Error()
}

func (u *UnwrapError) Unwrap() error {
	return u.Err
}
