package rop

import (
	"fmt"

	"github.com/google/uuid"
)

// Try runs fn at a boundary where native failures are possible and re-enters
// the Result algebra. A returned error goes through ErrorOf (a typed nil
// counts as no error, like in FromError); a panic is
// recovered into an Unexpected Error whose incidentId extension identifies it
// in logs. Combinators never recover panics themselves, this is the only bridge.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](panicError(p))
		}
	}()

	v, err := fn()
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](ErrorOf(err))
}

// TryDo is Try for functions without a value.
func TryDo(fn func() error) Result[Unit] {
	return Try(func() (Unit, error) {
		return Unit{}, fn()
	})
}

func panicError(p any) Error {
	var e Error
	switch v := p.(type) {
	case *UnwrapError:
		// an Unwrap deep inside fn already carries the business failure
		return v.Err
	case error:
		e = FromNative(v)
	default:
		e = FromNative(fmt.Errorf("panic: %v", v))
	}
	return e.With("incidentId", uuid.NewString()).With("panic", true)
}
