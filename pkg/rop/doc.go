// Package rop defines the outcome container Result[T] and the structured,
// immutable Error it carries on failure.
//
// A Result is created at a producer boundary (Success, Fail, Try, FromError),
// threaded through the combinators of the solo, chain and async packages, and
// consumed by Fold or by a transport adapter through package diag.
package rop
