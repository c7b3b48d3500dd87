// Package async provides the asynchronous variants of the solo combinators.
//
// A pending outcome is a <-chan rop.Result[T] that delivers exactly one value.
// Every combinator awaits its input, then runs the same logic as its solo
// counterpart in a new goroutine and hands back another pending outcome, so
// chains read left to right exactly like synchronous ones:
//
//	user := async.ThenAsync(ctx, core.Resolved(rop.Success(id)), repo.Load)
//	name := async.Map(ctx, user, func(_ context.Context, u User) string { return u.Name })
//	fmt.Println(async.Match(ctx, name, show, showError))
//
// The only waiting a combinator does is on what it is given: its input and,
// for the *Async variants, the pending outcome returned by the user function.
// When ctx is done first, the chain continues with a rop.Cancelled failure.
package async
