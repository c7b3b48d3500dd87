// Package solo contains single-value, synchronous combinators over
// rop.Result[T]. Every function takes the context first and obeys the
// short-circuit rule: a failed input skips the user function and its Error is
// forwarded unchanged. Only the Recover family acts on failures.
//
// Highlights:
// - Then/ThenNotNil/Try: sequence into a new Result
// - Map: transform successful values
// - Validate: turn a success into a failure when a predicate rejects it
// - Tap/TapError/TapBoth/TapLog: side effects
// - Recover/RecoverIf/RecoverIfCode: error-channel bind
// - Match: reduce to a concrete value
// - Combine/CombineAll: join N results, fail-fast or aggregating
package solo
