// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: move to a Chain[U] (free functions, Go methods cannot add type parameters)
// - Validate/Tap/TapError/TapBoth: guard or observe without changing the type
// - Recover/RecoverIf/RecoverIfCode: act on the failure channel
// - Match: collapse the chain into a final value
package chain
