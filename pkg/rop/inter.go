package rop

// ValueProvider exposes the success side of an outcome.
type ValueProvider[T any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// ValueOr returns the value, or def on failure
	ValueOr(def T) T
}

// WithError is what transport adapters consume: an outcome whose failure can
// be inspected without risking a contract violation.
type WithError[T any] interface {
	ValueProvider[T]
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Get returns the value and the failure (nil on success)
	Get() (T, error)
}

var _ WithError[int] = Result[int]{}
