package fail

import "time"

type ValueProvider[R any] interface {
	// Value returns the successful result value
	Value() R
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that can return a value or a
// structured failure
type WithFailure[F Failure, R any] interface {
	ValueProvider[R]
	// Failure returns the failure if the operation failed
	Failure() F
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
