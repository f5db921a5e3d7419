package fail

// Failure is the capability every structured failure value implements.
// Concrete failure variants are defined by callers; the library never fixes
// the set of variants. Values must be immutable once constructed.
type Failure interface {
	// FailMessage returns the failure message. Empty means no message.
	FailMessage() string
	// FailCause returns what produced this failure, or nil when nothing did.
	FailCause() Cause
}

// Cause is a tagged reference to what produced a Failure. It is a closed
// union: the only implementations are FailureCause and ThrowableCause.
type Cause interface {
	isCause()
}

// FailureCause wraps another Failure as the cause.
type FailureCause struct {
	failure Failure
}

func CausedByFailure(f Failure) FailureCause {
	return FailureCause{failure: f}
}

func (c FailureCause) Failure() Failure {
	return c.failure
}

func (c FailureCause) isCause() {}

// ThrowableCause wraps a native error as the cause. The error is opaque to
// the library beyond its message and its errors.Unwrap chain.
type ThrowableCause struct {
	err error
}

func CausedByError(err error) ThrowableCause {
	return ThrowableCause{err: err}
}

func (c ThrowableCause) Err() error {
	return c.err
}

func (c ThrowableCause) isCause() {}
