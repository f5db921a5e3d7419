// Package fail defines the core failure chain model: a Failure capability
// that callers implement with their own variants, a closed Cause union
// (FailureCause wrapping another Failure, ThrowableCause wrapping a native
// error), and a generic Result[F, R] for passing failures as values instead
// of throwing them.
//
// Highlights:
// - Failure/Cause: immutable causal chain building blocks
// - CausalChain/RootCause: bounded, cycle-safe chain traversal
// - SimpleString/PrettyString: human-readable rendering of a failure and
//   its full chain, joined with "\ncaused by "
// - Result/Success/Fail/MapFailure: the failure branch as plain data flow
//
// Traversal follows a ThrowableCause into the native error's own
// errors.Unwrap chain; it does not stop at the first native error.
package fail
