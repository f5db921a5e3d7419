// Package attach contains the context-propagation helpers that enrich
// failures as they cross abstraction boundaries. Each wrap is pure
// construction: one message plus a Cause pointing at the prior failure or
// native error, never mutation.
//
// Highlights:
// - Failure/Err: wrap a Failure or a native error into a new failure variant
// - Result: map only the failure branch of a Result through a wrap
// - RunCatching: run a body under a trap that converts returned errors and
//   panics into the failure branch
package attach
