// Package fluent provides a minimal fluent Chain[F, R] for synchronous
// composition of fail.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Attach: add one layer of causal context to the failure branch
// - Map/Ensure: transform values or trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// Cross-variant context attachment (failure type F1 to F2) is not
// expressible as a method; use attach.Result directly for that.
package fluent
