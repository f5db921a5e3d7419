package attach

import (
	"context"
	"fmt"

	"github.com/ib-77/failchain/pkg/fail"
)

// Failure wraps f in a FailureCause and hands it with message to build,
// producing a new failure of the caller-chosen type F2.
func Failure[F2 fail.Failure](f fail.Failure, message string,
	build func(message string, cause fail.Cause) F2) F2 {

	return build(message, fail.CausedByFailure(f))
}

// Err wraps a native error in a ThrowableCause and hands it with message to
// build.
func Err[F fail.Failure](err error, message string,
	build func(message string, cause fail.Cause) F) F {

	return build(message, fail.CausedByError(err))
}

// Result attaches context to the failure branch of input only; a success
// passes through unchanged.
func Result[F1, F2 fail.Failure, R any](input fail.Result[F1, R], message string,
	build func(message string, cause fail.Cause) F2) fail.Result[F2, R] {

	return fail.MapFailure(input, func(f F1) F2 {
		return Failure(f, message, build)
	})
}

// RunCatching executes body and converts any native error it surfaces into
// the structured model: a returned error, or a panic, becomes the failure
// branch with the supplied context message and a ThrowableCause holding the
// error. This is the single boundary where uncontrolled errors enter the
// Result model; everywhere else failure propagation is pure data flow.
func RunCatching[F fail.Failure, R any](ctx context.Context, message string,
	build func(message string, cause fail.Cause) F,
	body func(ctx context.Context) (R, error)) (out fail.Result[F, R]) {

	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			out = fail.Fail[F, R](Err(err, message, build))
		}
	}()

	v, err := body(ctx)
	if err != nil {
		return fail.Fail[F, R](Err(err, message, build))
	}
	return fail.Success[F](v)
}
