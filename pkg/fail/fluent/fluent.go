package fluent

import (
	"context"

	"github.com/ib-77/failchain/pkg/fail"
	"github.com/ib-77/failchain/pkg/fail/attach"
)

type Chain[F fail.Failure, R any] struct {
	ctx context.Context
	res fail.Result[F, R]
}

func Start[F fail.Failure, R any](ctx context.Context, r fail.Result[F, R]) Chain[F, R] {
	return Chain[F, R]{ctx: ctx, res: r}
}

func FromValue[F fail.Failure, R any](ctx context.Context, v R) Chain[F, R] {
	return Start(ctx, fail.Success[F](v))
}

func (c Chain[F, R]) Result() fail.Result[F, R] {
	return c.res
}

// Then composes functions that already return fail.Result[F, R]
func (c Chain[F, R]) Then(onSuccess func(ctx context.Context, v R) fail.Result[F, R]) Chain[F, R] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[F, R]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (R, error), converting a returned
// error or panic into the failure branch via build with message as context
func (c Chain[F, R]) ThenTry(message string,
	build func(message string, cause fail.Cause) F,
	try func(ctx context.Context, v R) (R, error)) Chain[F, R] {

	if c.res.IsFailure() {
		return c
	}

	in := c.res.Value()
	res := attach.RunCatching(c.ctx, message, build,
		func(ctx context.Context) (R, error) {
			return try(ctx, in)
		})
	return Chain[F, R]{ctx: c.ctx, res: res}
}

// Attach wraps the failure branch once more with message, leaving a success
// untouched
func (c Chain[F, R]) Attach(message string,
	build func(message string, cause fail.Cause) F) Chain[F, R] {

	return Chain[F, R]{ctx: c.ctx, res: attach.Result(c.res, message, build)}
}

// Map transforms the successful value to a new value
func (c Chain[F, R]) Map(onSuccess func(ctx context.Context, v R) R) Chain[F, R] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[F, R]{ctx: c.ctx, res: fail.Success[F](onSuccess(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[F, R]) Ensure(onSuccess func(context.Context, R),
	onFailure func(context.Context, F)) Chain[F, R] {

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value via success/failure handlers
func (c Chain[F, R]) Finally(
	onSuccess func(context.Context, R) R,
	onFailure func(context.Context, F) R,
) R {
	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Failure())
}
