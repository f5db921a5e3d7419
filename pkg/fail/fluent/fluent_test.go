package fluent

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/failchain/pkg/fail"
)

func buildBasic(message string, cause fail.Cause) fail.Basic {
	return fail.NewBasic(message, cause)
}

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, fail.Success[fail.Basic](5))

	out := chain.Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[fail.Basic](ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, fail.Fail[fail.Basic, int](fail.NewBasic("boom", nil)))

	called := false
	chain = chain.Then(func(ctx context.Context, v int) fail.Result[fail.Basic, int] {
		called = true
		return fail.Success[fail.Basic](v + 1)
	})

	out := chain.Result()
	if out.IsSuccess() || out.Failure().FailMessage() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, failure=%v", out.IsSuccess(), out.Failure())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[fail.Basic](ctx, 3).
		Then(func(ctx context.Context, v int) fail.Result[fail.Basic, int] {
			return fail.Success[fail.Basic](v * 2)
		}).
		Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThenTry_ErrorBecomesFailureWithContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	native := errors.New("try-error")

	out := FromValue[fail.Basic](ctx, 10).
		ThenTry("multiplying", buildBasic, func(ctx context.Context, v int) (int, error) {
			return 0, native
		}).
		Result()

	if out.IsSuccess() {
		t.Fatalf("expected failure")
	}
	f := out.Failure()
	if f.FailMessage() != "multiplying" {
		t.Fatalf("expected context message, got %q", f.FailMessage())
	}
	tc, ok := f.FailCause().(fail.ThrowableCause)
	if !ok || tc.Err() != native {
		t.Fatalf("expected ThrowableCause holding try-error, got %v", f.FailCause())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[fail.Basic](ctx, 4).
		ThenTry("squaring", buildBasic, func(ctx context.Context, v int) (int, error) {
			return v * v, nil
		}).
		Result()

	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestAttach_AddsOneLayer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	original := fail.NewBasic("low level", nil)

	out := Start(ctx, fail.Fail[fail.Basic, int](original)).
		Attach("while serving request", buildBasic).
		Result()

	f := out.Failure()
	if f.FailMessage() != "while serving request" {
		t.Fatalf("expected context message, got %q", f.FailMessage())
	}
	if len(fail.CausalChain(f)) != 1 {
		t.Fatalf("expected exactly one cause, got %d", len(fail.CausalChain(f)))
	}
}

func TestAttach_SuccessUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[fail.Basic](ctx, 9).
		Attach("pointless", buildBasic).
		Result()

	if !out.IsSuccess() || out.Value() != 9 {
		t.Fatalf("expected untouched success, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[fail.Basic](ctx, 5).
		Map(func(ctx context.Context, v int) int { return v + 100 }).
		Result()

	if !out.IsSuccess() || out.Value() != 105 {
		t.Fatalf("expected success with 105, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sawSuccess, sawFailure bool
	FromValue[fail.Basic](ctx, 1).
		Ensure(func(ctx context.Context, v int) { sawSuccess = true },
			func(ctx context.Context, f fail.Basic) { sawFailure = true })

	if !sawSuccess || sawFailure {
		t.Fatalf("expected success handler only, got success=%v failure=%v", sawSuccess, sawFailure)
	}

	sawSuccess, sawFailure = false, false
	Start(ctx, fail.Fail[fail.Basic, int](fail.NewBasic("bad", nil))).
		Ensure(func(ctx context.Context, v int) { sawSuccess = true },
			func(ctx context.Context, f fail.Basic) { sawFailure = true })

	if sawSuccess || !sawFailure {
		t.Fatalf("expected failure handler only, got success=%v failure=%v", sawSuccess, sawFailure)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue[fail.Basic](ctx, 2).
		Finally(
			func(ctx context.Context, v int) int { return v * 10 },
			func(ctx context.Context, f fail.Basic) int { return -1 })
	if got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}

	got = Start(ctx, fail.Fail[fail.Basic, int](fail.NewBasic("bad", nil))).
		Finally(
			func(ctx context.Context, v int) int { return v },
			func(ctx context.Context, f fail.Basic) int { return -1 })
	if got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
