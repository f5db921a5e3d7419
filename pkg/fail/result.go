package fail

import (
	"time"

	"github.com/google/uuid"
)

// Result is the binary outcome of a fallible operation: either a success
// value of type R or a failure value of type F.
type Result[F Failure, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     R
	failure   F
	isSuccess bool
	hasValue  bool
}

func Success[F Failure, R any](v R) Result[F, R] {
	return Result[F, R]{
		value:     v,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[F Failure, R any](f F) Result[F, R] {
	return Result[F, R]{
		failure:   f,
		isSuccess: false,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[F, R]) Value() R {
	return r.value
}

func (r Result[F, R]) Failure() F {
	return r.failure
}

func (r Result[F, R]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[F, R]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[F, R]) HasValue() bool {
	return r.hasValue
}

func (r Result[F, R]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[F, R]) Id() uuid.UUID {
	return r.id
}

// MapFailure maps only the failure branch of input through onFailure. The
// success branch passes through unchanged and unexamined; identity and
// creation time carry over to the mapped result.
func MapFailure[F1, F2 Failure, R any](input Result[F1, R], onFailure func(f F1) F2) Result[F2, R] {
	if input.isSuccess {
		return Result[F2, R]{
			id:        input.id,
			createdAt: input.createdAt,
			value:     input.value,
			isSuccess: true,
			hasValue:  input.hasValue,
		}
	}
	return Result[F2, R]{
		id:        input.id,
		createdAt: input.createdAt,
		failure:   onFailure(input.failure),
		isSuccess: false,
		hasValue:  false,
	}
}
