package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/dgmcdona/result/pkg/optional"
)

type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failFrom moves a failure across a change of the value type parameter,
// keeping payload and metadata intact.
func failFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// widen re-types the failure slot to any, keeping payload and metadata intact.
func widen[T, E any](from Result[T, E]) Result[T, any] {
	to := Result[T, any]{
		value:     from.value,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
	if !from.isSuccess {
		to.err = from.err
	}
	return to
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// GetOrNil returns a pointer to the success value, or nil on failure.
// The pointer targets a copy.
func (r Result[T, E]) GetOrNil() *T {
	if !r.isSuccess {
		return nil
	}
	v := r.value
	return &v
}

// ErrOrNil returns a pointer to the failure value, or nil on success.
func (r Result[T, E]) ErrOrNil() *E {
	if r.isSuccess {
		return nil
	}
	e := r.err
	return &e
}

// MustGet returns the success value, or panics with the stored failure
// payload exactly as it was carried.
func (r Result[T, E]) MustGet() T {
	if !r.isSuccess {
		panic(r.err)
	}
	return r.value
}

func (r Result[T, E]) GetOrElse(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// OnSuccess invokes fn with the success value and returns the receiver
// unchanged. The callback is not protected.
func (r Result[T, E]) OnSuccess(fn func(T)) Result[T, E] {
	if r.isSuccess {
		fn(r.value)
	}
	return r
}

// OnFailure invokes fn with the failure value and returns the receiver
// unchanged. The callback is not protected.
func (r Result[T, E]) OnFailure(fn func(E)) Result[T, E] {
	if !r.isSuccess {
		fn(r.err)
	}
	return r
}

// Ok converts to an Optional, discarding the failure value.
func (r Result[T, E]) Ok() optional.Optional[T] {
	if r.isSuccess {
		return optional.Of(r.value)
	}
	return optional.Empty[T]()
}
