package result

import "github.com/dgmcdona/result/pkg/optional"

// Map transforms the success value. A panic in fn escapes to the caller;
// use MapCatching to capture it instead.
func Map[In, Out, E any](r Result[In, E], fn func(In) Out) Result[Out, E] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return Success[Out, E](fn(r.value))
}

// AndThen chains a function that itself returns a Result. On failure the
// original failure passes through and fn is not invoked. The constructor
// Success[In, E] is itself a valid fn.
func AndThen[In, Out, E any](r Result[In, E], fn func(In) Result[Out, E]) Result[Out, E] {
	if r.IsFailure() {
		return failFrom[In, Out](r)
	}
	return fn(r.value)
}

// OrElse chains on the failure side. On success the receiver passes through
// and fn is not invoked. The constructor Failure[T, E] is itself a valid fn.
func OrElse[T, E any](r Result[T, E], fn func(E) Result[T, E]) Result[T, E] {
	if r.IsSuccess() {
		return r
	}
	return fn(r.err)
}

// Recover turns a failure into a success by applying fn to the failure
// value. A panic in fn escapes; use RecoverCatching to capture it.
func Recover[T, E any](r Result[T, E], fn func(E) T) Result[T, E] {
	if r.IsSuccess() {
		return r
	}
	return Success[T, E](fn(r.err))
}

// Fold collapses the Result into a single value.
func Fold[T, E, Out any](r Result[T, E], onSuccess func(T) Out, onFailure func(E) Out) Out {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Of adapts the (value, error) convention.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

// FromOptional maps a present Optional to a success and an empty one to a
// failure carrying err.
func FromOptional[T, E any](o optional.Optional[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T, E](err)
}
