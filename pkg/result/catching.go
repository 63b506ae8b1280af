package result

// RunCatching invokes fn inside a protected call. A normal return yields a
// success; a panic yields a failure carrying the recovered payload verbatim.
// The failure slot is any because a panic payload is untyped.
func RunCatching[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if p := recover(); p != nil {
			res = Failure[T, any](p)
		}
	}()
	return Success[T, any](fn())
}

// Pcall is a convenience alias for RunCatching.
func Pcall[T any](fn func() T) Result[T, any] {
	return RunCatching(fn)
}

// MapCatching transforms the success value inside a protected call: a panic
// in fn becomes the failure payload instead of escaping. On failure it
// behaves like Map, passing the original payload through.
func MapCatching[In, Out, E any](r Result[In, E], fn func(In) Out) (res Result[Out, any]) {
	if r.IsFailure() {
		return failFrom[In, Out](widen(r))
	}
	defer func() {
		if p := recover(); p != nil {
			res = Failure[Out, any](p)
		}
	}()
	return Success[Out, any](fn(r.value))
}

// RecoverCatching applies fn to the failure value inside a protected call: a
// panic in fn replaces the old failure payload with the recovered one. On
// success the receiver passes through.
func RecoverCatching[T, E any](r Result[T, E], fn func(E) T) (res Result[T, any]) {
	if r.IsSuccess() {
		return widen(r)
	}
	defer func() {
		if p := recover(); p != nil {
			res = Failure[T, any](p)
		}
	}()
	return Success[T, any](fn(r.err))
}
