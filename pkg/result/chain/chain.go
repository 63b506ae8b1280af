package chain

import (
	"github.com/dgmcdona/result/pkg/result"
)

type Chain[T any] struct {
	res result.Result[T, any]
}

func Start[T any](r result.Result[T, any]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Success[T, any](v))
}

func (c Chain[T]) Result() result.Result[T, any] {
	return c.res
}

// Then composes a function that already returns a result
func (c Chain[T]) Then(onSuccess func(t T) result.Result[T, any]) Chain[T] {
	return Chain[T]{res: result.AndThen(c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{res: result.AndThen(c.res, func(t T) result.Result[T, any] {
		out, err := try(t)
		if err != nil {
			return result.Failure[T, any](err)
		}
		return result.Success[T, any](out)
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: result.Map(c.res, onSuccess)}
}

// MapCatching transforms the successful value, capturing a panic as failure
func (c Chain[T]) MapCatching(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: result.MapCatching(c.res, onSuccess)}
}

// Recover converts a failure into a success via onFailure
func (c Chain[T]) Recover(onFailure func(err any) T) Chain[T] {
	return Chain[T]{res: result.Recover(c.res, onFailure)}
}

// RecoverCatching converts a failure into a success, capturing a panic as
// the new failure
func (c Chain[T]) RecoverCatching(onFailure func(err any) T) Chain[T] {
	return Chain[T]{res: result.RecoverCatching(c.res, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(any)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			c.res.OnFailure(onFailure)
		}
		return c
	}
	if onSuccess != nil {
		c.res.OnSuccess(onSuccess)
	}
	return c
}

// Or returns the first successful chain, falling back to the receiver's
// failure when neither succeeded
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(any) T) T {
	return result.Fold(c.res, onSuccess, onFailure)
}
