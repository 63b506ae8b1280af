package optional

import (
	"fmt"
	"reflect"
)

type Optional[T any] struct {
	value   T
	present bool
}

func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func OfPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}
	return Of(*ptr)
}

// OfNilable treats nil-able kinds (pointers, interfaces, maps, slices,
// channels, funcs) holding nil as absent.
func OfNilable[T any](value T) Optional[T] {
	if isNil(value) {
		return Empty[T]()
	}
	return Of(value)
}

func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the contained value and panics when the Optional is empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: no value present")
	}
	return o.value
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// OrElseThrow returns the contained value or panics with the given payload.
func (o Optional[T]) OrElseThrow(err any) T {
	if !o.present {
		panic(err)
	}
	return o.value
}

func (o Optional[T]) IfPresent(fn func(T)) Optional[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

func (o Optional[T]) IfNotPresent(fn func()) Optional[T] {
	if !o.present {
		fn()
	}
	return o
}

func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

func Map[In, Out any](o Optional[In], fn func(In) Out) Optional[Out] {
	if v, ok := o.Get(); ok {
		return Of(fn(v))
	}
	return Empty[Out]()
}

func AndThen[In, Out any](o Optional[In], fn func(In) Optional[Out]) Optional[Out] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return Empty[Out]()
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Optional(%v)", o.value)
	}
	return "Optional.empty"
}
