// Package result implements a two-variant Result[T, E] value type for
// propagating fallible computations without using panics as control flow.
// The failure payload E is opaque: any type can travel through the algebra
// unchanged, not just error or string.
//
// Highlights:
// - Success/Failure: construct a Result
// - RunCatching/Pcall: adapt a panicking function into a Result
// - Map/MapCatching: transform the success value (unprotected / protected)
// - Recover/RecoverCatching: turn a failure back into a success
// - AndThen/OrElse: monadic chaining on the matching variant
// - OnSuccess/OnFailure: side effects without changing the result
// - GetOrNil/ErrOrNil/MustGet/GetOrElse/Ok: extraction and conversion
//
// Combinators named *Catching intercept a panic in their callback and carry
// the recovered payload as the failure value; all other combinators let a
// panic escape to the caller.
package result
