// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result values that stay in one value type.
//
// The failure slot is fixed at any so protected steps (MapCatching,
// RecoverCatching) compose without re-typing the chain mid-pipeline.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/ThenTry: compose result-returning or (T, error)-returning functions
// - Map/MapCatching: transform the successful value
// - Recover/RecoverCatching: turn a failure back into a success
// - Ensure: trigger side effects without changing the result
// - Or: fall back to an alternative chain
// - Finally: reduce to a concrete value via handlers
package chain
