// Package chain provides a fluent wrapper around Result[T]
// for building synchronous validation chains using solo primitives.
//
// It composes Bind, Map, TryErr, Tee and Finally behind a convenient
// Chain[T] type, so a sequence of dependent steps reads top to bottom.
// Chains short-circuit: once a step fails, later steps are skipped and the
// first failure's messages are what Finally sees. Use solo.ZipWith or the
// Lift helpers when independent checks should all be reported.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
