// Package chain provides a fluent wrapper around exl.Outcome[T, error]
// for building synchronous railway chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromPair: begin a chain from an Outcome, a value or a
//   (value, error) pair
// - Then: switch to a new Outcome[U, error] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the outcome
// - Finally: collapse the chain into a final value via handlers
package chain
