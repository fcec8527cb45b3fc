// Package solo contains single-value, synchronous railway primitives over
// exl.Outcome and exl.Optional. Every function here is total: a failure
// travels along the Err track, nothing is fatal.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, error]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Outcome[In, E] to Outcome[Out, E]
// - Map/MapErr: transform one side of an Outcome
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - MapOptional/AndThenOptional/Filter/OkOr: the same style over Optional
package solo
