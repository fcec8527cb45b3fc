// Package match dispatches over tagged cells with total case coverage.
//
// Two ways to bind handlers:
// - Match2/Match3/Option/Outcome: positional handlers, checked by the
//   compiler; a missing, extra or mistyped handler does not build
// - On + Compose2/Compose3: handlers bound by exact alternative type in any
//   order; a missing or duplicate binding is rejected when composing, before
//   any cell is examined
//
// Recursive2/Recursive3 and Fix2/Fix3 hand every handler a recurse function
// that re-runs the same dispatch on a nested cell of the same shape.
package match
