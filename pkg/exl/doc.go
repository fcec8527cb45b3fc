// Package exl provides closed tagged unions and the two wrappers built on
// them: Optional[T] ("maybe a T") and Outcome[T, E] ("T or E").
//
// Highlights:
// - Cell2/Cell3: a discriminant plus exactly one active alternative
// - First/Second/Third: tag a cell from the static alternative of a value
// - Some/None and Ok/Err: construct Optional and Outcome values
// - UnwrapOr/UnwrapOrDefault/UnwrapOrElse: total accessors that never fail
// - Unwrap/Expect: fatal accessors, a wrong alternative ends the process
//   through package fault
// - Equal2/Compare2: discriminant first, then the contained value
//
// Exhaustive dispatch over cells lives in package match; combinators in the
// railway style live in packages solo and chain.
package exl
