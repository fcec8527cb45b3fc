package exl

import (
	"fmt"

	"github.com/ib-77/exl/pkg/exl/fault"
)

// Outcome holds either a success value T or an error value E.
// The zero value is Ok with the zero T.
type Outcome[T, E any] struct {
	cell Cell2[T, E]
}

func Ok[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{cell: First[T, E](v)}
}

func Err[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{cell: Second[T](e)}
}

// FromPair adapts the (value, error) convention. A typed nil error counts as
// success.
func FromPair[T any](v T, err error) Outcome[T, error] {
	if IsNil(err) {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

func (r Outcome[T, E]) Cell() Cell2[T, E] {
	return r.cell
}

func (r Outcome[T, E]) IsOk() bool {
	return r.cell.IsFirst()
}

func (r Outcome[T, E]) IsErr() bool {
	return r.cell.IsSecond()
}

// Ok converts the success side to an Optional.
func (r Outcome[T, E]) Ok() Optional[T] {
	if v, ok := r.cell.TryFirst(); ok {
		return Some(v)
	}
	return None[T]()
}

// Err converts the error side to an Optional.
func (r Outcome[T, E]) Err() Optional[E] {
	if e, ok := r.cell.TrySecond(); ok {
		return Some(e)
	}
	return None[E]()
}

func (r Outcome[T, E]) Unwrap() T {
	if e, ok := r.cell.TrySecond(); ok {
		fault.Panic(fmt.Sprintf("exl: unwrap of an Err Outcome: %v", e))
	}
	return r.cell.first
}

func (r Outcome[T, E]) Expect(msg string) T {
	v, ok := r.cell.TryFirst()
	if !ok {
		fault.Panic(msg)
	}
	return v
}

func (r Outcome[T, E]) UnwrapErr() E {
	return r.ExpectErr("exl: unwrap_err of an Ok Outcome")
}

func (r Outcome[T, E]) ExpectErr(msg string) E {
	e, ok := r.cell.TrySecond()
	if !ok {
		fault.Panic(msg)
	}
	return e
}

func (r Outcome[T, E]) UnwrapOr(def T) T {
	if v, ok := r.cell.TryFirst(); ok {
		return v
	}
	return def
}

func (r Outcome[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}

func (r Outcome[T, E]) UnwrapOrElse(produce func() T) T {
	if v, ok := r.cell.TryFirst(); ok {
		return v
	}
	return produce()
}

func (r Outcome[T, E]) String() string {
	if e, ok := r.cell.TrySecond(); ok {
		return fmt.Sprintf("Err(%v)", e)
	}
	return fmt.Sprintf("Ok(%v)", r.cell.first)
}
