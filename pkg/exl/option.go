package exl

import (
	"fmt"

	"github.com/ib-77/exl/pkg/exl/fault"
)

// Optional holds either a T or nothing. Its zero value is None.
//
// As a union it is Cell2[T, Empty]: the value alternative comes first. The
// stored cell keeps Empty first only so that the zero value is None.
type Optional[T any] struct {
	cell Cell2[Empty, T]
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{cell: Second[Empty](v)}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr is Some(*p) for a non-nil pointer and None otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Cell returns the contents as a two-way union with Some first.
func (o Optional[T]) Cell() Cell2[T, Empty] {
	if v, ok := o.cell.TrySecond(); ok {
		return First[T, Empty](v)
	}
	return Second[T](Empty{})
}

func (o Optional[T]) IsSome() bool {
	return o.cell.IsSecond()
}

func (o Optional[T]) IsNone() bool {
	return o.cell.IsFirst()
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.cell.TrySecond()
}

// Unwrap returns the value; an empty Optional is fatal.
func (o Optional[T]) Unwrap() T {
	return o.Expect("exl: unwrap of an empty Optional")
}

// Expect returns the value; an empty Optional is fatal and reports msg.
func (o Optional[T]) Expect(msg string) T {
	v, ok := o.cell.TrySecond()
	if !ok {
		fault.Panic(msg)
	}
	return v
}

func (o Optional[T]) UnwrapOr(def T) T {
	if v, ok := o.cell.TrySecond(); ok {
		return v
	}
	return def
}

func (o Optional[T]) UnwrapOrDefault() T {
	var zero T
	return o.UnwrapOr(zero)
}

func (o Optional[T]) UnwrapOrElse(produce func() T) T {
	if v, ok := o.cell.TrySecond(); ok {
		return v
	}
	return produce()
}

// Take moves the contents out and leaves the receiver empty.
func (o *Optional[T]) Take() Optional[T] {
	return Optional[T]{cell: o.cell.Take()}
}

// Replace installs v and returns the previous contents.
func (o *Optional[T]) Replace(v T) Optional[T] {
	return Optional[T]{cell: o.cell.Swap(Second[Empty](v))}
}

func (o Optional[T]) String() string {
	if v, ok := o.cell.TrySecond(); ok {
		return fmt.Sprintf("Some(%v)", v)
	}
	return "None"
}

// Contains reports whether o holds a value equal to v.
func Contains[T comparable](o Optional[T], v T) bool {
	got, ok := o.Get()
	return ok && got == v
}
