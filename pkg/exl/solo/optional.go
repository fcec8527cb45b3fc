package solo

import (
	"context"

	"github.com/ib-77/exl/pkg/exl"
)

func MapOptional[In, Out any](ctx context.Context, input exl.Optional[In],
	onSome func(ctx context.Context, v In) Out) exl.Optional[Out] {

	if v, ok := input.Get(); ok {
		return exl.Some(onSome(ctx, v))
	}
	return exl.None[Out]()
}

func AndThenOptional[In, Out any](ctx context.Context, input exl.Optional[In],
	onSome func(ctx context.Context, v In) exl.Optional[Out]) exl.Optional[Out] {

	if v, ok := input.Get(); ok {
		return onSome(ctx, v)
	}
	return exl.None[Out]()
}

// Filter keeps the value only when keep accepts it.
func Filter[T any](ctx context.Context, input exl.Optional[T],
	keep func(ctx context.Context, v T) bool) exl.Optional[T] {

	if v, ok := input.Get(); ok && keep(ctx, v) {
		return input
	}
	return exl.None[T]()
}

// OkOr lifts an Optional onto the Outcome track, using err when empty.
func OkOr[T, E any](input exl.Optional[T], err E) exl.Outcome[T, E] {
	if v, ok := input.Get(); ok {
		return exl.Ok[T, E](v)
	}
	return exl.Err[T](err)
}
