package chain

import (
	"context"

	"github.com/ib-77/exl/pkg/exl"
	"github.com/ib-77/exl/pkg/exl/solo"
)

// Chain wraps an exl.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx     context.Context
	outcome exl.Outcome[T, error]
}

// Start creates a new chain from an outcome
func Start[T any](ctx context.Context, outcome exl.Outcome[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

func FromPair[T any](ctx context.Context, value T, err error) *Chain[T] {
	return Start(ctx, exl.FromPair(value, err))
}

// Outcome returns the underlying exl.Outcome
func (c *Chain[T]) Outcome() exl.Outcome[T, error] {
	return c.outcome
}

// Then chains a function that returns exl.Outcome[U, error]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) exl.Outcome[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Switch(c.ctx, c.outcome, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Try(c.ctx, c.outcome, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		outcome: solo.Map(c.ctx, c.outcome, onSuccess),
	}
}

// Ensure performs a side effect without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:     c.ctx,
		outcome: solo.Tee(c.ctx, c.outcome, onSuccess),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.outcome, onSuccess, onFailure)
}
