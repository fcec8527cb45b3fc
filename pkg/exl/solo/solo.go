package solo

import (
	"context"
	"errors"

	"github.com/ib-77/exl/pkg/exl"
)

func Succeed[T any](input T) exl.Outcome[T, error] {
	return exl.Ok[T, error](input)
}

func Fail[T any](err error) exl.Outcome[T, error] {
	return exl.Err[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) exl.Outcome[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input exl.Outcome[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) exl.Outcome[T, error] {

	v, ok := input.Ok().Get()
	if !ok {
		return input
	}
	if isValid, errMsg := validate(ctx, v); !isValid {
		return Fail[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input and joins the failures.
// With breakOnError it stops at the first failure.
func ValidateAll[T any](ctx context.Context, input exl.Outcome[T, error], breakOnError bool,
	validators ...func(ctx context.Context, in T) (valid bool, errMsg string)) exl.Outcome[T, error] {

	v, ok := input.Ok().Get()
	if !ok {
		return input
	}

	var err error
	for _, validate := range validators {
		if ctx.Err() != nil {
			err = errors.Join(append(exl.GetErrors(err), ctx.Err())...)
			break
		}
		if valid, errMsg := validate(ctx, v); !valid {
			err = errors.Join(append(exl.GetErrors(err), errors.New(errMsg))...)
			if breakOnError {
				break
			}
		}
	}

	if err == nil {
		return input
	}
	return Fail[T](err)
}

func Switch[In, Out, E any](ctx context.Context, input exl.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) exl.Outcome[Out, E]) exl.Outcome[Out, E] {

	if v, ok := input.Ok().Get(); ok {
		return onSuccess(ctx, v)
	}
	return exl.Err[Out](input.UnwrapErr())
}

func Map[In, Out, E any](ctx context.Context, input exl.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) exl.Outcome[Out, E] {

	if v, ok := input.Ok().Get(); ok {
		return exl.Ok[Out, E](onSuccess(ctx, v))
	}
	return exl.Err[Out](input.UnwrapErr())
}

func MapErr[T, E, F any](ctx context.Context, input exl.Outcome[T, E],
	onError func(ctx context.Context, err E) F) exl.Outcome[T, F] {

	if e, ok := input.Err().Get(); ok {
		return exl.Err[T](onError(ctx, e))
	}
	return exl.Ok[T, F](input.Unwrap())
}

func Try[In, Out any](ctx context.Context, input exl.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) exl.Outcome[Out, error] {

	v, ok := input.Ok().Get()
	if !ok {
		return Fail[Out](input.UnwrapErr())
	}
	out, err := onTryExecute(ctx, v)
	if err != nil {
		return Fail[Out](err)
	}
	return Succeed(out)
}

func FailOnError[T any](ctx context.Context, input exl.Outcome[T, error],
	maybeErr func(ctx context.Context, in T) error) exl.Outcome[T, error] {

	if v, ok := input.Ok().Get(); ok {
		if err := maybeErr(ctx, v); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Tee[T, E any](ctx context.Context, input exl.Outcome[T, E],
	onSuccess func(ctx context.Context, r T)) exl.Outcome[T, E] {

	if v, ok := input.Ok().Get(); ok {
		onSuccess(ctx, v)
	}
	return input
}

func DoubleTee[T, E any](ctx context.Context, input exl.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) exl.Outcome[T, E] {

	if v, ok := input.Ok().Get(); ok {
		onSuccess(ctx, v)
	} else {
		onError(ctx, input.UnwrapErr())
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input exl.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if v, ok := input.Ok().Get(); ok {
		return onSuccess(ctx, v)
	}
	return onError(ctx, input.UnwrapErr())
}
