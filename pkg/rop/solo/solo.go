package solo

import (
	"github.com/ib-77/safevalidation/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](msg string, more ...string) rop.Result[T] {
	return rop.Fail[T](msg, more...)
}

// Map applies onSuccess to a successful value. A failure is passed through with
// its messages unchanged.
func Map[In, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	if errs, failed := input.Failure(); failed {
		return rop.FailWith[Out](errs)
	}
	v, _ := input.Get()
	return rop.Success(onSuccess(v))
}

// Bind sequences a result-returning step. On failure onSuccess is never called,
// so only the first failure of a Bind chain survives.
func Bind[In, Out any](input rop.Result[In], onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	if errs, failed := input.Failure(); failed {
		return rop.FailWith[Out](errs)
	}
	v, _ := input.Get()
	return onSuccess(v)
}

// BindWith binds input into an intermediate result and combines both values.
// A failed intermediate reports only its own messages.
func BindWith[In, Mid, Out any](input rop.Result[In],
	intermediate func(r In) rop.Result[Mid],
	combine func(r In, m Mid) Out) rop.Result[Out] {

	return Bind(input, func(r In) rop.Result[Out] {
		return Map(intermediate(r), func(m Mid) Out {
			return combine(r, m)
		})
	})
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if v, ok := input.Get(); ok {
		onSuccess(v)
	}
	return input
}

// Finally reduces a result to a concrete value.
func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onFailure func(errs []string) Out) Out {

	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return onFailure(input.Errors())
}
