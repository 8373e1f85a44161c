package solo

import (
	"github.com/ib-77/safevalidation/pkg/rop"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// merge applies the accumulation policy shared by Apply and ZipWith:
// left messages come before right messages.
func merge(left rop.Errors, leftFailed bool, right rop.Errors, rightFailed bool) (rop.Errors, bool) {
	switch {
	case leftFailed && rightFailed:
		return left.Concat(right), true
	case leftFailed:
		return left, true
	case rightFailed:
		return right, true
	}
	return rop.Errors{}, false
}

// Apply calls a wrapped function with a wrapped argument. When both fail the
// function's messages come first.
func Apply[In, Out any](fn rop.Result[func(In) Out], input rop.Result[In]) rop.Result[Out] {
	fErrs, fFailed := fn.Failure()
	inErrs, inFailed := input.Failure()
	if errs, failed := merge(fErrs, fFailed, inErrs, inFailed); failed {
		return rop.FailWith[Out](errs)
	}

	f, _ := fn.Get()
	v, _ := input.Get()
	return rop.Success(f(v))
}

// ZipWith combines two independent results. Both operands are inspected, so
// two failures yield the first's messages followed by the second's.
func ZipWith[A, B, Out any](first rop.Result[A], second rop.Result[B], combine func(a A, b B) Out) rop.Result[Out] {
	aErrs, aFailed := first.Failure()
	bErrs, bFailed := second.Failure()
	if errs, failed := merge(aErrs, aFailed, bErrs, bFailed); failed {
		return rop.FailWith[Out](errs)
	}

	a, _ := first.Get()
	b, _ := second.Get()
	return rop.Success(combine(a, b))
}

func Zip[A, B any](first rop.Result[A], second rop.Result[B]) rop.Result[Pair[A, B]] {
	return ZipWith(first, second, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// ZipLeft keeps the first value but still reports the second's messages.
func ZipLeft[A, B any](first rop.Result[A], second rop.Result[B]) rop.Result[A] {
	return ZipWith(first, second, func(a A, _ B) A { return a })
}

// ZipRight keeps the second value but still reports the first's messages.
func ZipRight[A, B any](first rop.Result[A], second rop.Result[B]) rop.Result[B] {
	return ZipWith(first, second, func(_ A, b B) B { return b })
}

func ZipWith3[A, B, C, Out any](first rop.Result[A], second rop.Result[B], third rop.Result[C],
	combine func(a A, b B, c C) Out) rop.Result[Out] {

	return ZipWith(Zip(first, second), third, func(p Pair[A, B], c C) Out {
		return combine(p.First, p.Second, c)
	})
}

func Zip3[A, B, C any](first rop.Result[A], second rop.Result[B], third rop.Result[C]) rop.Result[Triple[A, B, C]] {
	return ZipWith3(first, second, third, func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: a, Second: b, Third: c}
	})
}

// Sequence collects a slice of results. Every failure's messages are reported
// in slice order; an empty slice is a success holding an empty slice.
func Sequence[T any](inputs []rop.Result[T]) rop.Result[[]T] {
	out := rop.Success(make([]T, 0, len(inputs)))
	for _, in := range inputs {
		out = ZipWith(out, in, func(acc []T, v T) []T {
			return append(acc, v)
		})
	}
	return out
}
