package solo

import (
	"github.com/ib-77/safevalidation/pkg/rop"
)

func Curry2[A, B, Out any](f func(A, B) Out) func(A) func(B) Out {
	return func(a A) func(B) Out {
		return func(b B) Out { return f(a, b) }
	}
}

func Curry3[A, B, C, Out any](f func(A, B, C) Out) func(A) func(B) func(C) Out {
	return func(a A) func(B) func(C) Out {
		return func(b B) func(C) Out {
			return func(c C) Out { return f(a, b, c) }
		}
	}
}

func Curry4[A, B, C, D, Out any](f func(A, B, C, D) Out) func(A) func(B) func(C) func(D) Out {
	return func(a A) func(B) func(C) func(D) Out {
		return func(b B) func(C) func(D) Out {
			return func(c C) func(D) Out {
				return func(d D) Out { return f(a, b, c, d) }
			}
		}
	}
}

// Lift2 turns f into a function over results. Messages accumulate left to
// right, one Apply step per argument.
func Lift2[A, B, Out any](f func(A, B) Out) func(rop.Result[A], rop.Result[B]) rop.Result[Out] {
	curried := Curry2(f)
	return func(a rop.Result[A], b rop.Result[B]) rop.Result[Out] {
		return Apply(Map(a, curried), b)
	}
}

func Lift3[A, B, C, Out any](f func(A, B, C) Out) func(rop.Result[A], rop.Result[B], rop.Result[C]) rop.Result[Out] {
	curried := Curry3(f)
	return func(a rop.Result[A], b rop.Result[B], c rop.Result[C]) rop.Result[Out] {
		return Apply(Apply(Map(a, curried), b), c)
	}
}

func Lift4[A, B, C, D, Out any](f func(A, B, C, D) Out) func(rop.Result[A], rop.Result[B], rop.Result[C],
	rop.Result[D]) rop.Result[Out] {

	curried := Curry4(f)
	return func(a rop.Result[A], b rop.Result[B], c rop.Result[C], d rop.Result[D]) rop.Result[Out] {
		return Apply(Apply(Apply(Map(a, curried), b), c), d)
	}
}
