package solo

import (
	"github.com/ib-77/safevalidation/pkg/rop"
)

// Validate wraps input as a success when valid reports true, otherwise as a
// failure carrying errMsg.
func Validate[T any](input T, valid func(in T) bool, errMsg string) rop.Result[T] {
	if valid(input) {
		return Succeed(input)
	}
	return Fail[T](errMsg)
}

// AndValidate validates a value that is already wrapped; failures pass through.
func AndValidate[T any](input rop.Result[T], valid func(in T) bool, errMsg string) rop.Result[T] {
	return Bind(input, func(in T) rop.Result[T] {
		return Validate(in, valid, errMsg)
	})
}

// ValidateAll runs every check against input and reports all of their messages.
func ValidateAll[T any](input T, checks ...func(in T) rop.Result[T]) rop.Result[T] {
	out := Succeed(input)
	for _, check := range checks {
		out = ZipLeft(out, check(input))
	}
	return out
}

// ValidateFirst runs checks in order and stops at the first failure.
func ValidateFirst[T any](input T, checks ...func(in T) rop.Result[T]) rop.Result[T] {
	out := Succeed(input)
	for _, check := range checks {
		out = Bind(out, check)
	}
	return out
}
