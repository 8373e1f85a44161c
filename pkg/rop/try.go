package rop

import (
	"fmt"
	"reflect"
)

// Try runs f and wraps its return value as a success. A panic raised inside f
// is recovered and becomes a single-message failure.
//
// Every panic is recovered, including runtime faults such as a nil dereference
// or an index out of range; they cannot be told apart from intentional ones.
func Try[T any](f func() T) Result[T] {
	return TryWith(f, PanicMessage)
}

// TryWith is Try with a caller-supplied projection from the recovered value to a message.
func TryWith[T any](f func() T, project func(recovered any) string) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](project(r))
		}
	}()
	return Success(f())
}

// TryErr runs a function in the (value, error) convention. A non-nil error
// becomes a failure with one message per joined error; panics are recovered as in Try.
func TryErr[T any](f func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](PanicMessage(r))
		}
	}()

	out, err := f()
	if !IsNil(err) {
		return FailWith[T](messagesOf(err))
	}
	return Success(out)
}

// PanicMessage is the default projection used by Try.
func PanicMessage(recovered any) string {
	switch v := recovered.(type) {
	case error:
		return v.Error()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join tree one level into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func messagesOf(err error) Errors {
	parts := GetErrors(err)
	if len(parts) == 0 {
		return NewErrors(err.Error())
	}
	rest := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		rest = append(rest, p.Error())
	}
	return NewErrors(parts[0].Error(), rest...)
}
