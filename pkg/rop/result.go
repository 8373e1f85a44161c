package rop

import (
	"errors"
	"fmt"
)

// Result holds either a value or a non-empty list of messages.
// The zero value is a success holding the zero T.
type Result[T any] struct {
	result T
	errs   Errors
	failed bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{result: r}
}

// Fail builds a failure from one or more messages, keeping their order.
func Fail[T any](msg string, more ...string) Result[T] {
	return FailWith[T](NewErrors(msg, more...))
}

// FailWith builds a failure from a message list. It panics with ErrNoMessages
// when errs is the zero Errors, since that failure would carry no message.
func FailWith[T any](errs Errors) Result[T] {
	if errs.IsZero() {
		panic(ErrNoMessages)
	}
	return Result[T]{errs: errs, failed: true}
}

// FailFrom builds a failure from a message slice. An empty slice is rejected
// with ErrNoMessages since a failure without messages would lose information.
func FailFrom[T any](msgs []string) (Result[T], error) {
	if len(msgs) == 0 {
		return Result[T]{}, ErrNoMessages
	}
	return Fail[T](msgs[0], msgs[1:]...), nil
}

func (r Result[T]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T]) IsFailure() bool {
	return r.failed
}

// Get returns the value and true on success, or the zero T and false on failure.
func (r Result[T]) Get() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.result, true
}

// Failure returns the message list and true on failure.
func (r Result[T]) Failure() (Errors, bool) {
	return r.errs, r.failed
}

// Errors returns a copy of the messages. It is empty for a success.
func (r Result[T]) Errors() []string {
	if !r.failed {
		return []string{}
	}
	return r.errs.Slice()
}

// Err joins the messages into a single error, or returns nil for a success.
// GetErrors splits it back into one error per message.
func (r Result[T]) Err() error {
	if !r.failed {
		return nil
	}
	msgs := r.errs.Slice()
	errs := make([]error, len(msgs))
	for i, m := range msgs {
		errs[i] = errors.New(m)
	}
	return errors.Join(errs...)
}

// UnsafeUnwrap returns the value and panics with *UnwrapOnFailureError on a failure.
func (r Result[T]) UnsafeUnwrap() T {
	if r.failed {
		panic(&UnwrapOnFailureError{Messages: r.errs.Slice()})
	}
	return r.result
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.failed {
		return def
	}
	return r.result
}

// Match calls exactly one of the callbacks. Nil callbacks are skipped.
func (r Result[T]) Match(onSuccess func(T), onFailure func([]string)) {
	if r.failed {
		if onFailure != nil {
			onFailure(r.errs.Slice())
		}
		return
	}
	if onSuccess != nil {
		onSuccess(r.result)
	}
}

func (r Result[T]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.errs.Slice())
	}
	return fmt.Sprintf("Ok(%v)", r.result)
}
