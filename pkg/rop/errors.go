package rop

import (
	"errors"
	"strings"
)

// ErrNoMessages is returned when a failure is requested from an empty message list.
var ErrNoMessages = errors.New("rop: failure requires at least one message")

// Errors is an ordered list of validation messages that always holds at least one entry.
// It can only be built through NewErrors or by concatenating existing lists.
// The zero value holds no messages and is rejected by FailWith.
type Errors struct {
	first string
	rest  []string
	set   bool
}

func NewErrors(first string, rest ...string) Errors {
	return Errors{first: first, rest: append([]string(nil), rest...), set: true}
}

// IsZero reports whether e is the zero value rather than a list built by NewErrors.
func (e Errors) IsZero() bool {
	return !e.set
}

func (e Errors) Len() int {
	if !e.set {
		return 0
	}
	return 1 + len(e.rest)
}

func (e Errors) First() string {
	return e.first
}

// Slice returns a copy of the messages in order.
func (e Errors) Slice() []string {
	out := make([]string, 0, e.Len())
	if !e.set {
		return out
	}
	out = append(out, e.first)
	return append(out, e.rest...)
}

// Concat returns a new list with the messages of e followed by the messages of other.
func (e Errors) Concat(other Errors) Errors {
	if !other.set {
		return e
	}
	if !e.set {
		return other
	}
	rest := make([]string, 0, len(e.rest)+other.Len())
	rest = append(rest, e.rest...)
	rest = append(rest, other.first)
	rest = append(rest, other.rest...)
	return Errors{first: e.first, rest: rest, set: true}
}

func (e Errors) String() string {
	return strings.Join(e.Slice(), "; ")
}

// UnwrapOnFailureError is the panic value raised by Result.UnsafeUnwrap on a failure.
// It signals a caller bug, not bad input.
type UnwrapOnFailureError struct {
	Messages []string
}

func (e *UnwrapOnFailureError) Error() string {
	return "rop: unwrap called on failure: " + strings.Join(e.Messages, "; ")
}
