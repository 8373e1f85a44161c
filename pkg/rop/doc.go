// Package rop defines Result[T], a value that is either a success or a
// non-empty, ordered list of validation messages.
//
// Results are immutable. Combinators live in package solo; this package holds
// the container, its constructors and extraction:
// - Success/Fail/FailWith/FailFrom: construct a Result[T]
// - Try/TryWith/TryErr: absorb a panic or a returned error into a failure
// - Get/UnwrapOr/UnsafeUnwrap/Match: read the value or the messages
package rop
