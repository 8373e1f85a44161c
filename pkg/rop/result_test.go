package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Empty(t, r.Errors())
	assert.NotNil(t, r.Errors())
	assert.NoError(t, r.Err())
	assert.Equal(t, 42, r.UnsafeUnwrap())
	assert.Equal(t, 42, r.UnwrapOr(0))
}

func TestZeroValueIsSuccess(t *testing.T) {
	t.Parallel()
	var r Result[string]

	assert.True(t, r.IsSuccess())
	assert.Empty(t, r.Errors())
}

func TestFail_PreservesOrder(t *testing.T) {
	t.Parallel()
	r := Fail[int]("a", "b", "c")

	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, []string{"a", "b", "c"}, r.Errors())
	assert.Equal(t, -1, r.UnwrapOr(-1))
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	r, err := FailFrom[int]([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, r.Errors())

	_, err = FailFrom[int](nil)
	assert.ErrorIs(t, err, ErrNoMessages)
	_, err = FailFrom[int]([]string{})
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestFailWith_RejectsZeroErrors(t *testing.T) {
	t.Parallel()
	var zero Errors

	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Slice())
	assert.PanicsWithError(t, ErrNoMessages.Error(), func() { FailWith[int](zero) })
	assert.PanicsWithError(t, ErrNoMessages.Error(), func() { FailWith[int](Errors{}) })
	assert.False(t, NewErrors("").IsZero())
	assert.Equal(t, []string{""}, FailWith[int](NewErrors("")).Errors())
}

func TestErrors_ConcatWithZero(t *testing.T) {
	t.Parallel()
	var zero Errors
	list := NewErrors("a", "b")

	assert.Equal(t, list, zero.Concat(list))
	assert.Equal(t, list, list.Concat(zero))
	assert.True(t, zero.Concat(zero).IsZero())
}

func TestErrors_ReturnsCopy(t *testing.T) {
	t.Parallel()
	r := Fail[int]("a", "b")

	errs := r.Errors()
	errs[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, r.Errors())
}

func TestErrors_Concat(t *testing.T) {
	t.Parallel()
	left := NewErrors("a")
	right := NewErrors("b", "c")

	joined := left.Concat(right)
	assert.Equal(t, []string{"a", "b", "c"}, joined.Slice())
	assert.Equal(t, 3, joined.Len())
	assert.Equal(t, "a", joined.First())
	assert.Equal(t, "a; b; c", joined.String())
	assert.Equal(t, []string{"a"}, left.Slice())
}

func TestUnsafeUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	r := Fail[int]("bad")

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)

		var unwrapErr *UnwrapOnFailureError
		require.True(t, errors.As(err, &unwrapErr))
		assert.Equal(t, []string{"bad"}, unwrapErr.Messages)
	}()

	_ = r.UnsafeUnwrap()
	t.Fatalf("UnsafeUnwrap must not return on failure")
}

func TestMatch_CallsExactlyOne(t *testing.T) {
	t.Parallel()
	var okCalls, errCalls int

	Success(1).Match(func(int) { okCalls++ }, func([]string) { errCalls++ })
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 0, errCalls)

	var got []string
	Fail[int]("x").Match(func(int) { okCalls++ }, func(errs []string) {
		errCalls++
		got = errs
	})
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
	assert.Equal(t, []string{"x"}, got)

	assert.NotPanics(t, func() { Fail[int]("x").Match(nil, nil) })
}

func TestErr_RoundTripsThroughGetErrors(t *testing.T) {
	t.Parallel()
	err := Fail[int]("a", "b").Err()
	require.Error(t, err)

	parts := GetErrors(err)
	require.Len(t, parts, 2)
	assert.EqualError(t, parts[0], "a")
	assert.EqualError(t, parts[1], "b")
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ok(3)", Success(3).String())
	assert.Equal(t, "Err([a b])", Fail[int]("a", "b").String())
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Success("v"), Success("v"))
	assert.Equal(t, Fail[int]("a", "b"), Fail[int]("a", "b"))
	assert.NotEqual(t, Fail[int]("a"), Fail[int]("b"))
	assert.Equal(t, FailWith[int](NewErrors("a", "b")), Fail[int]("a", "b"))
	assert.Equal(t, fmt.Sprint(Success(1)), fmt.Sprint(Success(1)))
}
