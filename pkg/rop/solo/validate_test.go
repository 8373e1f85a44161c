package solo

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ib-77/safevalidation/pkg/rop"
)

func notEmpty(s string) rop.Result[string] {
	return Validate(s, func(in string) bool { return in != "" }, "empty")
}

func lower(s string) rop.Result[string] {
	return Validate(s, func(in string) bool { return strings.ToLower(in) == in }, "not lower case")
}

func short(s string) rop.Result[string] {
	return Validate(s, func(in string) bool { return len(in) < 4 }, "too long")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	if out := notEmpty("x"); out.UnwrapOr("") != "x" {
		t.Fatalf("expected success x, got %v", out)
	}
	if out := notEmpty(""); !reflect.DeepEqual(out.Errors(), []string{"empty"}) {
		t.Fatalf("expected [empty], got %v", out.Errors())
	}
}

func TestAndValidate(t *testing.T) {
	t.Parallel()
	out := AndValidate(rop.Fail[int]("first"), func(int) bool { return false }, "second")
	if !reflect.DeepEqual(out.Errors(), []string{"first"}) {
		t.Fatalf("expected [first], got %v", out.Errors())
	}
	out = AndValidate(rop.Success(1), func(v int) bool { return v > 1 }, "small")
	if !reflect.DeepEqual(out.Errors(), []string{"small"}) {
		t.Fatalf("expected [small], got %v", out.Errors())
	}
}

func TestValidateAll_ReportsEveryCheck(t *testing.T) {
	t.Parallel()
	out := ValidateAll("ABCDE", notEmpty, lower, short)
	if !reflect.DeepEqual(out.Errors(), []string{"not lower case", "too long"}) {
		t.Fatalf("expected two messages, got %v", out.Errors())
	}
	if ok := ValidateAll("abc", notEmpty, lower, short); ok.UnwrapOr("") != "abc" {
		t.Fatalf("expected success abc, got %v", ok)
	}
}

func TestValidateFirst_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	out := ValidateFirst("ABCDE", notEmpty, lower, short)
	if !reflect.DeepEqual(out.Errors(), []string{"not lower case"}) {
		t.Fatalf("expected [not lower case], got %v", out.Errors())
	}
}
