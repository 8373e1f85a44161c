package solo

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/ib-77/safevalidation/pkg/rop"
)

func TestSucceedAndFail(t *testing.T) {
	t.Parallel()
	if out := Succeed("v"); !reflect.DeepEqual(out, rop.Success("v")) {
		t.Fatalf("expected Ok(v), got %v", out)
	}
	out := Fail[int]("a", "b")
	if !reflect.DeepEqual(out, rop.Fail[int]("a", "b")) || !reflect.DeepEqual(out.Errors(), []string{"a", "b"}) {
		t.Fatalf("expected Err([a b]), got %v", out)
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := Map(rop.Success(5), func(v int) string { return strconv.Itoa(v * 2) })
	if !out.IsSuccess() || out.UnsafeUnwrap() != "10" {
		t.Fatalf("expected success '10', got %v", out)
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	called := false
	out := Map(rop.Fail[int]("a", "b"), func(v int) string {
		called = true
		return "ignored"
	})
	if called {
		t.Fatalf("projection must not be called on failure")
	}
	if !reflect.DeepEqual(out.Errors(), []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", out.Errors())
	}
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()
	id := func(v int) int { return v }
	f := func(v int) int { return v + 1 }
	g := func(v int) string { return "n" + strconv.Itoa(v) }
	compose := func(v int) string { return g(f(v)) }

	if out := Map(rop.Success(4), id); !reflect.DeepEqual(out, rop.Success(4)) {
		t.Fatalf("identity law broken: %v", out)
	}

	for _, r := range []rop.Result[int]{rop.Success(4), rop.Fail[int]("x")} {
		left := Map(Map(r, f), g)
		right := Map(r, compose)
		if !reflect.DeepEqual(left, right) {
			t.Fatalf("composition law broken: %v != %v", left, right)
		}
	}
}

func TestMap_PanicPropagates(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from projection to propagate")
		}
	}()
	Map(rop.Success(1), func(v int) int { panic("boom") })
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	called := false
	out := Bind(rop.Fail[int]("a"), func(v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	if called {
		t.Fatalf("selector must not be called on failure")
	}
	if !reflect.DeepEqual(out.Errors(), []string{"a"}) {
		t.Fatalf("expected [a], got %v", out.Errors())
	}
}

func TestBind_ReturnsSelectorResultUnmodified(t *testing.T) {
	t.Parallel()
	want := rop.Fail[string]("from selector", "second")
	out := Bind(rop.Success(3), func(v int) rop.Result[string] { return want })
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}

	ok := Bind(rop.Success(3), func(v int) rop.Result[int] { return rop.Success(v * 3) })
	if ok.UnwrapOr(0) != 9 {
		t.Fatalf("expected 9, got %v", ok)
	}
}

func TestBindWith(t *testing.T) {
	t.Parallel()
	half := func(v int) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int]("odd")
		}
		return rop.Success(v / 2)
	}
	sum := func(a, b int) int { return a + b }

	if out := BindWith(rop.Success(8), half, sum); out.UnwrapOr(-1) != 12 {
		t.Fatalf("expected 12, got %v", out)
	}

	out := BindWith(rop.Success(7), half, sum)
	if !reflect.DeepEqual(out.Errors(), []string{"odd"}) {
		t.Fatalf("expected only intermediate messages, got %v", out.Errors())
	}

	called := false
	out = BindWith(rop.Fail[int]("src"), func(v int) rop.Result[int] {
		called = true
		return half(v)
	}, sum)
	if called || !reflect.DeepEqual(out.Errors(), []string{"src"}) {
		t.Fatalf("expected short circuit with [src], called=%v got %v", called, out.Errors())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	seen := 0
	Tee(rop.Success(2), func(v int) { seen = v })
	Tee(rop.Fail[int]("x"), func(v int) { seen = -1 })
	if seen != 2 {
		t.Fatalf("expected side effect only on success, got %d", seen)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onOk := func(v int) string { return "ok:" + strconv.Itoa(v) }
	onErr := func(errs []string) string { return "err:" + strconv.Itoa(len(errs)) }

	if s := Finally(rop.Success(1), onOk, onErr); s != "ok:1" {
		t.Fatalf("expected ok:1, got %q", s)
	}
	if s := Finally(rop.Fail[int]("a", "b"), onOk, onErr); s != "err:2" {
		t.Fatalf("expected err:2, got %q", s)
	}
}
