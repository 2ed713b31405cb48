package arity_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/comalice/arity"
)

func TestMapAddsTen(t *testing.T) {
	got := Map3(A3[int]{1, 10, 100}, func(x int) int { return x + 10 })
	if got != (A3[int]{11, 20, 110}) {
		t.Errorf("expected [11 20 110], got %v", got)
	}
}

func TestMapIdentity(t *testing.T) {
	a := A4[string]{"a", "b", "c", "d"}
	if got := Map4(a, func(s string) string { return s }); got != a {
		t.Errorf("expected identity map to reproduce %v, got %v", a, got)
	}
}

// map(map(a, f), g) == map(a, compose(g, f))
func TestMapComposition(t *testing.T) {
	a := A3[int]{1, 2, 3}
	f := func(x int) int { return x * 10 }
	g := func(x int) int { return x + 1 }

	lhs := Map3(Map3(a, f), g)
	rhs := Map3(a, func(x int) int { return g(f(x)) })
	if lhs != rhs {
		t.Errorf("expected %v, got %v", rhs, lhs)
	}
}

func TestMapChangesElementType(t *testing.T) {
	got := Map2(A2[int]{7, 8}, strconv.Itoa)
	if got != (A2[string]{"7", "8"}) {
		t.Errorf("expected [7 8] as strings, got %v", got)
	}
}

// The i-th output comes from the i-th input, in increasing index order.
func TestMapOrder(t *testing.T) {
	var seen []int
	Map4(A4[int]{4, 5, 6, 7}, func(x int) int {
		seen = append(seen, x)
		return x
	})
	if diff := cmp.Diff([]int{4, 5, 6, 7}, seen); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestMapZeroNeverInvokes(t *testing.T) {
	called := false
	got := Map0(A0[int]{}, func(int) int {
		called = true
		return 0
	})
	if got != (A0[int]{}) {
		t.Errorf("expected empty array, got %v", got)
	}
	if called {
		t.Error("expected f never invoked at arity 0")
	}
}

// A panic in the mapping func propagates to the caller untouched.
func TestMapPropagatesPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected panic %q, got %v", "boom", r)
		}
	}()
	Map2(A2[int]{1, 2}, func(int) int { panic("boom") })
}
