package arity_test

import (
	"testing"

	. "github.com/comalice/arity"
)

// Projecting the first components of a zip reconstructs the first operand,
// and the second components the second.
func TestZipProjections(t *testing.T) {
	a := A3[int]{1, 2, 3}
	b := A3[string]{"one", "two", "three"}
	z := Zip3(a, b)

	firsts := Map3(z, func(p Pair[int, string]) int { return p.First })
	if firsts != a {
		t.Errorf("expected first projections %v, got %v", a, firsts)
	}
	seconds := Map3(z, func(p Pair[int, string]) string { return p.Second })
	if seconds != b {
		t.Errorf("expected second projections %v, got %v", b, seconds)
	}
}

func TestZipPairsPositionally(t *testing.T) {
	z := Zip2(A2[int]{1, 2}, A2[int]{10, 20})
	want := A2[Pair[int, int]]{{1, 10}, {2, 20}}
	if z != want {
		t.Errorf("expected %v, got %v", want, z)
	}
}

func TestZipEmpty(t *testing.T) {
	z := Zip0(A0[int]{}, A0[string]{})
	if z != (A0[Pair[int, string]]{}) {
		t.Errorf("expected empty array of pairs, got %v", z)
	}
}

func TestZipWithAdd(t *testing.T) {
	got := ZipWith3(A3[int]{10, 20, 30}, A3[int]{3, 2, 1}, func(a, b int) int { return a + b })
	if got != (A3[int]{13, 22, 31}) {
		t.Errorf("expected [13 22 31], got %v", got)
	}
}

func TestZipWithMixedTypes(t *testing.T) {
	got := ZipWith2(A2[string]{"a", "b"}, A2[int]{1, 2}, func(s string, n int) bool {
		return len(s) == n
	})
	if got != (A2[bool]{true, false}) {
		t.Errorf("expected [true false], got %v", got)
	}
}

// The combining func is invoked in increasing index order.
func TestZipWithOrder(t *testing.T) {
	var seen []int
	ZipWith3(A3[int]{0, 1, 2}, A3[int]{0, 0, 0}, func(a, _ int) int {
		seen = append(seen, a)
		return a
	})
	if len(seen) != 3 || seen[0] != 0 || seen[1] != 1 || seen[2] != 2 {
		t.Errorf("expected visit order [0 1 2], got %v", seen)
	}
}
