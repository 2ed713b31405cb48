package arity_test

import (
	"testing"

	. "github.com/comalice/arity"
)

// Test the arity-erased facade: a pointer to any built-in array satisfies
// Array, Len reports the arity, and Slice writes through to the array.
func TestArrayFacade(t *testing.T) {
	a := A3[int]{1, 2, 3}
	var v Array[int] = &a

	if v.Len() != 3 {
		t.Errorf("expected Len 3, got %d", v.Len())
	}

	s := v.Slice()
	if len(s) != 3 {
		t.Fatalf("expected slice of length 3, got %d", len(s))
	}
	s[1] = 20
	if a != (A3[int]{1, 20, 3}) {
		t.Errorf("expected write through Slice to land in the array, got %v", a)
	}
}

func TestArrayFacadeEmpty(t *testing.T) {
	var a A0[string]
	var v Array[string] = &a

	if v.Len() != 0 {
		t.Errorf("expected Len 0, got %d", v.Len())
	}
	if len(v.Slice()) != 0 {
		t.Errorf("expected empty slice, got %v", v.Slice())
	}
}

// Test mutation through the pointer projection: writing through each
// projected pointer lands at the same position of the source array.
func TestPtrsMutateThroughProjection(t *testing.T) {
	a := A1[int]{1}
	p := a.Ptrs()
	*p[0] = 2
	if a != (A1[int]{2}) {
		t.Errorf("expected [2], got %v", a)
	}
}

// Test the projected pointers are pairwise disjoint: simultaneous writes
// through different positions do not interfere.
func TestPtrsAreDisjoint(t *testing.T) {
	a := A3[int]{1, 2, 3}
	p := a.Ptrs()
	for i := range p {
		if p[i] != &a[i] {
			t.Fatalf("expected pointer %d to alias a[%d]", i, i)
		}
	}
	*p[0], *p[1], *p[2] = 10, 20, 30
	if a != (A3[int]{10, 20, 30}) {
		t.Errorf("expected [10 20 30], got %v", a)
	}
}

func TestGenericLenAndAt(t *testing.T) {
	a := A4[string]{"w", "x", "y", "z"}

	if got := Len[string](a); got != 4 {
		t.Errorf("expected Len 4, got %d", got)
	}
	if got := At[string](a, 2); got != "y" {
		t.Errorf("expected %q, got %q", "y", got)
	}

	SetAt(&a, 0, "a")
	if a[0] != "a" {
		t.Errorf("expected SetAt to store at position 0, got %q", a[0])
	}
}

func TestGenericToSliceCopies(t *testing.T) {
	a := A2[int]{5, 6}
	s := ToSlice[int](a)
	if len(s) != 2 || s[0] != 5 || s[1] != 6 {
		t.Fatalf("expected [5 6], got %v", s)
	}
	s[0] = 99 // A fresh slice; the array must be unaffected.
	if a != (A2[int]{5, 6}) {
		t.Errorf("expected array untouched, got %v", a)
	}
}

func TestGenericEachOrder(t *testing.T) {
	a := A3[int]{7, 8, 9}
	var idx []int
	var got []int
	Each(a, func(i, v int) {
		idx = append(idx, i)
		got = append(got, v)
	})
	if len(idx) != 3 || idx[0] != 0 || idx[1] != 1 || idx[2] != 2 {
		t.Errorf("expected visit order [0 1 2], got %v", idx)
	}
	if len(got) != 3 || got[0] != 7 || got[1] != 8 || got[2] != 9 {
		t.Errorf("expected values [7 8 9], got %v", got)
	}
}

// Generic helpers also accept the native array types; the Of constraint
// matches on underlying types.
func TestGenericHelpersOnNativeArrays(t *testing.T) {
	a := [3]int{1, 2, 3}
	if got := Len[int](a); got != 3 {
		t.Errorf("expected Len 3, got %d", got)
	}
	if got := At[int](a, 0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}
