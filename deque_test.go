package arity_test

import (
	"testing"

	. "github.com/comalice/arity"
)

func TestPushBack(t *testing.T) {
	got := A2[int]{1, 2}.PushBack(10)
	if got != (A3[int]{1, 2, 10}) {
		t.Errorf("expected [1 2 10], got %v", got)
	}
}

func TestPopBack(t *testing.T) {
	rest, item := A3[int]{1, 2, 3}.PopBack()
	if rest != (A2[int]{1, 2}) || item != 3 {
		t.Errorf("expected ([1 2], 3), got (%v, %v)", rest, item)
	}
}

func TestPushFront(t *testing.T) {
	got := A2[int]{1, 2}.PushFront(10)
	if got != (A3[int]{10, 1, 2}) {
		t.Errorf("expected [10 1 2], got %v", got)
	}
}

func TestPopFront(t *testing.T) {
	rest, item := A3[int]{1, 2, 3}.PopFront()
	if rest != (A2[int]{2, 3}) || item != 1 {
		t.Errorf("expected ([2 3], 1), got (%v, %v)", rest, item)
	}
}

// pop_back(push_back(a, x)) == (a, x), and the front variants likewise.
func TestPushPopRoundTrip(t *testing.T) {
	a := A4[string]{"a", "b", "c", "d"}

	back, x := a.PushBack("e").PopBack()
	if back != a || x != "e" {
		t.Errorf("expected (%v, e), got (%v, %v)", a, back, x)
	}

	front, y := a.PushFront("z").PopFront()
	if front != a || y != "z" {
		t.Errorf("expected (%v, z), got (%v, %v)", a, front, y)
	}
}

// Growing from empty and shrinking back to empty are ordinary cases;
// popping an empty array simply does not exist in the API.
func TestPushPopAtEmptyBoundary(t *testing.T) {
	var empty A0[int]

	one := empty.PushBack(5)
	if one != (A1[int]{5}) {
		t.Errorf("expected [5], got %v", one)
	}

	rest, item := one.PopFront()
	if rest != empty || item != 5 {
		t.Errorf("expected ([], 5), got (%v, %v)", rest, item)
	}
}

// Pushing onto arity 31 reaches the ceiling; there is no push at 32.
func TestPushPopAtMaxBoundary(t *testing.T) {
	src := make([]int, 31)
	for i := range src {
		src[i] = i
	}
	a, ok := FromSlice31(src)
	if !ok {
		t.Fatal("expected FromSlice31 to succeed")
	}

	full := a.PushBack(99)
	if full.Len() != 32 {
		t.Fatalf("expected arity 32, got %d", full.Len())
	}

	rest, item := full.PopBack()
	if rest != a || item != 99 {
		t.Errorf("expected the original arity-31 array and 99 back, got item %v", item)
	}
}

// Front and back pops at the same value disagree on which element leaves.
func TestPopEndsDiffer(t *testing.T) {
	a := A3[int]{1, 2, 3}

	_, back := a.PopBack()
	_, front := a.PopFront()
	if back != 3 || front != 1 {
		t.Errorf("expected back 3 and front 1, got back %v front %v", back, front)
	}
}
