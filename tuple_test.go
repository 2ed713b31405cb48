package arity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/comalice/arity"
)

// Test the positional bijection at arity 1: from_tuple((3,)) == [3] and
// into_tuple([3]) == (3,).
func TestTupleSingle(t *testing.T) {
	a := FromTuple1(Tuple1[int]{3})
	if a != (A1[int]{3}) {
		t.Errorf("expected [3], got %v", a)
	}
	if got := a.IntoTuple(); got != (Tuple1[int]{3}) {
		t.Errorf("expected (3,), got %+v", got)
	}
}

func TestTupleRoundTrip(t *testing.T) {
	a := A3[string]{"x", "y", "z"}
	if got := FromTuple3(a.IntoTuple()); got != a {
		t.Errorf("expected round trip to reproduce %v, got %v", a, got)
	}

	tup := Tuple3[string]{V0: "x", V1: "y", V2: "z"}
	if got := FromTuple3(tup).IntoTuple(); got != tup {
		t.Errorf("expected round trip to reproduce %+v, got %+v", tup, got)
	}
}

// Positions must map one to one: tuple field Vi holds array position i.
func TestTuplePositions(t *testing.T) {
	a := A4[int]{10, 11, 12, 13}
	got := a.IntoTuple()
	want := Tuple4[int]{V0: 10, V1: 11, V2: 12, V3: 13}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tuple positions mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleEmpty(t *testing.T) {
	a := FromTuple0(Tuple0[int]{})
	if a != (A0[int]{}) {
		t.Errorf("expected empty array, got %v", a)
	}
	if got := a.IntoTuple(); got != (Tuple0[int]{}) {
		t.Errorf("expected unit tuple, got %+v", got)
	}
}

func TestTupleWide(t *testing.T) {
	src := make([]int, 32)
	for i := range src {
		src[i] = i * i
	}
	a, ok := FromSlice32(src)
	if !ok {
		t.Fatal("expected FromSlice32 to succeed")
	}
	if got := FromTuple32(a.IntoTuple()); got != a {
		t.Errorf("expected round trip at arity 32 to reproduce the array")
	}
}
