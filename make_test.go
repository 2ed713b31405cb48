package arity_test

import (
	"testing"

	"github.com/comalice/arity/testutil"

	. "github.com/comalice/arity"
)

// Test generate invokes its producer exactly N times in increasing index
// order, observed through a counting producer whose value grows per call.
func TestGenerateCallCountAndOrder(t *testing.T) {
	var c testutil.CallCounter
	a := Generate5(c.Producer(0))

	if c.Calls != 5 {
		t.Errorf("expected 5 producer calls, got %d", c.Calls)
	}
	if a != (A5[int]{0, 1, 2, 3, 4}) {
		t.Errorf("expected [0 1 2 3 4], got %v", a)
	}
}

// Arity 0 and 1 accept a single-invocation producer; arity 0 never calls
// it and arity 1 calls it exactly once.
func TestGenerateAtMostOnce(t *testing.T) {
	calls := 0
	f := ProducerOnce[int](func() int {
		calls++
		return 7
	})

	if got := Generate0(f); got != (A0[int]{}) {
		t.Errorf("expected empty array, got %v", got)
	}
	if calls != 0 {
		t.Errorf("expected 0 calls after Generate0, got %d", calls)
	}

	if got := Generate1(f); got != (A1[int]{7}) {
		t.Errorf("expected [7], got %v", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call after Generate1, got %d", calls)
	}
}

// A repeat-invocable producer adapts downward to the at-most-once sites.
func TestProducerOnceAdapter(t *testing.T) {
	var c testutil.CallCounter
	p := c.Producer(41)

	if got := Generate1(p.Once()); got != (A1[int]{41}) {
		t.Errorf("expected [41], got %v", got)
	}
	if c.Calls != 1 {
		t.Errorf("expected 1 call, got %d", c.Calls)
	}
}

func TestRepeat(t *testing.T) {
	if got := Repeat4("x"); got != (A4[string]{"x", "x", "x", "x"}) {
		t.Errorf("expected [x x x x], got %v", got)
	}
	if got := Repeat1(9); got != (A1[int]{9}) {
		t.Errorf("expected [9], got %v", got)
	}
	if got := Repeat0(9); got != (A0[int]{}) {
		t.Errorf("expected empty array, got %v", got)
	}
}

// Pin the RepeatBy contract: positions 0..N-2 receive clones, the last
// position receives the original, so clone runs exactly N-1 times.
func TestRepeatByClonesAllButLast(t *testing.T) {
	var c testutil.CallCounter
	got := RepeatBy3(1, c.Cloner(100))

	if got != (A3[int]{101, 101, 1}) {
		t.Errorf("expected clones then original [101 101 1], got %v", got)
	}
	if c.Calls != 2 {
		t.Errorf("expected clone invoked exactly 2 times, got %d", c.Calls)
	}
}

func TestRepeatByDegenerateArities(t *testing.T) {
	var c testutil.CallCounter

	if got := RepeatBy1(5, c.Cloner(100)); got != (A1[int]{5}) {
		t.Errorf("expected original [5] with no clone, got %v", got)
	}
	if got := RepeatBy0(5, c.Cloner(100)); got != (A0[int]{}) {
		t.Errorf("expected empty array, got %v", got)
	}
	if c.Calls != 0 {
		t.Errorf("expected clone never invoked, got %d calls", c.Calls)
	}
}

func TestIndices(t *testing.T) {
	if got := Indices10(); got != (A10[uint]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("expected [0..9], got %v", got)
	}
	if got := Indices1(); got != (A1[uint]{0}) {
		t.Errorf("expected [0], got %v", got)
	}
	if got := Indices0(); got != (A0[uint]{}) {
		t.Errorf("expected empty array, got %v", got)
	}
}

func TestFromSlice(t *testing.T) {
	if _, ok := FromSlice3([]int{1, 2}); ok {
		t.Error("expected failure on a short slice")
	}

	a, ok := FromSlice3([]int{1, 2, 3})
	if !ok || a != (A3[int]{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v (ok=%v)", a, ok)
	}

	// A longer source succeeds too; extra elements are simply not taken.
	b, ok := FromSlice2([]int{4, 5, 6, 7})
	if !ok || b != (A2[int]{4, 5}) {
		t.Errorf("expected [4 5], got %v (ok=%v)", b, ok)
	}

	if _, ok := FromSlice0[int](nil); !ok {
		t.Error("expected FromSlice0 to succeed on nil")
	}
}
