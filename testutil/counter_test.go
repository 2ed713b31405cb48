package testutil

import "testing"

func TestProducerCountsAndIncrements(t *testing.T) {
	var c CallCounter
	p := c.Producer(10)

	if got := p(); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := p(); got != 11 {
		t.Errorf("expected 11, got %d", got)
	}
	if c.Calls != 2 {
		t.Errorf("expected 2 calls, got %d", c.Calls)
	}
}

func TestClonerMarksClones(t *testing.T) {
	var c CallCounter
	clone := c.Cloner(100)

	if got := clone(7); got != 107 {
		t.Errorf("expected 107, got %d", got)
	}
	if c.Calls != 1 {
		t.Errorf("expected 1 call, got %d", c.Calls)
	}
}
