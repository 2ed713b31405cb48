// Package testutil provides call-recording helpers shared by the arity
// tests and benchmarks.
package testutil

import "github.com/comalice/arity"

// CallCounter counts invocations of the funcs it hands out, so tests can
// assert exact call counts and observe call ordering.
type CallCounter struct {
	Calls int
}

// Producer returns a producer yielding start, start+1, ... that counts
// each call. Because the value grows with every call, tests can verify
// both how often and in which index order Generate invoked it.
func (c *CallCounter) Producer(start int) arity.Producer[int] {
	next := start
	return func() int {
		c.Calls++
		v := next
		next++
		return v
	}
}

// Cloner returns a clone func for RepeatBy that counts each call and adds
// mark to every clone, so clones are distinguishable from the original.
func (c *CallCounter) Cloner(mark int) func(int) int {
	return func(v int) int {
		c.Calls++
		return v + mark
	}
}
