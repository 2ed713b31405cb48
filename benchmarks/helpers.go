// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import "github.com/comalice/arity"

// SeqSlice returns [0, 1, ..., n-1] as a slice.
func SeqSlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Seq32 returns the arity-32 array [0, 1, ..., 31].
func Seq32() arity.A32[int] {
	a, ok := arity.FromSlice32(SeqSlice(32))
	if !ok {
		panic("benchmarks: FromSlice32 on a 32-element slice cannot fail")
	}
	return a
}

// Seq8 returns the arity-8 array [0, 1, ..., 7].
func Seq8() arity.A8[int] {
	a, ok := arity.FromSlice8(SeqSlice(8))
	if !ok {
		panic("benchmarks: FromSlice8 on an 8-element slice cannot fail")
	}
	return a
}
