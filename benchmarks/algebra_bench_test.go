// Package benchmarks measures the per-arity operations against plain
// slice loops; the algebra is expected to stay allocation-free.
package benchmarks

import (
	"testing"

	"github.com/comalice/arity"
)

var sinkInt int
var sink32 arity.A32[int]

func BenchmarkMap32(b *testing.B) {
	a := Seq32()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink32 = arity.Map32(a, func(x int) int { return x * 2 })
	}
}

func BenchmarkMapSliceBaseline(b *testing.B) {
	s := SeqSlice(32)
	out := make([]int, 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, x := range s {
			out[j] = x * 2
		}
		sinkInt = out[31]
	}
}

func BenchmarkGenerate32(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n := 0
		sink32 = arity.Generate32(func() int {
			n++
			return n
		})
	}
}

func BenchmarkIndices32(b *testing.B) {
	var sink arity.A32[uint]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = arity.Indices32()
	}
	_ = sink
}

func BenchmarkZipWith8(b *testing.B) {
	x := Seq8()
	y := Seq8()
	var sink arity.A8[int]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = arity.ZipWith8(x, y, func(p, q int) int { return p + q })
	}
	_ = sink
}

func BenchmarkPushPopRoundTrip(b *testing.B) {
	a := Seq8()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		grown := a.PushBack(i)
		rest, item := grown.PopBack()
		a = rest
		sinkInt = item
	}
}

func BenchmarkTupleRoundTrip(b *testing.B) {
	a := Seq8()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a = arity.FromTuple8(a.IntoTuple())
	}
	sinkInt = a[0]
}

func BenchmarkPtrs32(b *testing.B) {
	a := Seq32()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := a.Ptrs()
		sinkInt = *p[31]
	}
}
