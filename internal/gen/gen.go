package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// emitters maps each family name to its emitter. The output filename for a
// family is "<family>_gen.go".
var emitters = map[string]func(*bytes.Buffer, Config){
	"types": emitTypes,
	"tuple": emitTuple,
	"make":  emitMake,
	"map":   emitMap,
	"zip":   emitZip,
	"deque": emitDeque,
}

// Files renders every configured family, keyed by output filename.
func Files(c Config) (map[string][]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(c.Families))
	for _, f := range c.Families {
		var buf bytes.Buffer
		header(&buf, c)
		emitters[f](&buf, c)
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("family %s: format: %w", f, err)
		}
		out[f+"_gen.go"] = src
	}
	return out, nil
}

func header(w *bytes.Buffer, c Config) {
	fmt.Fprintf(w, "// Code generated by aritygen; DO NOT EDIT.\n\npackage %s\n", c.Package)
}

// list renders n comma-separated terms produced by f.
func list(n int, f func(i int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f(i)
	}
	return strings.Join(parts, ", ")
}

func emitTypes(w *bytes.Buffer, c Config) {
	max := c.MaxArity
	fmt.Fprintf(w, "\n// Of is the closed constraint covering every supported arity: it is\n")
	fmt.Fprintf(w, "// satisfied by the array types of this package and by any type whose\n")
	fmt.Fprintf(w, "// underlying type is a native Go array [0]T through [%d]T. The\n", max)
	fmt.Fprintf(w, "// enumeration is explicit because Go generics cannot name arrays of\n")
	fmt.Fprintf(w, "// arbitrary length with one shorthand.\n")
	fmt.Fprintf(w, "type Of[T any] interface {\n")
	terms := make([]string, max+1)
	for n := 0; n <= max; n++ {
		terms[n] = fmt.Sprintf("~[%d]T", n)
	}
	fmt.Fprintf(w, "\t%s\n}\n", strings.Join(terms, " | "))
	for n := 0; n <= max; n++ {
		fmt.Fprintf(w, "\n// A%d is the fixed-arity array of %d elements of type T.\n", n, n)
		fmt.Fprintf(w, "type A%d[T any] [%d]T\n", n, n)
		fmt.Fprintf(w, "\nfunc (A%d[T]) isArray() {}\n", n)
		fmt.Fprintf(w, "\n// Len reports the arity, %d.\n", n)
		fmt.Fprintf(w, "func (A%d[T]) Len() int { return %d }\n", n, n)
		fmt.Fprintf(w, "\n// Slice returns the elements as a slice backed by the array's own storage.\n")
		fmt.Fprintf(w, "func (a *A%d[T]) Slice() []T { return a[:] }\n", n)
		fmt.Fprintf(w, "\n// Ptrs projects one pointer per element at the same position; the pointers\n")
		fmt.Fprintf(w, "// are pairwise disjoint and borrow the array's own storage.\n")
		fmt.Fprintf(w, "func (a *A%d[T]) Ptrs() A%d[*T] { return A%d[*T]{%s} }\n",
			n, n, n, list(n, func(i int) string { return fmt.Sprintf("&a[%d]", i) }))
	}
	fmt.Fprintf(w, "\nvar (\n")
	for n := 0; n <= max; n++ {
		fmt.Fprintf(w, "\t_ Array[struct{}] = (*A%d[struct{}])(nil)\n", n)
	}
	fmt.Fprintf(w, ")\n")
}

func emitTuple(w *bytes.Buffer, c Config) {
	for n := 0; n <= c.MaxArity; n++ {
		fmt.Fprintf(w, "\n// Tuple%d is the positional product of %d values of type T; position i of\n", n, n)
		fmt.Fprintf(w, "// the tuple corresponds to position i of A%d.\n", n)
		if n == 0 {
			fmt.Fprintf(w, "type Tuple0[T any] struct{}\n")
		} else {
			fmt.Fprintf(w, "type Tuple%d[T any] struct{ %s T }\n",
				n, list(n, func(i int) string { return fmt.Sprintf("V%d", i) }))
		}
		fmt.Fprintf(w, "\n// FromTuple%d places position i of t at position i of the result.\n", n)
		fmt.Fprintf(w, "func FromTuple%d[T any](t Tuple%d[T]) A%d[T] { return A%d[T]{%s} }\n",
			n, n, n, n, list(n, func(i int) string { return fmt.Sprintf("t.V%d", i) }))
		fmt.Fprintf(w, "\n// IntoTuple moves each element to the tuple position of the same index.\n")
		fmt.Fprintf(w, "func (a A%d[T]) IntoTuple() Tuple%d[T] { return Tuple%d[T]{%s} }\n",
			n, n, n, list(n, func(i int) string { return fmt.Sprintf("a[%d]", i) }))
	}
}

func emitMake(w *bytes.Buffer, c Config) {
	max := c.MaxArity
	for n := 0; n <= max; n++ {
		switch n {
		case 0:
			fmt.Fprintf(w, "\n// Generate0 builds the empty array; f is never invoked.\n")
			fmt.Fprintf(w, "func Generate0[T any](f ProducerOnce[T]) A0[T] { return A0[T]{} }\n")
		case 1:
			fmt.Fprintf(w, "\n// Generate1 invokes f exactly once, placing its result at position 0.\n")
			fmt.Fprintf(w, "func Generate1[T any](f ProducerOnce[T]) A1[T] { return A1[T]{f()} }\n")
		default:
			fmt.Fprintf(w, "\n// Generate%d invokes f exactly %d times in increasing index order, placing\n", n, n)
			fmt.Fprintf(w, "// the i-th result at position i; f must tolerate repeated invocation.\n")
			fmt.Fprintf(w, "func Generate%d[T any](f Producer[T]) A%d[T] { return A%d[T]{%s} }\n",
				n, n, n, list(n, func(int) string { return "f()" }))
		}
	}
	for n := 0; n <= max; n++ {
		if n == 0 {
			fmt.Fprintf(w, "\n// Repeat0 builds the empty array; x is dropped unused.\n")
		} else {
			fmt.Fprintf(w, "\n// Repeat%d fills every position with x.\n", n)
		}
		fmt.Fprintf(w, "func Repeat%d[T any](x T) A%d[T] { return A%d[T]{%s} }\n",
			n, n, n, list(n, func(int) string { return "x" }))
	}
	for n := 0; n <= max; n++ {
		switch n {
		case 0:
			fmt.Fprintf(w, "\n// RepeatBy0 builds the empty array; clone is never invoked and x is\n")
			fmt.Fprintf(w, "// dropped unused.\n")
		case 1:
			fmt.Fprintf(w, "\n// RepeatBy1 places x itself at position 0; clone is never invoked.\n")
		default:
			fmt.Fprintf(w, "\n// RepeatBy%d places clone(x) at positions 0 through %d and x itself at\n", n, n-2)
			fmt.Fprintf(w, "// position %d, so clone is invoked exactly %d times.\n", n-1, n-1)
		}
		last := n - 1
		fmt.Fprintf(w, "func RepeatBy%d[T any](x T, clone func(T) T) A%d[T] { return A%d[T]{%s} }\n",
			n, n, n, list(n, func(i int) string {
				if i == last {
					return "x"
				}
				return "clone(x)"
			}))
	}
	for n := 0; n <= max; n++ {
		if n == 0 {
			fmt.Fprintf(w, "\n// Indices0 returns the empty index array.\n")
		} else {
			fmt.Fprintf(w, "\n// Indices%d returns the indices 0 through %d in increasing order.\n", n, n-1)
		}
		if n < 2 {
			fmt.Fprintf(w, "func Indices%d() A%d[uint] { return Generate%d(counter().Once()) }\n", n, n, n)
		} else {
			fmt.Fprintf(w, "func Indices%d() A%d[uint] { return Generate%d(counter()) }\n", n, n, n)
		}
	}
	for n := 0; n <= max; n++ {
		if n == 0 {
			fmt.Fprintf(w, "\n// FromSlice0 trivially succeeds and reads nothing from s.\n")
			fmt.Fprintf(w, "func FromSlice0[T any](s []T) (A0[T], bool) { return A0[T]{}, true }\n")
			continue
		}
		fmt.Fprintf(w, "\n// FromSlice%d builds an array from the first %d elements of s; it reports\n", n, n)
		fmt.Fprintf(w, "// false without reading any element when s is shorter than %d.\n", n)
		fmt.Fprintf(w, "func FromSlice%d[T any](s []T) (A%d[T], bool) {\n", n, n)
		fmt.Fprintf(w, "\tvar a A%d[T]\n", n)
		fmt.Fprintf(w, "\tif len(s) < %d {\n\t\treturn a, false\n\t}\n", n)
		fmt.Fprintf(w, "\tcopy(a[:], s)\n")
		fmt.Fprintf(w, "\treturn a, true\n}\n")
	}
}

func emitMap(w *bytes.Buffer, c Config) {
	for n := 0; n <= c.MaxArity; n++ {
		switch n {
		case 0:
			fmt.Fprintf(w, "\n// Map0 builds the empty array; f is never invoked.\n")
		case 1:
			fmt.Fprintf(w, "\n// Map1 invokes f exactly once, on the sole element of a.\n")
		default:
			fmt.Fprintf(w, "\n// Map%d applies f to each element of a in increasing index order, the\n", n)
			fmt.Fprintf(w, "// i-th output produced from the i-th input; f must tolerate repeated\n")
			fmt.Fprintf(w, "// invocation.\n")
		}
		fmt.Fprintf(w, "func Map%d[T, U any](a A%d[T], f func(T) U) A%d[U] { return A%d[U]{%s} }\n",
			n, n, n, n, list(n, func(i int) string { return fmt.Sprintf("f(a[%d])", i) }))
	}
}

func emitZip(w *bytes.Buffer, c Config) {
	max := c.MaxArity
	for n := 0; n <= max; n++ {
		if n == 0 {
			fmt.Fprintf(w, "\n// Zip0 pairs two empty arrays into one.\n")
		} else {
			fmt.Fprintf(w, "\n// Zip%d pairs element i of a with element i of b; equal arity is\n", n)
			fmt.Fprintf(w, "// guaranteed by the operand types.\n")
		}
		fmt.Fprintf(w, "func Zip%d[A, B any](a A%d[A], b A%d[B]) A%d[Pair[A, B]] { return A%d[Pair[A, B]]{%s} }\n",
			n, n, n, n, n, list(n, func(i int) string { return fmt.Sprintf("{a[%d], b[%d]}", i, i) }))
	}
	for n := 0; n <= max; n++ {
		switch n {
		case 0:
			fmt.Fprintf(w, "\n// ZipWith0 builds the empty array; f is never invoked.\n")
		case 1:
			fmt.Fprintf(w, "\n// ZipWith1 invokes f exactly once, on the sole elements of a and b.\n")
		default:
			fmt.Fprintf(w, "\n// ZipWith%d combines element i of a with element i of b through f, in\n", n)
			fmt.Fprintf(w, "// increasing index order; f must tolerate repeated invocation.\n")
		}
		fmt.Fprintf(w, "func ZipWith%d[A, B, C any](a A%d[A], b A%d[B], f func(A, B) C) A%d[C] { return A%d[C]{%s} }\n",
			n, n, n, n, n, list(n, func(i int) string { return fmt.Sprintf("f(a[%d], b[%d])", i, i) }))
	}
}

func emitDeque(w *bytes.Buffer, c Config) {
	max := c.MaxArity
	for n := 0; n < max; n++ {
		last := n
		fmt.Fprintf(w, "\n// PushBack appends item after the last element, producing an array of\n")
		fmt.Fprintf(w, "// arity %d.\n", n+1)
		fmt.Fprintf(w, "func (a A%d[T]) PushBack(item T) A%d[T] { return A%d[T]{%s} }\n",
			n, n+1, n+1, list(n+1, func(i int) string {
				if i == last {
					return "item"
				}
				return fmt.Sprintf("a[%d]", i)
			}))
		fmt.Fprintf(w, "\n// PushFront prepends item before the first element, producing an array of\n")
		fmt.Fprintf(w, "// arity %d.\n", n+1)
		fmt.Fprintf(w, "func (a A%d[T]) PushFront(item T) A%d[T] { return A%d[T]{%s} }\n",
			n, n+1, n+1, list(n+1, func(i int) string {
				if i == 0 {
					return "item"
				}
				return fmt.Sprintf("a[%d]", i-1)
			}))
	}
	for n := 1; n <= max; n++ {
		fmt.Fprintf(w, "\n// PopBack removes and returns the last element, leaving the first %d in\n", n-1)
		fmt.Fprintf(w, "// their original order.\n")
		fmt.Fprintf(w, "func (a A%d[T]) PopBack() (A%d[T], T) { return A%d[T]{%s}, a[%d] }\n",
			n, n-1, n-1, list(n-1, func(i int) string { return fmt.Sprintf("a[%d]", i) }), n-1)
		fmt.Fprintf(w, "\n// PopFront removes and returns the first element, leaving the remaining\n")
		fmt.Fprintf(w, "// %d in their original order.\n", n-1)
		fmt.Fprintf(w, "func (a A%d[T]) PopFront() (A%d[T], T) { return A%d[T]{%s}, a[0] }\n",
			n, n-1, n-1, list(n-1, func(i int) string { return fmt.Sprintf("a[%d]", i+1) }))
	}
}
