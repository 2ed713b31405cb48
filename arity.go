// Package arity is a uniform algebra over fixed-arity arrays: the same
// operations (map, zip, generate, tuple conversion, push and pop at either
// end, pointer projection) defined for every arity from 0 through 32, with
// the arity a compile-time property of the type.
//
// Go generics cannot abstract over the length of an array type, so every
// operation family is instantiated once per arity by cmd/aritygen and the
// result is checked in. Arity compatibility is therefore enforced entirely
// at the call site: mismatched lengths do not type-check, and no operation
// carries a runtime length check. The only operation with a runtime
// "did it work" outcome is FromSliceN, which reports false when the source
// slice is too short.
//
// The package is the facade. One name per operation, with the arity as a
// numeric suffix (Map3, Zip8, FromTuple2); arity-erased access goes through
// the sealed Array interface, and the handful of operations Go can express
// generically across arities go through the Of constraint.
package arity

//go:generate go run ./cmd/aritygen -config gen.yaml -out .

// MaxArity is the largest arity the package instantiates. PushBack and
// PushFront stop one short of it so that no result ever exceeds it.
const MaxArity = 32

// Array is the arity-erased facade. A pointer to any of the array types in
// this package satisfies it; nothing else can, because isArray is
// unexported. Operations whose result arity differs from the receiver's
// (push, pop, tuple conversion) cannot be arity-erased and stay on the
// concrete types.
type Array[T any] interface {
	isArray()

	// Len reports the arity.
	Len() int

	// Slice returns the elements as a slice backed by the array's own
	// storage; writes through it are writes to the array.
	Slice() []T
}

// Pair is the positional two-tuple produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Len reports the arity of a without inspecting its elements.
func Len[T any, A Of[T]](a A) int { return len(a) }

// At returns the element at position i. It panics, exactly as native array
// indexing does, when i is out of range.
func At[T any, A Of[T]](a A, i int) T { return a[i] }

// SetAt stores v at position i of the array a points to.
func SetAt[T any, A Of[T]](a *A, i int, v T) { (*a)[i] = v }

// ToSlice copies the elements into a fresh slice of length Len(a).
func ToSlice[T any, A Of[T]](a A) []T {
	out := make([]T, len(a))
	for i := 0; i < len(a); i++ {
		out[i] = a[i]
	}
	return out
}

// Each calls f with each position and element in increasing index order.
func Each[T any, A Of[T]](a A, f func(i int, v T)) {
	for i := 0; i < len(a); i++ {
		f(i, a[i])
	}
}
