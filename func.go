package arity

// Producer yields successive values for Generate. It may be invoked any
// number of times and may carry internal state across calls; Generate2
// through Generate32 require one.
type Producer[T any] func() T

// ProducerOnce is a producer that is invoked at most one time. Generate0
// and Generate1 accept it, because those arities can never need a second
// call. A closure that must not run twice (it moves a captured value, say)
// is still a valid ProducerOnce.
type ProducerOnce[T any] func() T

// Once adapts a repeat-invocable producer for the at-most-once call sites.
// The other direction is deliberately not provided.
func (p Producer[T]) Once() ProducerOnce[T] { return ProducerOnce[T](p) }

// counter yields 0, 1, 2, ... across calls. Indices is Generate over it.
func counter() Producer[uint] {
	var next uint
	return func() uint {
		n := next
		next++
		return n
	}
}
