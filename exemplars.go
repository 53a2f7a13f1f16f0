package exemplars

import (
	"iter"
)

// PanicMessageEmptySet is the message used to abort when an implementation
// breaks the contract by producing an empty exemplar set.
const PanicMessageEmptySet = "exemplars: invalid Provider: exemplar set must yield at least one value"

// Provider is implemented by types that can enumerate exemplars of themselves.
//
// The returned sequence must yield at least one value when consumed; the
// first value is the type's primary exemplar. The sequence may be unbounded.
// Implementations must produce values fresh on every consumption and must not
// share state across calls.
type Provider[T any] interface {
	Exemplars() iter.Seq[T]
}

// Of returns the exemplar set of T.
//
// It obtains the set from the zero value of T, so Exemplars implementations
// must not depend on receiver state.
func Of[T Provider[T]]() iter.Seq[T] {
	var t T
	return t.Exemplars()
}

// Primary returns the primary exemplar of T: the first value of Of[T]().
//
// It panics if T's exemplar set is empty, which always indicates a broken
// Provider implementation, never a caller mistake.
func Primary[T Provider[T]]() T {
	return First(Of[T]())
}

// First returns the first value of the given exemplar set.
//
// This is the single derived operation of the contract; implementations only
// supply the set, and every consumer obtains the primary exemplar through
// this one function. It panics if the set is empty, since an empty set is a
// contract violation by the implementation and no universal substitute value
// exists.
func First[T any](set iter.Seq[T]) T {
	for v := range set {
		return v
	}

	panic(PanicMessageEmptySet)
}

// Single returns an exemplar set containing exactly one value.
//
// The value is built fresh on every consumption of the set, so exemplars
// holding allocated state are never shared between callers.
func Single[T any](build func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(build())
	}
}

// Unit returns the exemplar set of the unit type: the single empty struct.
func Unit() iter.Seq[struct{}] {
	return Single(func() struct{} {
		return struct{}{}
	})
}
