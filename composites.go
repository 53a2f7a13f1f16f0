package exemplars

import (
	"iter"
)

// Pointers derives the exemplar set of *T from the exemplar set of T:
// every exemplar of T wrapped as a pointer to a fresh copy, followed by
// exactly one nil.
//
// The ordering is deliberate. The primary exemplar of *T points at the
// primary exemplar of T rather than being nil, because the present case is
// the informative one. Non-emptiness is preserved by construction: even an
// (invalid) empty inner set still yields the trailing nil.
func Pointers[T any](set iter.Seq[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for v := range set {
			if !yield(&v) {
				return
			}
		}

		yield(nil)
	}
}

// Slices derives the exemplar set of []T from the exemplar set of T: each
// exemplar of T wrapped in a fresh one-element slice.
//
// The primary exemplar of []T is therefore a one-element slice holding T's
// primary exemplar. No values are added or reordered, so non-emptiness and
// ordering carry over from the inner set.
func Slices[T any](set iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for v := range set {
			if !yield([]T{v}) {
				return
			}
		}
	}
}
