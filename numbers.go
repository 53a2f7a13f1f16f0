package exemplars

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Integers returns the exemplar set of a fixed-width integer type: the
// inclusive range from 1 up to the type's maximum value, produced lazily.
//
// The range starts at 1 rather than 0 (or the type's minimum) so that the
// primary exemplar is a typical nonzero, non-default value; bugs hidden by
// zero values surface when fixtures are built from it.
func Integers[T constraints.Integer]() iter.Seq[T] {
	return func(yield func(T) bool) {
		limit := maxValue[T]()

		for v := T(1); ; v++ {
			if !yield(v) {
				return
			}

			if v == limit {
				return
			}
		}
	}
}

// maxValue computes the maximum representable value of T.
func maxValue[T constraints.Integer]() T {
	var zero T

	// All bits set: the maximum for unsigned types, -1 for signed ones.
	if ^zero > zero {
		return ^zero
	}

	// Signed: the highest positive power of two, with all lower bits set.
	var hi T
	for bit := T(1); bit > 0; bit <<= 1 {
		hi = bit
	}

	return hi | (hi - 1)
}
