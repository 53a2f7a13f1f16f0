// Package decimalx provides the exemplar set for the fixed-point decimal
// type of github.com/govalues/decimal.
package decimalx

import (
	"iter"

	"github.com/govalues/decimal"

	"github.com/Kinrany/exemplars"
)

// Exemplars returns the exemplar set of decimal.Decimal: the single value one.
func Exemplars() iter.Seq[decimal.Decimal] {
	return exemplars.Single(func() decimal.Decimal {
		return decimal.MustNew(1, 0)
	})
}

// Exemplar returns the primary exemplar of decimal.Decimal: one.
func Exemplar() decimal.Decimal {
	return exemplars.First(Exemplars())
}
