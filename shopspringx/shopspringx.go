// Package shopspringx provides the exemplar set for the decimal type of
// github.com/shopspring/decimal.
package shopspringx

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/Kinrany/exemplars"
)

// Exemplars returns the exemplar set of decimal.Decimal: the single value one.
func Exemplars() iter.Seq[decimal.Decimal] {
	return exemplars.Single(func() decimal.Decimal {
		return decimal.New(1, 0)
	})
}

// Exemplar returns the primary exemplar of decimal.Decimal: one.
func Exemplar() decimal.Decimal {
	return exemplars.First(Exemplars())
}
