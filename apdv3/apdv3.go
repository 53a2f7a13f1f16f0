// Package apdv3 provides the exemplar set for the arbitrary-precision
// decimal type of github.com/cockroachdb/apd/v3.
//
// It is independent of the apdv2 package; the two major versions are
// distinct types and either, both, or neither may be enabled by importing
// the corresponding package.
package apdv3

import (
	"iter"

	apd "github.com/cockroachdb/apd/v3"

	"github.com/Kinrany/exemplars"
)

// Exemplars returns the exemplar set of *apd.Decimal: the single value one,
// constructed fresh on every consumption.
func Exemplars() iter.Seq[*apd.Decimal] {
	return exemplars.Single(func() *apd.Decimal {
		return apd.New(1, 0)
	})
}

// Exemplar returns the primary exemplar of *apd.Decimal: one.
func Exemplar() *apd.Decimal {
	return exemplars.First(Exemplars())
}
