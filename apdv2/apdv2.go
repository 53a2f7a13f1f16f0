// Package apdv2 provides the exemplar set for the arbitrary-precision
// decimal type of github.com/cockroachdb/apd/v2.
//
// Importing this package is what enables the capability; callers that do not
// need apd/v2 exemplars never pull in the dependency.
package apdv2

import (
	"iter"

	apd "github.com/cockroachdb/apd/v2"

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
