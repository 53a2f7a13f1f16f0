// Package uuidx provides the exemplar set for github.com/google/uuid.
package uuidx

import (
	"iter"

	"github.com/google/uuid"

	"github.com/Kinrany/exemplars"
)

// Exemplars returns the exemplar set of uuid.UUID: the single maximum UUID,
// ffffffff-ffff-ffff-ffff-ffffffffffff.
//
// The maximum is chosen over the nil UUID for the same reason integer
// exemplars start at 1: a fixture built from it never passes for an unset
// default value.
func Exemplars() iter.Seq[uuid.UUID] {
	return exemplars.Single(func() uuid.UUID {
		return uuid.Max
	})
}

// Exemplar returns the primary exemplar of uuid.UUID: the maximum UUID.
func Exemplar() uuid.UUID {
	return exemplars.First(Exemplars())
}
