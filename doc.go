// Package exemplars provides representative sample values of types for
// test-data generation.
//
// A type opts in by implementing the Provider interface, enumerating a lazy,
// ordered, never-empty sequence of valid values of itself. The first value of
// that sequence is the type's primary exemplar, the one a caller gets when it
// just needs "a concrete, valid instance" for a fixture or a round-trip test.
//
// Built-in exemplar sets are provided for the unit type (Unit), all
// fixed-width integer types (Integers), and strings (Strings). Composite
// sets for pointers (Pointers) and slices (Slices) are derived from an inner
// set without adding values of their own.
//
// Exemplar sets for third-party types live in subpackages, one per optional
// dependency, so that importing the capability is what pulls in the
// dependency:
//   - apdv2: github.com/cockroachdb/apd/v2 decimals
//   - apdv3: github.com/cockroachdb/apd/v3 decimals
//   - decimalx: github.com/govalues/decimal decimals
//   - shopspringx: github.com/shopspring/decimal decimals
//   - uuidx: github.com/google/uuid identifiers
//
// Common usage pattern:
//
//	// A single valid value of a built-in type.
//	n := exemplars.First(exemplars.Integers[uint8]()) // 1
//
//	// All exemplars of an optional uint8: &1, &2, ..., &255, nil.
//	for p := range exemplars.Pointers(exemplars.Integers[uint8]()) {
//		// ...
//	}
//
//	// A custom type implements Provider for itself.
//	type Temperature struct{ Celsius int32 }
//
//	func (Temperature) Exemplars() iter.Seq[Temperature] {
//		return exemplars.Single(func() Temperature {
//			return Temperature{Celsius: 21}
//		})
//	}
//
//	t := exemplars.Primary[Temperature]()
//
// Every set is produced fresh on each consumption; nothing is cached or
// shared between calls, so concurrent use needs no coordination.
package exemplars
