package exemplars

import (
	"iter"
)

// Strings returns the exemplar set of string: the single literal "example".
func Strings() iter.Seq[string] {
	return Single(func() string {
		return "example"
	})
}
