// Package analysis turns annotated sentences into the four LiNT-II
// linguistic features, aggregates them over a document, and applies the
// readability formula. All computation is deterministic and pure; a feature
// that cannot be computed is an unavailable value, not an error.
package analysis

// Value is a numeric feature or score that may be unavailable. A feature is
// unavailable when the sentence has no qualifying tokens for it; the
// unavailability propagates through scoring untouched.
type Value struct {
	Number    float64
	Available bool
}

// Available constructs an available value.
func Available(n float64) Value {
	return Value{
		Number:    n,
		Available: true,
	}
}

// Unavailable constructs an unavailable value.
func Unavailable() Value {
	return Value{}
}
