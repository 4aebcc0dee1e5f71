package multiplicity

import "mexset/internal/common"

// Counter tracks how many times each value is currently present. A value
// whose count drops to zero is forgotten entirely, so Contains(v) holds
// exactly when Count(v) >= 1.
type Counter[I common.Integer] interface {
	// Increment adds one occurrence of v and returns the new count.
	Increment(v I) int
	// Decrement removes one occurrence of v. It reports whether v was present
	// and whether this call removed its last occurrence. Decrementing an
	// absent value is not an error.
	Decrement(v I) (present bool, emptied bool)
	Contains(v I) bool
	Count(v I) int
	// Len is the number of distinct values present.
	Len() int
}
