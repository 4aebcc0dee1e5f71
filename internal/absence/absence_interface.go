package absence

import "mexset/internal/common"

// Set is an ordered set of values known to be absent from a multiset.
// Insert, Delete and Min all run in logarithmic time.
type Set[I common.Integer] interface {
	// Insert adds v. It returns false if v was already in the set.
	Insert(v I) bool

	// Delete removes v. It returns false if v was not in the set.
	Delete(v I) bool

	// Min returns the smallest value, or false if the set is empty.
	Min() (I, bool)
}
