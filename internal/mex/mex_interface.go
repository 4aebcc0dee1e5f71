// Package mex maintains the minimum excludant (the smallest non-negative
// integer not present) of a multiset under insertions and removals.
//
// Three trackers trade memory for capability:
//   - UnboundedMex: any number of operations over arbitrarily large values.
//   - BoundedMex: at most n operations, absence range allocated up front.
//   - InsertOnlyMex: insertions only, over the universe [0, n].
//
// None of them are safe for concurrent use.
package mex

import "mexset/internal/common"

// Inserter is a tracker that accepts insertions.
type Inserter[I common.Integer] interface {
	// Add inserts one occurrence of v.
	Add(v I) error
	// Mex returns the smallest non-negative value not currently present.
	Mex() I
}

// Tracker additionally supports removal.
type Tracker[I common.Integer] interface {
	Inserter[I]
	// Remove deletes one occurrence of v. Removing an absent value is a
	// no-op unless strict removal is enabled.
	Remove(v I) error
}

var (
	_ Tracker[uint64]  = (*UnboundedMex[uint64])(nil)
	_ Tracker[uint64]  = (*BoundedMex[uint64])(nil)
	_ Inserter[uint64] = (*InsertOnlyMex[uint64])(nil)
)
