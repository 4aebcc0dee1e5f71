package absence

import (
	"github.com/google/btree"

	"mexset/internal/common"
)

// degree is the B-tree branching factor.
const degree = 32

// btreeSet is a Set backed by a generic B-tree.
type btreeSet[I common.Integer] struct {
	tree *btree.BTreeG[I]
}

var _ Set[uint64] = (*btreeSet[uint64])(nil)

// NewSet creates a set holding the given values.
func NewSet[I common.Integer](values ...I) Set[I] {
	s := &btreeSet[I]{tree: btree.NewOrderedG[I](degree)}
	for _, v := range values {
		s.tree.ReplaceOrInsert(v)
	}
	return s
}

// NewRangeSet creates a set holding every value in [lo, hi).
func NewRangeSet[I common.Integer](lo, hi I) Set[I] {
	s := &btreeSet[I]{tree: btree.NewOrderedG[I](degree)}
	for v := lo; v < hi; v++ {
		s.tree.ReplaceOrInsert(v)
	}
	return s
}

func (s *btreeSet[I]) Insert(v I) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return !replaced
}

func (s *btreeSet[I]) Delete(v I) bool {
	_, removed := s.tree.Delete(v)
	return removed
}

func (s *btreeSet[I]) Min() (I, bool) {
	return s.tree.Min()
}
