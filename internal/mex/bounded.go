package mex

import (
	"github.com/pkg/errors"

	"mexset/internal/absence"
	"mexset/internal/common"
	"mexset/internal/multiplicity"
)

// BoundedMex tracks the mex for a workload of nQueries operations.
// The whole absence range [0, nQueries) is allocated at construction, so no
// per-operation extension is needed.
//
// Values >= nQueries are accepted and counted but never enter the absence
// set. Once nQueries operations have been applied, values inside the range
// are still accepted; only values >= nQueries are rejected, since those are
// the ones that could push the mex past the preallocated range.
type BoundedMex[I common.Integer] struct {
	counts     multiplicity.Counter[I]
	complement absence.Set[I]
	limit      I
	budget     int
	applied    int
	opts       Options
}

// NewBoundedMex returns a tracker that accepts up to nQueries operations.
// nQueries must be non-negative and representable in I.
func NewBoundedMex[I common.Integer](nQueries int, opts ...Option) (*BoundedMex[I], error) {
	limit, ok := common.FromInt[I](nQueries)
	if !ok {
		return nil, errors.Wrapf(common.ErrOutOfRange, "query count %d does not fit in %T", nQueries, limit)
	}
	return &BoundedMex[I]{
		counts:     multiplicity.NewCounter[I](),
		complement: absence.NewRangeSet[I](0, limit),
		limit:      limit,
		budget:     nQueries,
		opts:       buildOptions(opts),
	}, nil
}

func (m *BoundedMex[I]) check(op string, v I) error {
	if common.IsNegative(v) {
		return m.reject(op, v, errors.Wrapf(common.ErrNegativeValue, "%s %v", op, v))
	}
	if m.applied >= m.budget && v >= m.limit {
		return m.reject(op, v, errors.Wrapf(common.ErrBudgetExceeded, "%s %v after %d operations", op, v, m.applied))
	}
	return nil
}

// Add inserts one occurrence of v.
func (m *BoundedMex[I]) Add(v I) error {
	if err := m.check("add", v); err != nil {
		return err
	}
	m.counts.Increment(v)
	m.complement.Delete(v)
	m.applied++
	return nil
}

// Remove deletes one occurrence of v.
func (m *BoundedMex[I]) Remove(v I) error {
	if err := m.check("remove", v); err != nil {
		return err
	}
	present, emptied := m.counts.Decrement(v)
	if !present && m.opts.StrictRemoval {
		return m.reject("remove", v, errors.Wrapf(common.ErrNotPresent, "remove %v", v))
	}
	if emptied && v < m.limit {
		m.complement.Insert(v)
	}
	m.applied++
	return nil
}

// Mex returns the smallest non-negative value not currently present.
func (m *BoundedMex[I]) Mex() I {
	v, ok := m.complement.Min()
	if ok {
		return v
	}
	// Everything below nQueries is present; continue among the counted
	// values at or above it.
	v = m.limit
	for m.counts.Contains(v) {
		v++
	}
	return v
}

// Count returns the multiplicity of v.
func (m *BoundedMex[I]) Count(v I) int {
	return m.counts.Count(v)
}

// Len returns the number of distinct values present.
func (m *BoundedMex[I]) Len() int {
	return m.counts.Len()
}

// Remaining returns how many operations are left before values >= nQueries
// start being rejected.
func (m *BoundedMex[I]) Remaining() int {
	if m.applied >= m.budget {
		return 0
	}
	return m.budget - m.applied
}

func (m *BoundedMex[I]) reject(op string, v I, err error) error {
	m.opts.Logger.Debug("mex: rejected operation", "tracker", "bounded", "op", op, "value", v, "err", err)
	return err
}
