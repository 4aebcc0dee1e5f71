package mex

import (
	"fmt"

	"github.com/pkg/errors"

	"mexset/internal/absence"
	"mexset/internal/common"
	"mexset/internal/multiplicity"
)

// UnboundedMex tracks the mex when the number of operations is not known in
// advance.
//
// The absence set holds every absent value in [0, processed]. Each operation
// extends that range by one, so the set never runs dry and stays
// O(operations) in size.
type UnboundedMex[I common.Integer] struct {
	counts     multiplicity.Counter[I]
	complement absence.Set[I]
	processed  uint64
	opts       Options
}

// NewUnboundedMex returns a tracker for the empty multiset (mex 0).
func NewUnboundedMex[I common.Integer](opts ...Option) *UnboundedMex[I] {
	return &UnboundedMex[I]{
		counts:     multiplicity.NewCounter[I](),
		complement: absence.NewSet[I](0),
		opts:       buildOptions(opts),
	}
}

// Add inserts one occurrence of v.
func (m *UnboundedMex[I]) Add(v I) error {
	if common.IsNegative(v) {
		return m.reject("add", v, errors.Wrapf(common.ErrNegativeValue, "add %v", v))
	}
	m.counts.Increment(v)
	m.complement.Delete(v)
	m.extend()
	return nil
}

// Remove deletes one occurrence of v.
func (m *UnboundedMex[I]) Remove(v I) error {
	if common.IsNegative(v) {
		return m.reject("remove", v, errors.Wrapf(common.ErrNegativeValue, "remove %v", v))
	}
	present, emptied := m.counts.Decrement(v)
	if !present && m.opts.StrictRemoval {
		return m.reject("remove", v, errors.Wrapf(common.ErrNotPresent, "remove %v", v))
	}
	if emptied {
		m.complement.Insert(v)
	}
	m.extend()
	return nil
}

// extend admits the value equal to the new operation count into the tracked
// range.
func (m *UnboundedMex[I]) extend() {
	m.processed++
	next, ok := common.FromCount[I](m.processed)
	if !ok {
		// I is saturated; nothing larger can be represented.
		return
	}
	if !m.counts.Contains(next) {
		m.complement.Insert(next)
	}
}

// Mex returns the smallest non-negative value not currently present.
func (m *UnboundedMex[I]) Mex() I {
	v, ok := m.complement.Min()
	if !ok {
		// Only reachable once every non-negative value of I is present.
		panic(fmt.Sprintf("mex: no representable mex after %d operations", m.processed))
	}
	return v
}

// Count returns the multiplicity of v.
func (m *UnboundedMex[I]) Count(v I) int {
	return m.counts.Count(v)
}

// Len returns the number of distinct values present.
func (m *UnboundedMex[I]) Len() int {
	return m.counts.Len()
}

// Processed returns the number of operations applied so far.
func (m *UnboundedMex[I]) Processed() uint64 {
	return m.processed
}

func (m *UnboundedMex[I]) reject(op string, v I, err error) error {
	m.opts.Logger.Debug("mex: rejected operation", "tracker", "unbounded", "op", op, "value", v, "err", err)
	return err
}
