package mex

import (
	"github.com/pkg/errors"

	"mexset/internal/bitmap"
	"mexset/internal/common"
)

// InsertOnlyMex tracks the mex of a set that only grows, over the universe
// [0, n]. The cursor only moves forward, so the total scanning cost over a
// whole run is O(n).
type InsertOnlyMex[I common.Integer] struct {
	present bitmap.Bitmap // n+1 slots
	bound   I
	mex     I
	opts    Options
}

// NewInsertOnlyMex returns a tracker for values in [0, n]. n+1 must be
// representable in I, since the mex reaches it once the universe is full.
func NewInsertOnlyMex[I common.Integer](n int, opts ...Option) (*InsertOnlyMex[I], error) {
	bound, ok := common.FromInt[I](n)
	if ok {
		_, ok = common.FromInt[I](n + 1)
	}
	if !ok {
		return nil, errors.Wrapf(common.ErrOutOfRange, "universe [0, %d] does not fit in %T", n, bound)
	}
	return &InsertOnlyMex[I]{
		present: bitmap.NewBitmap(uint64(n) + 1),
		bound:   bound,
		opts:    buildOptions(opts),
	}, nil
}

// Add marks v present. Values outside [0, n] are rejected with
// ErrOutOfRange or ErrNegativeValue and leave the tracker unchanged.
func (m *InsertOnlyMex[I]) Add(v I) error {
	if common.IsNegative(v) {
		return m.reject(v, errors.Wrapf(common.ErrNegativeValue, "add %v", v))
	}
	if v > m.bound {
		return m.reject(v, errors.Wrapf(common.ErrOutOfRange, "add %v to universe [0, %v]", v, m.bound))
	}
	m.present.Add(uint64(v))
	if v == m.mex {
		m.mex = I(m.present.NextClear(uint64(m.mex)))
	}
	return nil
}

// Mex returns the smallest value not yet inserted.
func (m *InsertOnlyMex[I]) Mex() I {
	return m.mex
}

// Contains reports whether v has been inserted.
func (m *InsertOnlyMex[I]) Contains(v I) bool {
	if common.IsNegative(v) || v > m.bound {
		return false
	}
	return m.present.Contains(uint64(v))
}

// Universe returns n, the largest insertable value.
func (m *InsertOnlyMex[I]) Universe() I {
	return m.bound
}

func (m *InsertOnlyMex[I]) reject(v I, err error) error {
	m.opts.Logger.Debug("mex: rejected operation", "tracker", "insert-only", "op", "add", "value", v, "err", err)
	return err
}
