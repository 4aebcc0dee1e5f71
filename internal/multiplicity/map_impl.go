package multiplicity

import "mexset/internal/common"

// mapCounter is the Go map-backed Counter.
type mapCounter[I common.Integer] struct {
	counts map[I]int
}

var _ Counter[int] = (*mapCounter[int])(nil)

// NewCounter returns an empty map-backed counter.
func NewCounter[I common.Integer]() Counter[I] {
	return &mapCounter[I]{
		counts: make(map[I]int),
	}
}

func (c *mapCounter[I]) Increment(v I) int {
	c.counts[v]++
	return c.counts[v]
}

func (c *mapCounter[I]) Decrement(v I) (bool, bool) {
	n, ok := c.counts[v]
	if !ok {
		return false, false
	}
	if n <= 1 {
		delete(c.counts, v)
		return true, true
	}
	c.counts[v] = n - 1
	return true, false
}

func (c *mapCounter[I]) Contains(v I) bool {
	_, ok := c.counts[v]
	return ok
}

func (c *mapCounter[I]) Count(v I) int {
	return c.counts[v]
}

func (c *mapCounter[I]) Len() int {
	return len(c.counts)
}
