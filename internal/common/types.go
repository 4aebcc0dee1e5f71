package common

import "golang.org/x/exp/constraints"

// Integer is the value type every mex variant is generic over. Values are
// used as map keys, ordered in the absence set, and built from operation
// counts. uintptr is left out since it has no ordering in the B-tree.
type Integer interface {
	constraints.Signed | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EventType enumerates the operations a caller can feed into a tracker.
type EventType uint8

const (
	EventTypeInsert EventType = iota
	EventTypeDelete
)

func (t EventType) String() string {
	switch t {
	case EventTypeInsert:
		return "insert"
	case EventTypeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is a single insertion or removal of Value.
type Event[I Integer] struct {
	Type  EventType
	Value I
}

// Insert is shorthand for an insertion event.
func Insert[I Integer](v I) Event[I] {
	return Event[I]{Type: EventTypeInsert, Value: v}
}

// Delete is shorthand for a removal event.
func Delete[I Integer](v I) Event[I] {
	return Event[I]{Type: EventTypeDelete, Value: v}
}

// EventIterator produces a stream of events. Next returns nil when the stream
// is exhausted.
type EventIterator[I Integer] interface {
	Next() (*Event[I], error)
}

// NewSliceIterator iterates over events in order.
func NewSliceIterator[I Integer](events []Event[I]) EventIterator[I] {
	return &sliceIterator[I]{events: events}
}

type sliceIterator[I Integer] struct {
	events []Event[I]
	index  int
}

func (it *sliceIterator[I]) Next() (*Event[I], error) {
	if it.index >= len(it.events) {
		return nil, nil
	}
	ev := it.events[it.index]
	it.index++
	return &ev, nil
}

// FromInt converts n to I. It reports false if n is negative or does not fit
// in I without wrapping.
func FromInt[I Integer](n int) (I, bool) {
	v := I(n)
	if n < 0 || IsNegative(v) || uint64(v) != uint64(n) {
		return v, false
	}
	return v, true
}

// FromCount converts an operation count to I, reporting false on wrap.
func FromCount[I Integer](n uint64) (I, bool) {
	v := I(n)
	if IsNegative(v) || uint64(v) != n {
		return v, false
	}
	return v, true
}

// IsNegative reports whether v is below zero. Always false for unsigned kinds.
func IsNegative[I Integer](v I) bool {
	return v < 0
}
