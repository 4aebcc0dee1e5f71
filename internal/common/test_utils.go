package common

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/davecgh/go-spew/spew"
)

// ReferenceMultiset is the brute-force model the trackers are checked against.
type ReferenceMultiset[I Integer] struct {
	counts map[I]int
}

// NewReferenceMultiset returns an empty model.
func NewReferenceMultiset[I Integer]() *ReferenceMultiset[I] {
	return &ReferenceMultiset[I]{counts: make(map[I]int)}
}

// Apply records the event. Deleting an absent value does nothing.
func (r *ReferenceMultiset[I]) Apply(ev Event[I]) {
	switch ev.Type {
	case EventTypeInsert:
		r.counts[ev.Value]++
	case EventTypeDelete:
		if r.counts[ev.Value] > 1 {
			r.counts[ev.Value]--
		} else {
			delete(r.counts, ev.Value)
		}
	}
}

// Mex scans upward from zero.
func (r *ReferenceMultiset[I]) Mex() I {
	var v I
	for r.counts[v] > 0 {
		v++
	}
	return v
}

// RandomEvents builds n events over [0, maxValue]. Roughly deletePercent of
// them are deletions; most deletions target a value that is present.
func RandomEvents[I Integer](f *gofakeit.Faker, n int, maxValue int, deletePercent int) []Event[I] {
	events := make([]Event[I], 0, n)
	var inserted []I
	for i := 0; i < n; i++ {
		if deletePercent > 0 && f.IntRange(1, 100) <= deletePercent {
			if len(inserted) > 0 && f.IntRange(1, 10) > 2 {
				events = append(events, Delete(inserted[f.IntRange(0, len(inserted)-1)]))
			} else {
				events = append(events, Delete(I(f.IntRange(0, maxValue))))
			}
			continue
		}
		v := I(f.IntRange(0, maxValue))
		inserted = append(inserted, v)
		events = append(events, Insert(v))
	}
	return events
}

// RequireMexSequence checks that got[i] equals the reference mex after
// applying events[0..i]. The event prefix is dumped on the first mismatch.
func RequireMexSequence[I Integer](t *testing.T, events []Event[I], got []I) {
	t.Helper()

	if len(got) != len(events) {
		t.Fatalf("got %d mex values for %d events", len(got), len(events))
	}
	ref := NewReferenceMultiset[I]()
	for i, ev := range events {
		ref.Apply(ev)
		if want := ref.Mex(); got[i] != want {
			t.Fatalf("mex mismatch after event %d (%s %v): got %v want %v\nevents: %s",
				i, ev.Type, ev.Value, got[i], want, spew.Sdump(events[:i+1]))
		}
	}
}
