package bucket

import (
	"time"

	"github.com/stsysd/senritsu/model"
)

// Bucket is one week's aggregation unit: its identifier, the week-start
// date it represents, and the running event count.
type Bucket struct {
	ID    WeekID
	Start time.Time
	Count int
}

// Aggregator owns a fixed, chronologically ordered set of weekly buckets.
// The set is established once at construction; afterwards counts only ever
// increase, and no bucket is added or removed.
type Aggregator struct {
	window Window
	order  []WeekID
	counts map[WeekID]int
	starts map[WeekID]time.Time
}

// NewAggregator builds the bucket set for the one-year window ending at now:
// one bucket per 7-day step from the widened start to the widened end, in
// generation order. Generation order is the canonical bucket ordering.
func NewAggregator(now time.Time) *Aggregator {
	window := NewWindow(now)

	a := &Aggregator{
		window: window,
		counts: make(map[WeekID]int),
		starts: make(map[WeekID]time.Time),
	}

	step := 7
	if window.Start.After(window.End) {
		// Start past End cannot happen for a well-formed window, but keep
		// the stepping symmetric instead of looping forever.
		step = -7
	}
	for d := window.Start; ; d = d.AddDate(0, 0, step) {
		if step > 0 && d.After(window.End) {
			break
		}
		if step < 0 && d.Before(window.End) {
			break
		}
		id := weekIDFor(d)
		a.order = append(a.order, id)
		a.counts[id] = 0
		a.starts[id] = d
	}

	return a
}

// Window returns the widened window the buckets span.
func (a *Aggregator) Window() Window {
	return a.window
}

// Len returns the number of buckets.
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Ingest folds the newest page into the buckets and reports whether any
// processing happened. Empty pages and pages whose [start,end] range does
// not overlap the window are ignored. Events mapping to a week outside the
// fixed bucket set are dropped.
//
// Ingest assumes each page is processed exactly once; feeding the same page
// twice double-counts its events.
func (a *Aggregator) Ingest(page *model.Page) bool {
	if page == nil || page.IsEmpty() {
		return false
	}
	if !a.window.Overlaps(page.Start, page.End) {
		return false
	}

	for _, uts := range page.Timestamps() {
		id := WeekIDOf(uts)
		if _, ok := a.counts[id]; !ok {
			continue
		}
		a.counts[id]++
	}
	return true
}

// Snapshot returns the buckets in chronological order. The returned slice
// is a copy; mutating it does not affect the aggregator.
func (a *Aggregator) Snapshot() []Bucket {
	buckets := make([]Bucket, 0, len(a.order))
	for _, id := range a.order {
		buckets = append(buckets, Bucket{
			ID:    id,
			Start: a.starts[id],
			Count: a.counts[id],
		})
	}
	return buckets
}

// MaxCount returns the largest count across all buckets, recomputed from
// the full set.
func (a *Aggregator) MaxCount() int {
	max := 0
	for _, id := range a.order {
		if a.counts[id] > max {
			max = a.counts[id]
		}
	}
	return max
}
