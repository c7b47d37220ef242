package chart

import (
	"time"

	"github.com/stsysd/senritsu/bucket"
	"github.com/stsysd/senritsu/model"
)

// Widget ties a bucket aggregator to a renderer and implements the
// mount/update lifecycle: mounted once with a title, then notified every
// time the parent's page list grows by one appended page. All state is
// private to the instance and discarded with it; instances share nothing.
type Widget struct {
	agg      *bucket.Aggregator
	renderer *Renderer
	seen     int
	svg      string
}

// Mount initializes the widget: the aggregator builds its fixed bucket set
// for the one-year window ending at now, and the renderer draws the empty
// structure (baseline, placeholder curve, zero-height marks).
func Mount(title string, now time.Time, opts *Options) *Widget {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts.Title = title

	agg := bucket.NewAggregator(now)
	renderer := NewRenderer(opts)

	w := &Widget{
		agg:      agg,
		renderer: renderer,
	}
	w.svg = renderer.Redraw(agg.Snapshot())
	return w
}

// Update consumes the parent's grown page list. Only the most recently
// appended page is considered; already-seen pages are never reprocessed
// here (though the parent re-supplying a page as "new" would double-count,
// see bucket.Aggregator.Ingest). A successful ingest triggers a full
// redraw.
func (w *Widget) Update(pages []*model.Page) {
	if len(pages) <= w.seen {
		return
	}
	newest := pages[len(pages)-1]
	w.seen = len(pages)

	if w.agg.Ingest(newest) {
		w.svg = w.renderer.Redraw(w.agg.Snapshot())
	}
}

// SVG returns the currently rendered document.
func (w *Widget) SVG() string {
	return w.svg
}

// Buckets exposes the aggregator's current snapshot, chronological order.
func (w *Widget) Buckets() []bucket.Bucket {
	return w.agg.Snapshot()
}

// Window returns the widget's fixed date window.
func (w *Widget) Window() bucket.Window {
	return w.agg.Window()
}
