package bucket

import "time"

// Window is the fixed one-year, week-aligned date range the chart displays.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow computes the window for the given reference time: End is the
// reference truncated to seconds, Start is exactly one calendar year earlier.
// Both are then widened to full weeks, Start down to the preceding Sunday
// and End up to the end of its week (Saturday 23:59:59), so the widened
// range always contains the original one.
func NewWindow(now time.Time) Window {
	end := now.Truncate(time.Second).UTC()
	start := end.AddDate(-1, 0, 0)

	widenedStart := weekStart(start)
	widenedEnd := weekStart(end).AddDate(0, 0, 7).Add(-time.Second)

	return Window{Start: widenedStart, End: widenedEnd}
}

// Overlaps reports whether the page range [start,end] (UNIX seconds)
// overlaps the window: either endpoint falls inside it.
func (w Window) Overlaps(start, end int64) bool {
	return w.contains(start) || w.contains(end)
}

func (w Window) contains(uts int64) bool {
	return uts >= w.Start.Unix() && uts <= w.End.Unix()
}
