package bucket

import (
	"testing"
	"time"
)

func TestNewWindow_WidensToFullWeeks(t *testing.T) {
	// 2023-01-05 is a Thursday
	now := time.Date(2023, 1, 5, 15, 4, 5, 0, time.UTC)
	w := NewWindow(now)

	if w.Start.Weekday() != time.Sunday {
		t.Errorf("Expected start on Sunday, got %v", w.Start.Weekday())
	}
	if w.End.Weekday() != time.Saturday {
		t.Errorf("Expected end on Saturday, got %v", w.End.Weekday())
	}
	if w.Start.After(w.End) {
		t.Error("Expected start <= end")
	}

	// the widened range contains the original one-year range
	origEnd := now.Truncate(time.Second)
	origStart := origEnd.AddDate(-1, 0, 0)
	if w.Start.After(origStart) {
		t.Errorf("Widened start %v is after original start %v", w.Start, origStart)
	}
	if w.End.Before(origEnd) {
		t.Errorf("Widened end %v is before original end %v", w.End, origEnd)
	}
}

func TestNewWindow_KnownBounds(t *testing.T) {
	now := time.Date(2023, 1, 5, 12, 0, 0, 0, time.UTC)
	w := NewWindow(now)

	wantStart := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, w.Start)
	}

	wantEnd := time.Date(2023, 1, 7, 23, 59, 59, 0, time.UTC)
	if !w.End.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, w.End)
	}
}

func TestWindowOverlaps(t *testing.T) {
	now := time.Date(2023, 1, 5, 12, 0, 0, 0, time.UTC)
	w := NewWindow(now)

	inWindow := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC).Unix()
	before := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	tests := []struct {
		name       string
		start, end int64
		want       bool
	}{
		{"fully inside", inWindow, inWindow + 3600, true},
		{"start inside only", inWindow, after, true},
		{"end inside only", before, inWindow, true},
		{"fully before", before, before + 3600, false},
		{"fully after", after, after + 3600, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
