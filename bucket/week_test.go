package bucket

import (
	"testing"
	"time"
)

func TestWeekIDOf_Format(t *testing.T) {
	// 2022-01-02 is a Sunday, so it is its own week start
	ts := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	if id := WeekIDOf(ts); id != "ts-2022-1-2" {
		t.Errorf("Expected ts-2022-1-2, got %s", id)
	}

	// single-digit month and day are not zero padded
	ts = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC).Unix()
	if id := WeekIDOf(ts); id != "ts-2025-3-9" {
		t.Errorf("Expected ts-2025-3-9, got %s", id)
	}
}

func TestWeekIDOf_SameWeekSameID(t *testing.T) {
	// every day of the week 2025-05-18 (Sun) .. 2025-05-24 (Sat) maps to
	// the same identifier
	sunday := time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)
	want := WeekIDOf(sunday.Unix())

	for d := 0; d < 7; d++ {
		ts := sunday.AddDate(0, 0, d).Add(13 * time.Hour).Unix()
		if id := WeekIDOf(ts); id != want {
			t.Errorf("Day %d: expected %s, got %s", d, want, id)
		}
	}

	// the next Sunday starts a new week
	next := sunday.AddDate(0, 0, 7).Unix()
	if id := WeekIDOf(next); id == want {
		t.Error("Expected next Sunday to map to a different week")
	}
}

func TestWeekIDOf_CrossesYearBoundary(t *testing.T) {
	// 2023-01-01 is a Sunday; the preceding Saturday belongs to the week
	// of 2022-12-25
	newYear := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	if id := WeekIDOf(newYear); id != "ts-2023-1-1" {
		t.Errorf("Expected ts-2023-1-1, got %s", id)
	}

	eve := time.Date(2022, 12, 31, 23, 0, 0, 0, time.UTC).Unix()
	if id := WeekIDOf(eve); id != "ts-2022-12-25" {
		t.Errorf("Expected ts-2022-12-25, got %s", id)
	}
}
