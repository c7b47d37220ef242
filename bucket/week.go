// Package bucket maintains weekly listening-activity buckets over a fixed
// one-year window and folds incrementally arriving event pages into them.
package bucket

import (
	"fmt"
	"time"
)

// WeekID is the stable string identifier of a weekly bucket, derived from
// the week's first day: "ts-{year}-{month}-{day}" (1-based month, no padding).
type WeekID string

// weekStart returns the Sunday 00:00:00 UTC of the week containing t.
// All week arithmetic happens in UTC so identifiers do not depend on the
// server locale.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekIDOf maps a UNIX timestamp to the WeekID of the week it falls into.
// Initialization and ingest both go through this one function, so generated
// identifiers and lookup identifiers always agree.
func WeekIDOf(uts int64) WeekID {
	return weekIDFor(weekStart(time.Unix(uts, 0)))
}

// weekIDFor derives the WeekID from a week-start date.
func weekIDFor(start time.Time) WeekID {
	y, m, d := start.Date()
	return WeekID(fmt.Sprintf("ts-%d-%d-%d", y, int(m), d))
}
