package model

import (
	"testing"
	"time"
)

func TestPageTimestamps(t *testing.T) {
	t1 := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 5, 22, 15, 30, 0, 0, time.UTC)

	page := Page{
		Start: t1.Unix(),
		End:   t2.Unix(),
		List: []PageEntry{
			NewPageEntry(t1),
			NewPageEntry(t2),
		},
	}

	ts := page.Timestamps()
	if len(ts) != 2 {
		t.Fatalf("Expected 2 timestamps, got %d", len(ts))
	}
	if ts[0] != t1.Unix() {
		t.Errorf("Expected %d, got %d", t1.Unix(), ts[0])
	}
	if ts[1] != t2.Unix() {
		t.Errorf("Expected %d, got %d", t2.Unix(), ts[1])
	}
}

func TestPageTimestamps_MalformedUTS(t *testing.T) {
	// パースできないUTSは黙って読み飛ばす
	page := Page{
		List: []PageEntry{
			{Date: PageDate{UTS: "not-a-number"}},
			{Date: PageDate{UTS: "1747821600"}},
			{Date: PageDate{UTS: ""}},
		},
	}

	ts := page.Timestamps()
	if len(ts) != 1 {
		t.Fatalf("Expected 1 timestamp, got %d", len(ts))
	}
	if ts[0] != 1747821600 {
		t.Errorf("Expected 1747821600, got %d", ts[0])
	}
}

func TestPageIsEmpty(t *testing.T) {
	empty := Page{Start: 100, End: 200}
	if !empty.IsEmpty() {
		t.Error("Expected empty page")
	}

	nonEmpty := Page{List: []PageEntry{{Date: PageDate{UTS: "100"}}}}
	if nonEmpty.IsEmpty() {
		t.Error("Expected non-empty page")
	}
}
