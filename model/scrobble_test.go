package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewScrobble(t *testing.T) {
	timestamp := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	s, err := NewScrobble(timestamp, "alice", "Boards of Canada", "Roygbiv")
	if err != nil {
		t.Fatalf("Failed to create scrobble: %v", err)
	}

	if s.ID == uuid.Nil {
		t.Error("Expected generated ID, got nil UUID")
	}
	if s.User != "alice" {
		t.Errorf("Expected user 'alice', got %q", s.User)
	}
	if !s.Timestamp.Equal(timestamp) {
		t.Errorf("Expected timestamp %v, got %v", timestamp, s.Timestamp)
	}
}

func TestNewScrobble_Validation(t *testing.T) {
	timestamp := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		user   string
		artist string
		track  string
	}{
		{"missing user", "", "Artist", "Track"},
		{"missing artist", "alice", "", "Track"},
		{"missing track", "alice", "Artist", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewScrobble(timestamp, tc.user, tc.artist, tc.track); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestNewScrobble_ZeroTimestamp(t *testing.T) {
	if _, err := NewScrobble(time.Time{}, "alice", "Artist", "Track"); err == nil {
		t.Error("Expected error for zero timestamp, got nil")
	}
}

func TestLoadScrobble_RequiresID(t *testing.T) {
	timestamp := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)

	// IDなしでのロードはエラー
	if _, err := LoadScrobble(uuid.Nil, timestamp, "alice", "Artist", "Track"); err == nil {
		t.Error("Expected error for nil UUID, got nil")
	}

	// IDありでのロードは成功
	id := uuid.New()
	s, err := LoadScrobble(id, timestamp, "alice", "Artist", "Track")
	if err != nil {
		t.Fatalf("Failed to load scrobble: %v", err)
	}
	if s.ID != id {
		t.Errorf("Expected ID %v, got %v", id, s.ID)
	}
}
