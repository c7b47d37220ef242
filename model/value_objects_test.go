package model

import (
	"testing"
	"time"
)

func TestNewUserName(t *testing.T) {
	if _, err := NewUserName(""); err == nil {
		t.Error("Expected error for empty user name")
	}

	name, err := NewUserName("alice")
	if err != nil {
		t.Fatalf("Failed to create user name: %v", err)
	}
	if name.String() != "alice" {
		t.Errorf("Expected 'alice', got %q", name.String())
	}
}

func TestNewDateRange(t *testing.T) {
	// 明示的な範囲指定
	dr, err := NewDateRange("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("Failed to create date range: %v", err)
	}
	if dr.From().Hour() != 0 || dr.From().Minute() != 0 {
		t.Error("Expected from to be normalized to beginning of day")
	}
	if dr.To().Hour() != 23 || dr.To().Minute() != 59 {
		t.Error("Expected to to be normalized to end of day")
	}

	// 不正なフォーマット
	if _, err := NewDateRange("01/01/2025", ""); err == nil {
		t.Error("Expected error for invalid from format")
	}
}

func TestNewDateRange_Default(t *testing.T) {
	// デフォルトはローリング1年
	dr, err := NewDateRange("", "")
	if err != nil {
		t.Fatalf("Failed to create default date range: %v", err)
	}

	days := dr.To().Sub(dr.From()).Hours() / 24
	if days < 364 || days > 367 {
		t.Errorf("Expected roughly one year range, got %.1f days", days)
	}
}

func TestNewTimestamp(t *testing.T) {
	ts, err := NewTimestamp("2025-05-21T10:00:00Z")
	if err != nil {
		t.Fatalf("Failed to create timestamp: %v", err)
	}
	expected := time.Date(2025, 5, 21, 10, 0, 0, 0, time.UTC)
	if !ts.Time().Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, ts.Time())
	}

	// 空文字列は現在時刻
	now, err := NewTimestamp("")
	if err != nil {
		t.Fatalf("Failed to create timestamp from empty string: %v", err)
	}
	if time.Since(now.Time()) > time.Minute {
		t.Error("Expected current time for empty string")
	}

	// 不正なフォーマット
	if _, err := NewTimestamp("2025/05/21"); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestNewScrobbleID(t *testing.T) {
	if _, err := NewScrobbleID(""); err == nil {
		t.Error("Expected error for empty ID")
	}
	if _, err := NewScrobbleID("not-a-uuid"); err == nil {
		t.Error("Expected error for invalid UUID")
	}

	id, err := NewScrobbleID("c0a80101-0000-4000-8000-000000000001")
	if err != nil {
		t.Fatalf("Failed to create scrobble ID: %v", err)
	}
	if id.UUID().String() != "c0a80101-0000-4000-8000-000000000001" {
		t.Errorf("Unexpected UUID: %v", id.UUID())
	}
}

func TestNewPagination(t *testing.T) {
	// デフォルト値
	p, err := NewPagination("", "")
	if err != nil {
		t.Fatalf("Failed to create pagination: %v", err)
	}
	if p.Limit() != 100 || p.Offset() != 0 {
		t.Errorf("Expected defaults 100/0, got %d/%d", p.Limit(), p.Offset())
	}

	// 上限のクランプ
	p, err = NewPagination("5000", "10")
	if err != nil {
		t.Fatalf("Failed to create pagination: %v", err)
	}
	if p.Limit() != 1000 {
		t.Errorf("Expected limit clamped to 1000, got %d", p.Limit())
	}
	if p.Offset() != 10 {
		t.Errorf("Expected offset 10, got %d", p.Offset())
	}

	// 不正な値
	if _, err := NewPagination("0", ""); err == nil {
		t.Error("Expected error for zero limit")
	}
	if _, err := NewPagination("", "-1"); err == nil {
		t.Error("Expected error for negative offset")
	}
}
