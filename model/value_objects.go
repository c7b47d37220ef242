// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserName represents a listener name value object.
type UserName struct {
	value string
}

// NewUserName creates a new user name value object.
func NewUserName(name string) (*UserName, error) {
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	return &UserName{value: name}, nil
}

// String returns the user name string.
func (u *UserName) String() string {
	return u.value
}

// DateRange represents a date range value object.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange creates a new date range value object.
func NewDateRange(fromStr, toStr string) (*DateRange, error) {
	var fromTime, toTime time.Time
	var err error

	// Process from parameter
	if fromStr != "" {
		fromTime, err = parseDateTime(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		// Set default value
		defaultFrom, _ := getDefaultDateRange()
		fromTime = defaultFrom
	}

	// Process to parameter
	if toStr != "" {
		toTime, err = parseDateTime(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		// Set default value
		_, defaultTo := getDefaultDateRange()
		toTime = defaultTo
	}

	// Normalize from time to beginning of day (00:00:00)
	fromTime = normalizeToBeginOfDay(fromTime)
	// Normalize to time to end of day (23:59:59.999999999)
	toTime = normalizeToEndOfDay(toTime)

	return &DateRange{from: fromTime, to: toTime}, nil
}

// From returns the start date.
func (d *DateRange) From() time.Time {
	return d.from
}

// To returns the end date.
func (d *DateRange) To() time.Time {
	return d.to
}

// getDefaultDateRange calculates the default date range for the rolling one year.
func getDefaultDateRange() (time.Time, time.Time) {
	now := time.Now()
	return now.AddDate(-1, 0, 0), now
}

// normalizeToBeginOfDay normalizes time to beginning of day (00:00:00).
func normalizeToBeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// normalizeToEndOfDay normalizes time to end of day (23:59:59.999999999).
func normalizeToEndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}

// parseDateTime parses date string with flexible format support.
func parseDateTime(dateStr string) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	// Try date-only format (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// ScrobbleID represents a scrobble ID value object.
type ScrobbleID struct {
	value uuid.UUID
}

// NewScrobbleID creates a new scrobble ID value object.
func NewScrobbleID(idStr string) (*ScrobbleID, error) {
	if idStr == "" {
		return nil, fmt.Errorf("scrobble ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format")
	}

	return &ScrobbleID{value: id}, nil
}

// UUID returns the UUID value.
func (s *ScrobbleID) UUID() uuid.UUID {
	return s.value
}

// Timestamp represents a timestamp value object.
type Timestamp struct {
	value time.Time
}

// NewTimestamp creates a new timestamp value object.
func NewTimestamp(timestampStr string) (*Timestamp, error) {
	if timestampStr == "" {
		// Use current time for empty string
		return &Timestamp{value: time.Now()}, nil
	}

	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime format. Use ISO8601 format (YYYY-MM-DDThh:mm:ssZ)")
	}

	return &Timestamp{value: timestamp}, nil
}

// Time returns the time value.
func (t *Timestamp) Time() time.Time {
	return t.value
}

// Pagination represents pagination parameters value object.
type Pagination struct {
	limit  int
	offset int
}

// NewPagination creates a new pagination value object.
func NewPagination(limitStr, offsetStr string) (*Pagination, error) {
	limit := 100 // Default value
	offset := 0  // Default value

	// Process limit parameter
	if limitStr != "" {
		parsedLimit, err := parseInt(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid limit parameter: must be a positive integer")
		}
		if parsedLimit <= 0 {
			return nil, fmt.Errorf("limit must be greater than 0")
		}
		if parsedLimit > 1000 { // Set upper limit
			parsedLimit = 1000
		}
		limit = parsedLimit
	}

	// Process offset parameter
	if offsetStr != "" {
		parsedOffset, err := parseInt(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
		}
		if parsedOffset < 0 {
			return nil, fmt.Errorf("offset must be non-negative")
		}
		offset = parsedOffset
	}

	return &Pagination{limit: limit, offset: offset}, nil
}

// Limit returns the limit value.
func (p *Pagination) Limit() int {
	return p.limit
}

// Offset returns the offset value.
func (p *Pagination) Offset() int {
	return p.offset
}

// parseInt converts a string to an integer and handles errors.
func parseInt(s string) (int, error) {
	var value int
	var err error
	if _, err = fmt.Sscanf(s, "%d", &value); err != nil {
		return 0, err
	}
	return value, nil
}
