// Package reportlog persists reports handed to the error reporter so they
// can be inspected after the fact.
package reportlog

import (
	"context"
	"time"

	"github.com/kilianp07/applog/core/monitoring"
)

// Entry is one stored report.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Tag       string    `json:"tag"`
	Message   string    `json:"message"`
	Cause     string    `json:"cause,omitempty"`
}

// FromReport converts a report into its stored form.
func FromReport(r monitoring.Report) Entry {
	return Entry{
		ID:        r.ID,
		Timestamp: r.Time,
		Level:     r.Level,
		Category:  r.Category,
		Tag:       r.Tag,
		Message:   r.Message,
		Cause:     r.CauseText(),
	}
}

// Query filters stored entries. Zero fields match everything; Limit <= 0
// means no limit.
type Query struct {
	Start    time.Time
	End      time.Time
	Level    string
	Category string
	Tag      string
	Limit    int
}

// Match reports whether e passes every filter except Limit.
func (q Query) Match(e Entry) bool {
	if !q.Start.IsZero() && e.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && e.Timestamp.After(q.End) {
		return false
	}
	if q.Level != "" && e.Level != q.Level {
		return false
	}
	if q.Category != "" && e.Category != q.Category {
		return false
	}
	if q.Tag != "" && e.Tag != q.Tag {
		return false
	}
	return true
}

// Store persists entries and supports querying.
type Store interface {
	Append(ctx context.Context, e Entry) error
	Query(ctx context.Context, q Query) ([]Entry, error)
	Close() error
}
