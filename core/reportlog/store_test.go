package reportlog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/applog/core/monitoring"
)

func TestFromReport(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := FromReport(monitoring.Report{
		ID:       "id-1",
		Time:     now,
		Level:    "ERROR",
		Category: "NETWORK",
		Tag:      "[Client.Fetch():10]",
		Message:  "[NETWORK] timeout after 3 retries",
		Cause:    errors.New("deadline exceeded"),
	})
	assert.Equal(t, Entry{
		ID:        "id-1",
		Timestamp: now,
		Level:     "ERROR",
		Category:  "NETWORK",
		Tag:       "[Client.Fetch():10]",
		Message:   "[NETWORK] timeout after 3 retries",
		Cause:     "deadline exceeded",
	}, e)
}

func TestQueryMatch(t *testing.T) {
	now := time.Now()
	e := Entry{Timestamp: now, Level: "ERROR", Category: "UI", Tag: "t"}
	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"empty", Query{}, true},
		{"in range", Query{Start: now.Add(-time.Second), End: now.Add(time.Second)}, true},
		{"before start", Query{Start: now.Add(time.Second)}, false},
		{"after end", Query{End: now.Add(-time.Second)}, false},
		{"level", Query{Level: "ASSERT"}, false},
		{"category", Query{Category: "UI"}, true},
		{"tag", Query{Tag: "other"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Match(e))
		})
	}
}
