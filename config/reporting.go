package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/applog/core/factory"
)

// DefaultQueueSize is the async reporting queue length.
const DefaultQueueSize = 256

// ReportingConfig selects the error reporters used in restricted mode.
type ReportingConfig struct {
	// Async hands reports to a background worker.
	Async bool `json:"async"`
	// QueueSize bounds the async queue; reports beyond it are dropped.
	QueueSize int `json:"queue_size"`
	// DedupWindowSeconds drops identical reports seen within the window.
	DedupWindowSeconds int `json:"dedup_window_seconds"`
	// Reporters are the backends; none means the log reporter.
	Reporters []factory.ModuleConfig `json:"reporters"`
}

// SetDefaults applies sane defaults.
func (c *ReportingConfig) SetDefaults() {
	if c.QueueSize == 0 {
		c.QueueSize = DefaultQueueSize
	}
}

// Validate checks mandatory fields.
func (c ReportingConfig) Validate() error {
	if c.QueueSize < 0 {
		return fmt.Errorf("queue_size must not be negative")
	}
	if c.DedupWindowSeconds < 0 {
		return fmt.Errorf("dedup_window_seconds must not be negative")
	}
	for i, r := range c.Reporters {
		if r.Type == "" {
			return fmt.Errorf("reporter %d has no type", i)
		}
	}
	return nil
}

// DedupWindow returns DedupWindowSeconds as a duration.
func (c ReportingConfig) DedupWindow() time.Duration {
	return time.Duration(c.DedupWindowSeconds) * time.Second
}
