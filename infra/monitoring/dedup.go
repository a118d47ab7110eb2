package monitoring

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	coremon "github.com/kilianp07/applog/core/monitoring"
)

// DedupReporter forwards a report only if no report with the same level, tag
// and message went through within the window.
type DedupReporter struct {
	next       coremon.Reporter
	seen       *gocache.Cache
	window     time.Duration
	suppressed atomic.Int64
}

// NewDedupReporter wraps next. A window <= 0 returns next unchanged.
func NewDedupReporter(next coremon.Reporter, window time.Duration) coremon.Reporter {
	if window <= 0 {
		return next
	}
	return &DedupReporter{
		next:   next,
		seen:   gocache.New(window, 2*window),
		window: window,
	}
}

func (d *DedupReporter) Report(r coremon.Report) {
	key := r.Level + "\x00" + r.Tag + "\x00" + r.Message
	if err := d.seen.Add(key, struct{}{}, d.window); err != nil {
		d.suppressed.Add(1)
		return
	}
	d.next.Report(r)
}

// Suppressed returns how many reports were dropped as duplicates.
func (d *DedupReporter) Suppressed() int64 { return d.suppressed.Load() }

func (d *DedupReporter) Flush(timeout time.Duration) bool { return d.next.Flush(timeout) }

func (d *DedupReporter) Close() error {
	d.seen.Flush()
	return d.next.Close()
}
