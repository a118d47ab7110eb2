package logger

import (
	"sync"
	"time"

	"github.com/kilianp07/applog/core/monitoring"
)

type line struct {
	level Level
	tag   string
	msg   string
	cause error
}

type recordOutput struct {
	mu    sync.Mutex
	lines []line
}

func (o *recordOutput) Write(level Level, tag, msg string, cause error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line{level, tag, msg, cause})
}

func (o *recordOutput) all() []line {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]line(nil), o.lines...)
}

type recordReporter struct {
	mu      sync.Mutex
	reports []monitoring.Report
}

func (r *recordReporter) Report(rep monitoring.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}
func (r *recordReporter) Flush(time.Duration) bool { return true }
func (r *recordReporter) Close() error             { return nil }

type countRecorder struct {
	mu       sync.Mutex
	emitted  int
	reported int
	failures int
	chunks   int
}

func (c *countRecorder) RecordEmitted(string, string) { c.mu.Lock(); c.emitted++; c.mu.Unlock() }
func (c *countRecorder) RecordReported(string)        { c.mu.Lock(); c.reported++; c.mu.Unlock() }
func (c *countRecorder) RecordReportFailure(string)   { c.mu.Lock(); c.failures++; c.mu.Unlock() }
func (c *countRecorder) RecordChunks(n int)           { c.mu.Lock(); c.chunks += n; c.mu.Unlock() }

func (c *countRecorder) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emitted + c.reported + c.failures + c.chunks
}
