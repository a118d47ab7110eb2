package logger

import (
	"sync"
	"testing"
	"time"

	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/core/monitoring"
)

type line struct {
	level corelogger.Level
	tag   string
	msg   string
}

type captureOutput struct {
	mu    sync.Mutex
	lines []line
}

func (o *captureOutput) Write(level corelogger.Level, tag, msg string, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line{level, tag, msg})
}

func (o *captureOutput) all() []line {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]line(nil), o.lines...)
}

type captureReporter struct {
	mu      sync.Mutex
	reports []monitoring.Report
	flushed int
	closed  bool
}

func (r *captureReporter) Report(rep monitoring.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}

func (r *captureReporter) Flush(time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushed++
	return true
}

func (r *captureReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *captureReporter) all() []monitoring.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]monitoring.Report(nil), r.reports...)
}

// countingCallers counts lookups so tests can assert that dropped records
// never walk the stack.
type countingCallers struct {
	mu    sync.Mutex
	calls int
}

func (c *countingCallers) Caller(skip int) (corelogger.Location, bool) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return corelogger.RuntimeCallers{}.Caller(skip + 1)
}

func (c *countingCallers) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func fixedThread() string { return "main" }

func newVerbose(out *captureOutput, opts ...Option) *Logger {
	base := []Option{WithMode(corelogger.ModeVerbose), WithOutput(out), WithThreadNamer(fixedThread)}
	return New(append(base, opts...)...)
}

func newRestricted(rep *captureReporter, opts ...Option) *Logger {
	base := []Option{WithMode(corelogger.ModeRestricted), WithReporter(rep), WithOutput(corelogger.NopOutput{})}
	return New(append(base, opts...)...)
}

// resetGlobal forgets the planted logger for the duration of the test.
func resetGlobal(t *testing.T) {
	t.Helper()
	once = sync.Once{}
	planted.Store(nil)
	t.Cleanup(func() {
		once = sync.Once{}
		planted.Store(nil)
	})
}
