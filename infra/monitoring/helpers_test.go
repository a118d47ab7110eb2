package monitoring

import (
	"fmt"
	"sync"
	"time"

	coremon "github.com/kilianp07/applog/core/monitoring"
)

type recordReporter struct {
	mu      sync.Mutex
	reports []coremon.Report
	closed  bool
	block   chan struct{}
	entered chan struct{}
}

func (r *recordReporter) Report(rep coremon.Report) {
	if r.entered != nil {
		select {
		case r.entered <- struct{}{}:
		default:
		}
	}
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
}

func (r *recordReporter) Flush(time.Duration) bool { return true }

func (r *recordReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recordReporter) all() []coremon.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]coremon.Report(nil), r.reports...)
}

type failureCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFailureCounter() *failureCounter { return &failureCounter{counts: map[string]int{}} }

func (f *failureCounter) RecordEmitted(string, string) {}
func (f *failureCounter) RecordReported(string)        {}
func (f *failureCounter) RecordChunks(int)             {}
func (f *failureCounter) RecordReportFailure(reporter string) {
	f.mu.Lock()
	f.counts[reporter]++
	f.mu.Unlock()
}

func (f *failureCounter) get(reporter string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[reporter]
}

type lineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *lineLogger) Debugf(f string, a ...any)           { l.add("debug", f, a...) }
func (l *lineLogger) Debugw(msg string, _ map[string]any) { l.add("debug", "%s", msg) }
func (l *lineLogger) Infof(f string, a ...any)            { l.add("info", f, a...) }
func (l *lineLogger) Warnf(f string, a ...any)            { l.add("warn", f, a...) }
func (l *lineLogger) Errorf(f string, a ...any)           { l.add("error", f, a...) }

func (l *lineLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func sampleReport() coremon.Report {
	return coremon.Report{
		ID:       "r-1",
		Time:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Level:    "ERROR",
		Category: "NETWORK",
		Tag:      "[Client.Fetch():42]",
		Message:  "[NETWORK] timeout after 3 retries",
	}
}

// useFailureCounter routes failure metrics to a fresh counter for one test.
func useFailureCounter(t interface{ Cleanup(func()) }) *failureCounter {
	c := newFailureCounter()
	SetRecorder(c)
	t.Cleanup(func() { SetRecorder(nil) })
	return c
}
