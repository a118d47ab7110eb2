package metrics

import (
	"errors"
	"io"
)

// Recorder observes the logging pipeline. Implementations must be safe for
// concurrent use and must not log through the facade.
type Recorder interface {
	// RecordEmitted counts a record written to an output.
	RecordEmitted(level, category string)
	// RecordReported counts a record handed to the reporter.
	RecordReported(level string)
	// RecordReportFailure counts a reporter that failed or panicked.
	RecordReportFailure(reporter string)
	// RecordChunks counts console lines produced by chunking one message.
	RecordChunks(n int)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

func (NopRecorder) RecordEmitted(string, string) {}
func (NopRecorder) RecordReported(string)        {}
func (NopRecorder) RecordReportFailure(string)   {}
func (NopRecorder) RecordChunks(int)             {}

// MultiRecorder forwards observations to several recorders.
type MultiRecorder struct {
	Recorders []Recorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...Recorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

func (m *MultiRecorder) RecordEmitted(level, category string) {
	for _, r := range m.Recorders {
		r.RecordEmitted(level, category)
	}
}

func (m *MultiRecorder) RecordReported(level string) {
	for _, r := range m.Recorders {
		r.RecordReported(level)
	}
}

func (m *MultiRecorder) RecordReportFailure(reporter string) {
	for _, r := range m.Recorders {
		r.RecordReportFailure(reporter)
	}
}

func (m *MultiRecorder) RecordChunks(n int) {
	for _, r := range m.Recorders {
		r.RecordChunks(n)
	}
}

// Close closes the recorders that implement io.Closer.
func (m *MultiRecorder) Close() error {
	var errs []error
	for _, r := range m.Recorders {
		if c, ok := r.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
