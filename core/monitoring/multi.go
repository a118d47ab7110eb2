package monitoring

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

var errNotFlushed = errors.New("reporter not flushed")

// MultiReporter fans reports out to several reporters.
type MultiReporter struct {
	Reporters []Reporter
}

// NewMultiReporter creates a MultiReporter with the provided reporters.
func NewMultiReporter(rs ...Reporter) *MultiReporter {
	return &MultiReporter{Reporters: rs}
}

// Report forwards r to every reporter. A panicking reporter does not prevent
// the others from receiving it.
func (m *MultiReporter) Report(r Report) {
	for _, rep := range m.Reporters {
		_ = SafeReport(rep, r)
	}
}

// Flush flushes all reporters concurrently and reports whether all of them
// completed within timeout.
func (m *MultiReporter) Flush(timeout time.Duration) bool {
	var g errgroup.Group
	for _, rep := range m.Reporters {
		g.Go(func() error {
			if !rep.Flush(timeout) {
				return errNotFlushed
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// Close closes every reporter and joins their errors.
func (m *MultiReporter) Close() error {
	var errs []error
	for _, rep := range m.Reporters {
		if err := rep.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SafeReport calls rep.Report and converts a panic into an error.
func SafeReport(rep Reporter, r Report) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("reporter panic: %v", p)
		}
	}()
	rep.Report(r)
	return nil
}
