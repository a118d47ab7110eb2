package monitoring

import (
	"context"
	"time"

	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/core/reportlog"
	"github.com/kilianp07/applog/infra/logger"
)

// StoreReporter persists reports in a reportlog.Store.
type StoreReporter struct {
	store   reportlog.Store
	name    string
	timeout time.Duration
	log     logger.Logger
}

// NewStoreReporter wraps store. name labels failures ("jsonl", "sqlite").
func NewStoreReporter(store reportlog.Store, name string) *StoreReporter {
	return &StoreReporter{
		store:   store,
		name:    name,
		timeout: 2 * time.Second,
		log:     logger.New(name + "-reporter"),
	}
}

func (s *StoreReporter) Report(r coremon.Report) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.store.Append(ctx, reportlog.FromReport(r)); err != nil {
		fail(s.log, s.name, err)
	}
}

func (s *StoreReporter) Flush(time.Duration) bool { return true }

// Close closes the store.
func (s *StoreReporter) Close() error { return s.store.Close() }
