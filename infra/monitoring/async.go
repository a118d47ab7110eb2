package monitoring

import (
	"sync"
	"sync/atomic"
	"time"

	corelogger "github.com/kilianp07/applog/core/logger"
	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/infra/logger"
	"github.com/kilianp07/applog/internal/eventbus"
)

// DefaultQueueSize is the number of reports an AsyncReporter buffers.
const DefaultQueueSize = 256

// AsyncReporter hands reports to a single worker goroutine so Report never
// waits on the wrapped reporter. Reports arriving while the queue is full are
// dropped and counted as failures.
type AsyncReporter struct {
	next    coremon.Reporter
	bus     *eventbus.TypedBus[coremon.Report]
	pending atomic.Int64
	wg      sync.WaitGroup
	log     logger.Logger
	once    sync.Once
	closed  atomic.Bool
}

// NewAsyncReporter starts the worker. A queueSize <= 0 uses DefaultQueueSize.
func NewAsyncReporter(next coremon.Reporter, queueSize int) *AsyncReporter {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	a := &AsyncReporter{
		next: next,
		bus:  eventbus.NewTyped[coremon.Report](),
		log:  logger.New("async-reporter"),
	}
	sub := a.bus.SubscribeBuffered(queueSize)
	a.wg.Add(1)
	go a.run(sub)
	return a
}

func (a *AsyncReporter) run(sub <-chan coremon.Report) {
	defer a.wg.Done()
	release := corelogger.NameGoroutine("applog-reporter")
	defer release()
	for r := range sub {
		if err := coremon.SafeReport(a.next, r); err != nil {
			fail(a.log, "async", err)
		}
		a.pending.Add(-1)
	}
}

// Report queues r without blocking.
func (a *AsyncReporter) Report(r coremon.Report) {
	if a.closed.Load() {
		fail(a.log, "async", ErrReporterClosed)
		return
	}
	a.pending.Add(1)
	if a.bus.Publish(r) == 0 {
		a.pending.Add(-1)
		fail(a.log, "async", ErrQueueFull)
	}
}

// Pending returns the number of queued reports not yet delivered.
func (a *AsyncReporter) Pending() int64 { return a.pending.Load() }

// Flush waits for the queue to drain, then flushes the wrapped reporter with
// whatever time is left.
func (a *AsyncReporter) Flush(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for a.pending.Load() > 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
	remaining := time.Until(deadline)
	if remaining < 0 {
		remaining = 0
	}
	return a.next.Flush(remaining)
}

// Close stops accepting reports, delivers the queued ones and closes the
// wrapped reporter.
func (a *AsyncReporter) Close() error {
	var err error
	a.once.Do(func() {
		a.closed.Store(true)
		a.bus.Close()
		a.wg.Wait()
		err = a.next.Close()
	})
	return err
}
