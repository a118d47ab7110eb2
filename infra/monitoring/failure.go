package monitoring

import (
	"errors"
	"sync/atomic"

	"github.com/kilianp07/applog/core/metrics"
	"github.com/kilianp07/applog/infra/logger"
)

// ErrQueueFull is reported when the async queue cannot take another report.
var ErrQueueFull = errors.New("report queue full")

// ErrReporterClosed is reported when a report arrives after Close.
var ErrReporterClosed = errors.New("reporter closed")

type recorderHolder struct{ metrics.Recorder }

var failures atomic.Pointer[recorderHolder]

// SetRecorder sets where delivery failures of the reporters in this package
// are counted. A nil recorder stops counting.
func SetRecorder(rec metrics.Recorder) {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	failures.Store(&recorderHolder{rec})
}

func failureRecorder() metrics.Recorder {
	if h := failures.Load(); h != nil {
		return h.Recorder
	}
	return metrics.NopRecorder{}
}

// fail logs a delivery failure on the component logger and counts it. It
// never goes through the logging facade.
func fail(log logger.Logger, reporter string, err error) {
	log.Errorf("%s report failed: %v", reporter, err)
	failureRecorder().RecordReportFailure(reporter)
}
