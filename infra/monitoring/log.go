package monitoring

import (
	"time"

	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/infra/logger"
)

// LogReporter writes each report as one line on a component logger. It is
// the reporter used when nothing else is configured.
type LogReporter struct {
	log logger.Logger
}

// NewLogReporter returns a reporter writing to log. A nil log uses the
// "reporter" component logger.
func NewLogReporter(log logger.Logger) *LogReporter {
	if log == nil {
		log = logger.New("reporter")
	}
	return &LogReporter{log: log}
}

func (l *LogReporter) Report(r coremon.Report) {
	if r.Cause != nil {
		l.log.Errorf("Error reported: %s - %s: %v", r.Tag, r.Message, r.Cause)
		return
	}
	l.log.Errorf("Error reported: %s - %s", r.Tag, r.Message)
}

func (l *LogReporter) Flush(time.Duration) bool { return true }
func (l *LogReporter) Close() error             { return nil }
