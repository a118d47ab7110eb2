package logger

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/applog/core/metrics"
	"github.com/kilianp07/applog/core/monitoring"
)

// ReportThreshold is the lowest level kept by the restricted sink.
const ReportThreshold = ErrorLevel

// RestrictedSink drops everything below ReportThreshold and hands the rest to
// a Reporter. It is the production-mode strategy. Console output is opt-in.
type RestrictedSink struct {
	reporter  monitoring.Reporter
	console   Output
	chunkSize int
	metrics   metrics.Recorder
	now       func() time.Time
}

// RestrictedOption configures a RestrictedSink.
type RestrictedOption func(*RestrictedSink)

// WithConsole forwards kept records to out, split into chunks of at most
// chunkSize runes. A chunkSize <= 0 uses DefaultChunkSize.
func WithConsole(out Output, chunkSize int) RestrictedOption {
	return func(s *RestrictedSink) {
		if chunkSize <= 0 {
			chunkSize = DefaultChunkSize
		}
		s.console = out
		s.chunkSize = chunkSize
	}
}

// WithSinkRecorder sets the metrics recorder.
func WithSinkRecorder(rec metrics.Recorder) RestrictedOption {
	return func(s *RestrictedSink) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

// NewRestrictedSink returns a sink reporting to rep. A nil rep drops reports.
func NewRestrictedSink(rep monitoring.Reporter, opts ...RestrictedOption) *RestrictedSink {
	if rep == nil {
		rep = monitoring.NopReporter{}
	}
	s := &RestrictedSink{
		reporter:  rep,
		chunkSize: DefaultChunkSize,
		metrics:   metrics.NopRecorder{},
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Enabled reports whether level reaches ReportThreshold.
func (s *RestrictedSink) Enabled(level Level) bool { return level >= ReportThreshold }

// Emit reports rec once with the category prefix and arguments applied.
// Records below the threshold have no effect at all.
func (s *RestrictedSink) Emit(rec Record) {
	if !s.Enabled(rec.Level) {
		return
	}
	msg := rec.Text()
	tag := rec.EffectiveTag()
	rep := monitoring.Report{
		ID:       uuid.NewString(),
		Time:     s.now(),
		Level:    rec.Level.String(),
		Category: rec.Category.String(),
		Tag:      tag,
		Message:  msg,
		Cause:    rec.Cause,
	}
	if err := monitoring.SafeReport(s.reporter, rep); err != nil {
		s.metrics.RecordReportFailure("panic")
	} else {
		s.metrics.RecordReported(rep.Level)
	}
	if s.console != nil {
		s.forward(rec, tag, AppendTrace(msg, rec.Cause))
	}
}

func (s *RestrictedSink) forward(rec Record, tag, msg string) {
	chunks := Chunk(msg, s.chunkSize)
	for _, c := range chunks {
		safeWrite(s.console, rec.Level, tag, c, nil)
	}
	s.metrics.RecordChunks(len(chunks))
	s.metrics.RecordEmitted(rec.Level.String(), rec.Category.String())
}
