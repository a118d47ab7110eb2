package logger

import "github.com/kilianp07/applog/core/metrics"

// VerboseSink enriches every record and writes it to an Output. It is the
// development-mode strategy.
type VerboseSink struct {
	out     Output
	thread  ThreadNamer
	metrics metrics.Recorder
}

// NewVerboseSink returns a sink writing to out. A nil thread namer uses
// ThreadName; a nil recorder records nothing.
func NewVerboseSink(out Output, thread ThreadNamer, rec metrics.Recorder) *VerboseSink {
	if out == nil {
		out = NopOutput{}
	}
	if thread == nil {
		thread = ThreadName
	}
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &VerboseSink{out: out, thread: thread, metrics: rec}
}

// Enabled always returns true.
func (s *VerboseSink) Enabled(Level) bool { return true }

// Emit writes "[Thread: <name>] <category-prefix><message>" under the
// effective tag, followed by the cause trace when there is one. The trace is
// part of the message, so the output receives no separate cause.
func (s *VerboseSink) Emit(rec Record) {
	msg := "[Thread: " + s.thread() + "] " + rec.Text()
	safeWrite(s.out, rec.Level, rec.EffectiveTag(), AppendTrace(msg, rec.Cause), nil)
	s.metrics.RecordEmitted(rec.Level.String(), rec.Category.String())
}
