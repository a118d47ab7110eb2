package logger

import (
	"errors"
	"io"
	"time"

	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/core/metrics"
	"github.com/kilianp07/applog/core/monitoring"
	infralogger "github.com/kilianp07/applog/infra/logger"
	inframonitoring "github.com/kilianp07/applog/infra/monitoring"
)

// callerDepth is the number of frames between log and the user's call site:
// log itself, then the public entry point.
const callerDepth = 2

// Logger routes records to the sink chosen for the process mode.
type Logger struct {
	mode     corelogger.Mode
	sink     corelogger.Sink
	callers  corelogger.CallerProvider
	output   corelogger.Output
	reporter monitoring.Reporter
}

// New builds a Logger that is not planted globally. Use it for injection and
// tests; use Init for the process-wide instance.
func New(opts ...Option) *Logger {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.output == nil {
		o.output = infralogger.DefaultOutput()
	}
	if o.reporter == nil {
		o.reporter = inframonitoring.NewLogReporter(infralogger.New("reporter"))
	}
	if o.recorder == nil {
		o.recorder = metrics.NopRecorder{}
	}
	if o.callers == nil {
		o.callers = corelogger.RuntimeCallers{}
	}

	var mode corelogger.Mode
	if o.mode != nil {
		mode = *o.mode
	} else {
		src := o.build
		if src == nil {
			src = corelogger.DefaultBuildInfo()
		}
		mode = corelogger.NewResolver(src).Resolve()
	}

	l := &Logger{
		mode:     mode,
		callers:  o.callers,
		output:   o.output,
		reporter: o.reporter,
	}
	switch mode {
	case corelogger.ModeRestricted:
		ropts := []corelogger.RestrictedOption{corelogger.WithSinkRecorder(o.recorder)}
		if o.console {
			ropts = append(ropts, corelogger.WithConsole(o.output, o.chunkSize))
		}
		l.sink = corelogger.NewRestrictedSink(o.reporter, ropts...)
	default:
		l.sink = corelogger.NewVerboseSink(o.output, o.thread, o.recorder)
	}
	return l
}

// Mode returns the mode the logger was built for.
func (l *Logger) Mode() corelogger.Mode { return l.mode }

// Enabled reports whether records of level would be kept.
func (l *Logger) Enabled(level corelogger.Level) bool { return l.sink.Enabled(level) }

// Emit is the primitive every other method is built on. An empty tag derives
// one from the call site. Emit never panics.
func (l *Logger) Emit(level corelogger.Level, cat corelogger.Category, tag string, cause error, msg string, args ...any) {
	l.log(level, cat, tag, cause, msg, args)
}

func (l *Logger) Verbosef(msg string, args ...any) {
	l.log(corelogger.VerboseLevel, corelogger.NoCategory, "", nil, msg, args)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, msg, args)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.log(corelogger.InfoLevel, corelogger.NoCategory, "", nil, msg, args)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.log(corelogger.WarnLevel, corelogger.NoCategory, "", nil, msg, args)
}

func (l *Logger) Errorf(msg string, args ...any) {
	l.log(corelogger.ErrorLevel, corelogger.NoCategory, "", nil, msg, args)
}

func (l *Logger) Assertf(msg string, args ...any) {
	l.log(corelogger.AssertLevel, corelogger.NoCategory, "", nil, msg, args)
}

// JSON logs payload verbatim at Debug.
func (l *Logger) JSON(payload string) {
	if isBlank(payload) {
		l.log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, emptyJSON, nil)
		return
	}
	l.log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, payload, nil)
}

// Category starts an Entry carrying c.
func (l *Logger) Category(c corelogger.Category) Entry { return Entry{l: l, category: c} }

// Tag starts an Entry with an explicit tag instead of the call-site one.
func (l *Logger) Tag(tag string) Entry { return Entry{l: l, tag: tag} }

// Err starts an Entry carrying cause.
func (l *Logger) Err(cause error) Entry { return Entry{l: l, cause: cause} }

// Flush waits up to timeout for pending reports.
func (l *Logger) Flush(timeout time.Duration) bool {
	return l.reporter.Flush(timeout)
}

// Close releases the reporter and any output holding resources.
func (l *Logger) Close() error {
	var errs []error
	if err := l.reporter.Close(); err != nil {
		errs = append(errs, err)
	}
	if c, ok := l.output.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Logger) log(level corelogger.Level, cat corelogger.Category, tag string, cause error, msg string, args []any) {
	if !l.sink.Enabled(level) {
		return
	}
	defer func() { _ = recover() }()
	rec := corelogger.Record{
		Level:    level,
		Tag:      tag,
		Category: cat,
		Message:  msg,
		Args:     args,
		Cause:    cause,
	}
	if tag == "" {
		rec.Caller, _ = l.callers.Caller(callerDepth)
	}
	l.sink.Emit(rec)
}
