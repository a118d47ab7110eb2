package logger

import (
	corelogger "github.com/kilianp07/applog/core/logger"
	"github.com/kilianp07/applog/core/metrics"
	"github.com/kilianp07/applog/core/monitoring"
)

type options struct {
	build     corelogger.BuildInfo
	mode      *corelogger.Mode
	output    corelogger.Output
	reporter  monitoring.Reporter
	recorder  metrics.Recorder
	console   bool
	chunkSize int
	callers   corelogger.CallerProvider
	thread    corelogger.ThreadNamer
}

// Option configures a Logger.
type Option func(*options)

// WithMode pins the mode and skips build-info resolution.
func WithMode(m corelogger.Mode) Option {
	return func(o *options) { o.mode = &m }
}

// WithBuildInfo sets the source the mode is resolved from. The default asks
// the linker flag, then APP_ENV.
func WithBuildInfo(src corelogger.BuildInfo) Option {
	return func(o *options) { o.build = src }
}

// WithOutput sets the platform sink.
func WithOutput(out corelogger.Output) Option {
	return func(o *options) { o.output = out }
}

// WithReporter sets the error reporter used in restricted mode.
func WithReporter(rep monitoring.Reporter) Option {
	return func(o *options) { o.reporter = rep }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(o *options) { o.recorder = rec }
}

// WithConsoleForwarding makes the restricted sink also write kept records to
// the output. It is off by default.
func WithConsoleForwarding(enabled bool) Option {
	return func(o *options) { o.console = enabled }
}

// WithChunkSize sets the longest console line, in runes, under restricted
// mode.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithCallerProvider replaces the call-site lookup.
func WithCallerProvider(p corelogger.CallerProvider) Option {
	return func(o *options) { o.callers = p }
}

// WithThreadNamer replaces the goroutine naming used by the verbose sink.
func WithThreadNamer(n corelogger.ThreadNamer) Option {
	return func(o *options) { o.thread = n }
}
