package logger

import (
	"sync"
	"sync/atomic"
	"time"

	corelogger "github.com/kilianp07/applog/core/logger"
)

var (
	once    sync.Once
	planted atomic.Pointer[Logger]
)

// Init plants the process-wide Logger on first call. Later calls return the
// same instance and ignore their options.
func Init(opts ...Option) *Logger {
	once.Do(func() {
		planted.Store(New(opts...))
	})
	return planted.Load()
}

// Plant makes l the process-wide Logger if none is planted yet and returns
// the planted one.
func Plant(l *Logger) *Logger {
	once.Do(func() {
		planted.Store(l)
	})
	return planted.Load()
}

// Default returns the planted Logger, planting one with defaults if Init was
// never called.
func Default() *Logger {
	if l := planted.Load(); l != nil {
		return l
	}
	return Init()
}

// State reports "uninitialized" before Init, otherwise the planted mode.
func State() string {
	l := planted.Load()
	if l == nil {
		return "uninitialized"
	}
	return l.mode.String()
}

// Mode returns the mode of the planted Logger.
func Mode() corelogger.Mode { return Default().mode }

func Verbosef(msg string, args ...any) {
	Default().log(corelogger.VerboseLevel, corelogger.NoCategory, "", nil, msg, args)
}

func Debugf(msg string, args ...any) {
	Default().log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, msg, args)
}

func Infof(msg string, args ...any) {
	Default().log(corelogger.InfoLevel, corelogger.NoCategory, "", nil, msg, args)
}

func Warnf(msg string, args ...any) {
	Default().log(corelogger.WarnLevel, corelogger.NoCategory, "", nil, msg, args)
}

func Errorf(msg string, args ...any) {
	Default().log(corelogger.ErrorLevel, corelogger.NoCategory, "", nil, msg, args)
}

func Assertf(msg string, args ...any) {
	Default().log(corelogger.AssertLevel, corelogger.NoCategory, "", nil, msg, args)
}

// JSON logs payload verbatim at Debug on the planted Logger.
func JSON(payload string) {
	l := Default()
	if isBlank(payload) {
		l.log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, emptyJSON, nil)
		return
	}
	l.log(corelogger.DebugLevel, corelogger.NoCategory, "", nil, payload, nil)
}

func Category(c corelogger.Category) Entry { return Default().Category(c) }
func Tag(tag string) Entry                 { return Default().Tag(tag) }
func Err(cause error) Entry                { return Default().Err(cause) }

// Flush flushes the planted Logger's reporter.
func Flush(timeout time.Duration) bool { return Default().Flush(timeout) }

// Close closes the planted Logger.
func Close() error { return Default().Close() }

// NameGoroutine names the calling goroutine in verbose records until release
// is called.
func NameGoroutine(name string) (release func()) { return corelogger.NameGoroutine(name) }
