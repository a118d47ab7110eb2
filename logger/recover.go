package logger

import (
	"time"

	"github.com/pkg/errors"

	corelogger "github.com/kilianp07/applog/core/logger"
)

const (
	panicTag          = "panic"
	recoverFlushDelay = 2 * time.Second
)

// Recover logs a panic at Assert level, flushes pending reports and panics
// again. It must be deferred directly:
//
//	defer logger.Recover()
func Recover() {
	if p := recover(); p != nil {
		Default().recovered(p)
		panic(p)
	}
}

// Recover is the method form of the package-level Recover.
func (l *Logger) Recover() {
	if p := recover(); p != nil {
		l.recovered(p)
		panic(p)
	}
}

func (l *Logger) recovered(p any) {
	var err error
	if e, ok := p.(error); ok {
		err = errors.WithStack(e)
	} else {
		err = errors.Errorf("%v", p)
	}
	l.log(corelogger.AssertLevel, corelogger.NoCategory, panicTag, err, "recovered panic", nil)
	l.Flush(recoverFlushDelay)
}
