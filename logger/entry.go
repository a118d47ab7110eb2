package logger

import (
	"strings"

	corelogger "github.com/kilianp07/applog/core/logger"
)

const emptyJSON = "JSON is null or empty"

// Entry carries per-call settings. Every method returns a copy, so an Entry
// can be kept and reused from several goroutines.
type Entry struct {
	l        *Logger
	tag      string
	category corelogger.Category
	cause    error
}

func (e Entry) Category(c corelogger.Category) Entry {
	e.category = c
	return e
}

func (e Entry) Tag(tag string) Entry {
	e.tag = tag
	return e
}

func (e Entry) Err(cause error) Entry {
	e.cause = cause
	return e
}

func (e Entry) Verbosef(msg string, args ...any) {
	e.l.log(corelogger.VerboseLevel, e.category, e.tag, e.cause, msg, args)
}

func (e Entry) Debugf(msg string, args ...any) {
	e.l.log(corelogger.DebugLevel, e.category, e.tag, e.cause, msg, args)
}

func (e Entry) Infof(msg string, args ...any) {
	e.l.log(corelogger.InfoLevel, e.category, e.tag, e.cause, msg, args)
}

func (e Entry) Warnf(msg string, args ...any) {
	e.l.log(corelogger.WarnLevel, e.category, e.tag, e.cause, msg, args)
}

func (e Entry) Errorf(msg string, args ...any) {
	e.l.log(corelogger.ErrorLevel, e.category, e.tag, e.cause, msg, args)
}

func (e Entry) Assertf(msg string, args ...any) {
	e.l.log(corelogger.AssertLevel, e.category, e.tag, e.cause, msg, args)
}

// JSON logs payload verbatim at Debug, or a fixed notice when it is blank.
func (e Entry) JSON(payload string) {
	if isBlank(payload) {
		e.l.log(corelogger.DebugLevel, e.category, e.tag, e.cause, emptyJSON, nil)
		return
	}
	e.l.log(corelogger.DebugLevel, e.category, e.tag, e.cause, payload, nil)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
