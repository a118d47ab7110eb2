package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	corelogger "github.com/kilianp07/applog/core/logger"
)

var logrusLevels = map[corelogger.Level]logrus.Level{
	corelogger.VerboseLevel: logrus.TraceLevel,
	corelogger.DebugLevel:   logrus.DebugLevel,
	corelogger.InfoLevel:    logrus.InfoLevel,
	corelogger.WarnLevel:    logrus.WarnLevel,
	corelogger.ErrorLevel:   logrus.ErrorLevel,
	// logrus exits on its fatal level; assert lines keep their severity field.
	corelogger.AssertLevel: logrus.ErrorLevel,
}

// LogrusOutput writes lines through a logrus logger.
type LogrusOutput struct {
	logger *logrus.Logger
}

// NewLogrusOutput writes to w using the "json" or "text" formatter.
func NewLogrusOutput(w io.Writer, format string) *LogrusOutput {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.TraceLevel)
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	return &LogrusOutput{logger: l}
}

// Write implements corelogger.Output.
func (o *LogrusOutput) Write(level corelogger.Level, tag, msg string, cause error) {
	entry := o.logger.WithFields(logrus.Fields{"tag": tag, "severity": level.String()})
	if cause != nil {
		entry = entry.WithError(cause)
	}
	lvl, ok := logrusLevels[level]
	if !ok {
		lvl = logrus.ErrorLevel
	}
	entry.Log(lvl, msg)
}
