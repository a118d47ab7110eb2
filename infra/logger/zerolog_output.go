package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/applog/core/logger"
)

// ZerologOutput is the default platform sink. Each line carries the record
// tag and severity as fields and the cause as "error".
type ZerologOutput struct {
	log zerolog.Logger
}

// NewZerologOutput writes to w, through a ConsoleWriter when pretty is set and
// as JSON lines otherwise.
func NewZerologOutput(w io.Writer, pretty bool) *ZerologOutput {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return &ZerologOutput{log: zerolog.New(w).With().Timestamp().Logger()}
}

// Write implements corelogger.Output.
func (o *ZerologOutput) Write(level corelogger.Level, tag, msg string, cause error) {
	ev := o.log.WithLevel(zerologLevel(level)).
		Str("severity", level.String()).
		Str("tag", tag)
	if cause != nil {
		ev = ev.Err(cause)
	}
	ev.Msg(msg)
}

// zerologLevel maps record levels. Verbose shares zerolog's debug level because
// zerolog filters its trace level globally by default. WithLevel never exits on
// FatalLevel, so Assert maps to it.
func zerologLevel(l corelogger.Level) zerolog.Level {
	switch l {
	case corelogger.VerboseLevel, corelogger.DebugLevel:
		return zerolog.DebugLevel
	case corelogger.InfoLevel:
		return zerolog.InfoLevel
	case corelogger.WarnLevel:
		return zerolog.WarnLevel
	case corelogger.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
