package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a record. Levels are totally ordered.
type Level int

const (
	VerboseLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	AssertLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("unknown level")

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case AssertLevel:
		return "ASSERT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, case-insensitively. The single-letter
// shorthands v, d, i, w, e and wtf are accepted as well.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "v", "trace":
		return VerboseLevel, nil
	case "debug", "d":
		return DebugLevel, nil
	case "info", "i":
		return InfoLevel, nil
	case "warn", "warning", "w":
		return WarnLevel, nil
	case "error", "e":
		return ErrorLevel, nil
	case "assert", "wtf", "fatal":
		return AssertLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
