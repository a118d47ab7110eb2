package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderTag is used when neither an explicit tag nor a caller frame is
// available.
const PlaceholderTag = "applog"

// Location identifies the call site that emitted a record.
type Location struct {
	Function string
	File     string
	Line     int
}

// IsZero reports whether no frame was captured.
func (l Location) IsZero() bool { return l.Function == "" }

// Tag formats the location as "[<type>.<method>():<line>]". The package path
// is trimmed so that "github.com/x/y/pkg.(*Server).Handle" becomes
// "pkg.(*Server).Handle".
func (l Location) Tag() string {
	fn := l.Function
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	return "[" + fn + "():" + strconv.Itoa(l.Line) + "]"
}

// Record is the unit passed from the facade to the planted Sink. A Record is
// created per call and never mutated afterwards.
type Record struct {
	Level    Level
	Tag      string
	Category Category
	Message  string
	Args     []any
	Cause    error
	Caller   Location
}

// Text returns the category prefix followed by the message with Args
// substituted. Without Args the template is used verbatim so that literal
// percent signs survive.
func (r Record) Text() string {
	msg := r.Message
	if len(r.Args) > 0 {
		msg = fmt.Sprintf(msg, r.Args...)
	}
	return r.Category.Prefix() + msg
}

// EffectiveTag returns the explicit tag, else the tag derived from the caller,
// else PlaceholderTag.
func (r Record) EffectiveTag() string {
	if r.Tag != "" {
		return r.Tag
	}
	if !r.Caller.IsZero() {
		return r.Caller.Tag()
	}
	return PlaceholderTag
}

// AppendTrace renders cause after msg on its own line. "%+v" is used so that
// errors carrying a stack print it.
func AppendTrace(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + "\n" + fmt.Sprintf("%+v", cause)
}
