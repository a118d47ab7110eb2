package monitoring

import "time"

// Report is a high-severity record handed to an error-reporting backend.
type Report struct {
	ID       string
	Time     time.Time
	Level    string
	Category string
	Tag      string
	Message  string
	Cause    error
}

// Err returns the report as an error for backends that capture exceptions.
// The message reads "<tag>: <message>" and unwraps to Cause.
func (r Report) Err() error {
	return &ReportError{Tag: r.Tag, Message: r.Message, Cause: r.Cause}
}

// CauseText returns the cause message, or "" when there is none.
func (r Report) CauseText() string {
	if r.Cause == nil {
		return ""
	}
	return r.Cause.Error()
}

// ReportError is the error view of a Report.
type ReportError struct {
	Tag     string
	Message string
	Cause   error
}

func (e *ReportError) Error() string {
	s := e.Message
	if e.Tag != "" {
		s = e.Tag + ": " + s
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *ReportError) Unwrap() error { return e.Cause }

// Reporter receives reports for off-process tracking. Report must not block
// for long and must be safe for concurrent use; delivery guarantees are up to
// the implementation.
type Reporter interface {
	Report(r Report)
	// Flush waits up to timeout for buffered reports to be delivered and
	// reports whether everything was sent.
	Flush(timeout time.Duration) bool
	Close() error
}

// NopReporter drops every report.
type NopReporter struct{}

func (NopReporter) Report(Report)            {}
func (NopReporter) Flush(time.Duration) bool { return true }
func (NopReporter) Close() error             { return nil }

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Report)

func (f ReporterFunc) Report(r Report)        { f(r) }
func (ReporterFunc) Flush(time.Duration) bool { return true }
func (ReporterFunc) Close() error             { return nil }
