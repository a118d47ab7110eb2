package logger

import (
	"errors"
	"io"
)

// Sink is the policy deciding whether and how a record is rendered and where it
// goes. Exactly one Sink is planted per process.
type Sink interface {
	// Enabled reports whether records of the given level are kept. The facade
	// checks it before capturing the caller so dropped records cost nothing.
	Enabled(level Level) bool
	// Emit applies the policy to rec. It never panics and never blocks beyond
	// the hand-off to its collaborators.
	Emit(rec Record)
}

// Output is the platform log sink: the place where rendered lines end up.
// Implementations must be safe for concurrent use.
type Output interface {
	Write(level Level, tag, msg string, cause error)
}

// OutputFunc adapts a function to Output.
type OutputFunc func(level Level, tag, msg string, cause error)

func (f OutputFunc) Write(level Level, tag, msg string, cause error) { f(level, tag, msg, cause) }

// NopOutput discards everything.
type NopOutput struct{}

func (NopOutput) Write(Level, string, string, error) {}

// MultiOutput fans a line out to several outputs.
type MultiOutput struct {
	Outputs []Output
}

// NewMultiOutput creates a MultiOutput with the provided outputs.
func NewMultiOutput(outs ...Output) *MultiOutput {
	return &MultiOutput{Outputs: outs}
}

// Write forwards the line to every output. A panicking output does not prevent
// the others from receiving it.
func (m *MultiOutput) Write(level Level, tag, msg string, cause error) {
	for _, o := range m.Outputs {
		safeWrite(o, level, tag, msg, cause)
	}
}

// Close closes the outputs that implement io.Closer.
func (m *MultiOutput) Close() error {
	var errs []error
	for _, o := range m.Outputs {
		if c, ok := o.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func safeWrite(o Output, level Level, tag, msg string, cause error) {
	defer func() { _ = recover() }()
	o.Write(level, tag, msg, cause)
}
