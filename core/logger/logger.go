package logger

// Logger is the component logger used by adapters (reporters, stores,
// recorders) for their own diagnostics. It writes directly to its backend and
// never goes through the facade, so a failing reporter cannot recurse into
// itself.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
