// Package logger holds the core of the logging facade: the record model
// (Level, Category, Record), the two sink strategies and the mode resolver that
// chooses between them.
//
// VerboseSink is planted in development builds. It keeps every record, derives
// a "[<type>.<method>():<line>]" tag from the call site when none is given,
// prefixes the message with the calling goroutine's name and writes it to an
// Output.
//
// RestrictedSink is planted in release builds. It keeps Error and Assert only
// and hands them to a monitoring.Reporter. Console output is opt-in and long
// lines are split with Chunk.
//
// Resolver decides between the two once per process from a BuildInfo source;
// any failure to answer resolves to ModeVerbose.
package logger
