// Package logger is the logging facade used by application code.
//
// A process plants one Logger with Init. Its mode is resolved once from the
// build information: debug builds get a verbose sink writing every record,
// enriched with the goroutine name and call site, to the platform output;
// release builds get a restricted sink that keeps Error and above and hands
// them to an error reporter.
//
//	logger.Init(logger.WithReporter(rep))
//	logger.Category(corelogger.Database).Debugf("query took %d ms", 42)
//	logger.Err(err).Errorf("checkout failed")
//
// Nothing in this package returns an error or panics on the emit path.
package logger
