// Package metrics defines the Recorder used to observe the logging pipeline:
// records written to outputs, records handed to reporters, reporter failures
// and console chunking. Recorders such as the Prometheus and InfluxDB ones in
// infra/metrics register themselves by name; NewRecorder returns a
// MultiRecorder automatically when several are configured.
package metrics
