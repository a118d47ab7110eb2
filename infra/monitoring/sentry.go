package monitoring

import (
	"time"

	"github.com/getsentry/sentry-go"

	coremon "github.com/kilianp07/applog/core/monitoring"
)

// SentryConfig defines settings for Sentry error monitoring.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
	ServerName       string  `json:"server_name"`
	Debug            bool    `json:"debug"`
}

// SentryReporter sends reports to Sentry through its own hub, leaving the
// global Sentry client untouched.
type SentryReporter struct {
	hub *sentry.Hub
}

// NewSentryReporter initializes a Sentry client from cfg. An empty DSN
// disables reporting and returns a NopReporter.
func NewSentryReporter(cfg SentryConfig) (coremon.Reporter, error) {
	if cfg.DSN == "" {
		return coremon.NopReporter{}, nil
	}
	return NewSentryReporterWithOptions(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		TracesSampleRate: cfg.TracesSampleRate,
		Release:          cfg.Release,
		ServerName:       cfg.ServerName,
		Debug:            cfg.Debug,
	})
}

// NewSentryReporterWithOptions builds the reporter from raw client options.
func NewSentryReporterWithOptions(opts sentry.ClientOptions) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures the cause as an exception when there is one, the message
// otherwise. Level, category, tag and report id become Sentry tags.
func (s *SentryReporter) Report(r coremon.Report) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(r.Level))
		scope.SetTag("level", r.Level)
		scope.SetTag("category", r.Category)
		scope.SetTag("tag", r.Tag)
		scope.SetTag("report_id", r.ID)
		if r.Cause != nil {
			s.hub.CaptureException(r.Err())
			return
		}
		s.hub.CaptureMessage(r.Err().Error())
	})
}

// Flush waits for buffered events to be sent.
func (s *SentryReporter) Flush(timeout time.Duration) bool { return s.hub.Flush(timeout) }

// Close flushes pending events.
func (s *SentryReporter) Close() error {
	s.hub.Flush(2 * time.Second)
	return nil
}

func sentryLevel(level string) sentry.Level {
	switch level {
	case "ASSERT":
		return sentry.LevelFatal
	case "ERROR":
		return sentry.LevelError
	case "WARN":
		return sentry.LevelWarning
	case "INFO":
		return sentry.LevelInfo
	}
	return sentry.LevelDebug
}
