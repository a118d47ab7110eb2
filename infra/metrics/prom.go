package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder counts records and reports in Prometheus metrics.
type PromRecorder struct {
	emitted  *prometheus.CounterVec
	reported *prometheus.CounterVec
	failures *prometheus.CounterVec
	chunks   prometheus.Counter
}

// NewPromRecorder registers the counters on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers the counters on reg. A nil registerer
// defaults to the global Prometheus registerer. Counters that are already
// registered are reused.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	emitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "applog_records_emitted_total",
		Help: "Records written to the platform output",
	}, []string{"level", "category"})
	reported := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "applog_reports_total",
		Help: "Records handed to the error reporter",
	}, []string{"level"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "applog_report_failures_total",
		Help: "Reports that could not be delivered",
	}, []string{"reporter"})
	chunks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "applog_console_chunks_total",
		Help: "Console lines written by the restricted sink",
	})

	var err error
	if emitted, err = register(reg, emitted); err != nil {
		return nil, err
	}
	if reported, err = register(reg, reported); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	if chunks, err = register(reg, chunks); err != nil {
		return nil, err
	}
	return &PromRecorder{emitted: emitted, reported: reported, failures: failures, chunks: chunks}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) RecordEmitted(level, category string) {
	r.emitted.WithLabelValues(level, category).Inc()
}

func (r *PromRecorder) RecordReported(level string) {
	r.reported.WithLabelValues(level).Inc()
}

func (r *PromRecorder) RecordReportFailure(reporter string) {
	r.failures.WithLabelValues(reporter).Inc()
}

// RecordChunks adds n console lines.
func (r *PromRecorder) RecordChunks(n int) {
	if n > 0 {
		r.chunks.Add(float64(n))
	}
}
