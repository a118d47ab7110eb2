package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kilianp07/applog/config"
	"github.com/kilianp07/applog/core/factory"
	corelogger "github.com/kilianp07/applog/core/logger"
	coremetrics "github.com/kilianp07/applog/core/metrics"
	coremon "github.com/kilianp07/applog/core/monitoring"
	infralogger "github.com/kilianp07/applog/infra/logger"
	"github.com/kilianp07/applog/infra/metrics"
	inframonitoring "github.com/kilianp07/applog/infra/monitoring"
	"github.com/kilianp07/applog/logger"
)

// Service owns the pipeline built from the configuration: outputs,
// reporters and metrics recorders, and the logger they are wired into.
type Service struct {
	Logger   *logger.Logger
	Recorder coremetrics.Recorder
	Reporter coremon.Reporter
	promAddr string
	log      infralogger.Logger
}

// New builds every collaborator named in cfg. The logger it creates is not
// planted; call Install for that.
func New(cfg *config.Config) (*Service, error) {
	log := infralogger.New("service")

	rec, err := coremetrics.NewRecorder(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if cfg.Metrics.PrometheusAddr != "" && !hasSink(cfg.Metrics.Sinks, "prometheus") {
		prom, err := metrics.NewPromRecorder()
		if err != nil {
			return nil, fmt.Errorf("prometheus recorder: %w", err)
		}
		rec = coremetrics.NewMultiRecorder(rec, prom)
	}
	inframonitoring.SetRecorder(rec)

	out, err := corelogger.NewOutput(cfg.Logging.Outputs)
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}
	if out == nil {
		out = infralogger.DefaultOutput()
	}

	rep, err := newReporter(cfg.Reporting)
	if err != nil {
		closeQuietly(out)
		return nil, fmt.Errorf("reporters: %w", err)
	}

	l := logger.New(
		logger.WithBuildInfo(cfg.Logging.BuildInfo()),
		logger.WithOutput(out),
		logger.WithReporter(rep),
		logger.WithRecorder(rec),
		logger.WithConsoleForwarding(cfg.Logging.ConsoleForwarding),
		logger.WithChunkSize(cfg.Logging.ChunkSize),
	)
	return &Service{
		Logger:   l,
		Recorder: rec,
		Reporter: rep,
		promAddr: cfg.Metrics.PrometheusAddr,
		log:      log,
	}, nil
}

func newReporter(cfg config.ReportingConfig) (coremon.Reporter, error) {
	var rep coremon.Reporter
	if len(cfg.Reporters) == 0 {
		rep = inframonitoring.NewLogReporter(nil)
	} else {
		r, err := coremon.NewReporter(cfg.Reporters)
		if err != nil {
			return nil, err
		}
		rep = r
	}
	rep = inframonitoring.NewDedupReporter(rep, cfg.DedupWindow())
	if cfg.Async {
		rep = inframonitoring.NewAsyncReporter(rep, cfg.QueueSize)
	}
	return rep, nil
}

func hasSink(sinks []factory.ModuleConfig, name string) bool {
	for _, s := range sinks {
		if s.Type == name {
			return true
		}
	}
	return false
}

// Install plants the service's pipeline as the process-wide logger. If a
// logger was already planted it is kept and a warning is logged.
func (s *Service) Install() *logger.Logger {
	if logger.State() != "uninitialized" {
		s.log.Warnf("logger already initialized in %s mode; configuration not applied", logger.State())
	}
	return logger.Plant(s.Logger)
}

// Run serves the Prometheus endpoint, when configured, until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	if s.promAddr == "" {
		<-ctx.Done()
		return nil
	}
	return metrics.StartPromServer(ctx, s.promAddr)
}

// Close flushes pending reports and releases every collaborator.
func (s *Service) Close() error {
	if !s.Logger.Flush(5 * time.Second) {
		s.log.Warnf("pending reports not delivered before shutdown")
	}
	var errs []error
	if err := s.Logger.Close(); err != nil {
		errs = append(errs, err)
	}
	if c, ok := s.Recorder.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	inframonitoring.SetRecorder(nil)
	return errors.Join(errs...)
}

func closeQuietly(v any) {
	if c, ok := v.(io.Closer); ok {
		_ = c.Close()
	}
}
