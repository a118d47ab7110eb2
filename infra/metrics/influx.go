package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/applog/core/metrics"
	"github.com/kilianp07/applog/infra/logger"
)

// InfluxConfig describes the InfluxDB endpoint.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxRecorder writes one point per recorded event through the batching
// write API, so recording never waits on the network.
type InfluxRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	log      logger.Logger
	done     chan struct{}
}

// NewInfluxRecorder creates a recorder for the given endpoint. Write errors
// are logged by a background goroutine until Close.
func NewInfluxRecorder(cfg InfluxConfig) *InfluxRecorder {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().
			SetHTTPClient(&http.Client{Timeout: 5 * time.Second}).
			SetFlushInterval(1000))
	r := &InfluxRecorder{
		client:   client,
		writeAPI: client.WriteAPI(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-recorder"),
		done:     make(chan struct{}),
	}
	go r.watchErrors(r.writeAPI.Errors())
	return r
}

// NewInfluxRecorderWithFallback pings the InfluxDB instance and returns a
// NopRecorder if the health check fails.
func NewInfluxRecorderWithFallback(cfg InfluxConfig) coremetrics.Recorder {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	probe := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	defer probe.Close()
	log := logger.New("influx-recorder")
	health, err := probe.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			log.Errorf("influx health check error: %v", err)
		} else {
			log.Errorf("influx health status: %s", health.Status)
		}
		return coremetrics.NopRecorder{}
	}
	return NewInfluxRecorder(cfg)
}

func (r *InfluxRecorder) watchErrors(errs <-chan error) {
	for {
		select {
		case <-r.done:
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			r.log.Warnf("influx write: %v", err)
		}
	}
}

func (r *InfluxRecorder) RecordEmitted(level, category string) {
	r.write(write.NewPointWithMeasurement("log_record_emitted").
		AddTag("category", category).
		AddTag("level", level).
		AddField("count", 1))
}

func (r *InfluxRecorder) RecordReported(level string) {
	r.write(write.NewPointWithMeasurement("log_report_sent").
		AddTag("level", level).
		AddField("count", 1))
}

func (r *InfluxRecorder) RecordReportFailure(reporter string) {
	r.write(write.NewPointWithMeasurement("log_report_failed").
		AddTag("reporter", reporter).
		AddField("count", 1))
}

func (r *InfluxRecorder) RecordChunks(n int) {
	r.write(write.NewPointWithMeasurement("log_console_chunks").
		AddField("count", n))
}

func (r *InfluxRecorder) write(p *write.Point) {
	r.writeAPI.WritePoint(p.SetTime(time.Now()))
}

// Flush writes buffered points.
func (r *InfluxRecorder) Flush() { r.writeAPI.Flush() }

// Close flushes and releases the client.
func (r *InfluxRecorder) Close() error {
	r.writeAPI.Flush()
	close(r.done)
	r.client.Close()
	return nil
}
