package monitoring

import (
	"fmt"

	"github.com/kilianp07/applog/core/factory"
	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/core/reportlog"
	"github.com/kilianp07/applog/infra/logger"
	"github.com/kilianp07/applog/infra/mqtt"
)

// StoreConfig configures the jsonl and sqlite reporters.
type StoreConfig struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// init registers built-in reporters.
func init() {
	_ = coremon.RegisterReporter("nop", func(map[string]any) (coremon.Reporter, error) {
		return coremon.NopReporter{}, nil
	})

	_ = coremon.RegisterReporter("log", func(conf map[string]any) (coremon.Reporter, error) {
		var c struct {
			Component string `json:"component"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Component == "" {
			c.Component = "reporter"
		}
		return NewLogReporter(logger.New(c.Component)), nil
	})

	_ = coremon.RegisterReporter("sentry", func(conf map[string]any) (coremon.Reporter, error) {
		var c SentryConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewSentryReporter(c)
	})

	_ = coremon.RegisterReporter("mqtt", func(conf map[string]any) (coremon.Reporter, error) {
		var c mqtt.Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewMQTTReporter(c)
	})

	_ = coremon.RegisterReporter("redis", func(conf map[string]any) (coremon.Reporter, error) {
		var c RedisConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewRedisReporter(c)
	})

	_ = coremon.RegisterReporter("jsonl", func(conf map[string]any) (coremon.Reporter, error) {
		store, err := OpenStore("jsonl", conf)
		if err != nil {
			return nil, err
		}
		return NewStoreReporter(store, "jsonl"), nil
	})

	_ = coremon.RegisterReporter("sqlite", func(conf map[string]any) (coremon.Reporter, error) {
		store, err := OpenStore("sqlite", conf)
		if err != nil {
			return nil, err
		}
		return NewStoreReporter(store, "sqlite"), nil
	})
}

// OpenStore opens a report store of kind "jsonl" or "sqlite" from raw
// settings. The CLI uses it to read back what the reporters wrote.
func OpenStore(kind string, conf map[string]any) (reportlog.Store, error) {
	var c StoreConfig
	if err := factory.Decode(conf, &c); err != nil {
		return nil, err
	}
	if c.Path == "" {
		return nil, fmt.Errorf("%s store: path is required", kind)
	}
	switch kind {
	case "jsonl":
		if c.MaxSizeMB <= 0 {
			c.MaxSizeMB = 10
		}
		return reportlog.NewRotatingJSONLStore(c.Path, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	case "sqlite":
		return reportlog.NewSQLiteStore(c.Path)
	}
	return nil, fmt.Errorf("unknown store kind %q", kind)
}
