package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coremon "github.com/kilianp07/applog/core/monitoring"
	"github.com/kilianp07/applog/infra/logger"
)

// RedisConfig describes the Redis stream reports are appended to.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Stream   string `json:"stream"`
	MaxLen   int64  `json:"max_len"`
}

// DefaultStream is used when no stream name is configured.
const DefaultStream = "applog:reports"

type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// RedisReporter appends reports to a Redis stream with XADD.
type RedisReporter struct {
	client  streamClient
	stream  string
	maxLen  int64
	timeout time.Duration
	log     logger.Logger
}

// NewRedisReporter connects to Redis and checks the connection.
func NewRedisReporter(cfg RedisConfig) (*RedisReporter, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis reporter: ping failed: %w", err)
	}
	return newRedisReporter(rdb, cfg), nil
}

func newRedisReporter(c streamClient, cfg RedisConfig) *RedisReporter {
	stream := cfg.Stream
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisReporter{
		client:  c,
		stream:  stream,
		maxLen:  cfg.MaxLen,
		timeout: 2 * time.Second,
		log:     logger.New("redis-reporter"),
	}
}

func (r *RedisReporter) Report(rep coremon.Report) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	args := &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{
			"id":       rep.ID,
			"time":     rep.Time.UTC().Format(time.RFC3339Nano),
			"level":    rep.Level,
			"category": rep.Category,
			"tag":      rep.Tag,
			"message":  rep.Message,
			"cause":    rep.CauseText(),
		},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}
	if err := r.client.XAdd(ctx, args).Err(); err != nil {
		fail(r.log, "redis", err)
	}
}

func (r *RedisReporter) Flush(time.Duration) bool { return true }

// Close closes the Redis client.
func (r *RedisReporter) Close() error { return r.client.Close() }
