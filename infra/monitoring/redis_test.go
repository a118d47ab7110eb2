package monitoring

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	mu     sync.Mutex
	args   []*redis.XAddArgs
	err    error
	closed bool
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

func TestRedisReporter_XAdd(t *testing.T) {
	fs := &fakeStream{}
	rep := newRedisReporter(fs, RedisConfig{MaxLen: 1000})

	r := sampleReport()
	r.Cause = errors.New("boom")
	rep.Report(r)

	require.Len(t, fs.args, 1)
	a := fs.args[0]
	assert.Equal(t, DefaultStream, a.Stream)
	assert.Equal(t, int64(1000), a.MaxLen)
	assert.True(t, a.Approx)
	values, ok := a.Values.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ERROR", values["level"])
	assert.Equal(t, "NETWORK", values["category"])
	assert.Equal(t, "[Client.Fetch():42]", values["tag"])
	assert.Equal(t, "boom", values["cause"])
	assert.Equal(t, "2024-03-01T12:00:00Z", values["time"])

	require.NoError(t, rep.Close())
	assert.True(t, fs.closed)
}

func TestRedisReporter_FailureCounted(t *testing.T) {
	failures := useFailureCounter(t)
	fs := &fakeStream{err: errors.New("connection refused")}
	rep := newRedisReporter(fs, RedisConfig{Stream: "errors"})

	rep.Report(sampleReport())

	assert.Equal(t, "errors", fs.args[0].Stream)
	assert.Zero(t, fs.args[0].MaxLen)
	assert.Equal(t, 1, failures.get("redis"))
}
