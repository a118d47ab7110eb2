package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupReporter(t *testing.T) {
	next := &recordReporter{}
	rep := NewDedupReporter(next, time.Minute)
	d, ok := rep.(*DedupReporter)
	require.True(t, ok)

	r := sampleReport()
	rep.Report(r)
	rep.Report(r)
	other := r
	other.Message = "[NETWORK] host unreachable"
	rep.Report(other)
	escalated := r
	escalated.Level = "ASSERT"
	rep.Report(escalated)

	assert.Len(t, next.all(), 3)
	assert.Equal(t, int64(1), d.Suppressed())
	require.NoError(t, rep.Close())
	assert.True(t, next.closed)
}

func TestDedupReporter_WindowExpires(t *testing.T) {
	next := &recordReporter{}
	rep := NewDedupReporter(next, 20*time.Millisecond)
	rep.Report(sampleReport())
	time.Sleep(40 * time.Millisecond)
	rep.Report(sampleReport())
	assert.Len(t, next.all(), 2)
}

func TestDedupReporter_Disabled(t *testing.T) {
	next := &recordReporter{}
	assert.Same(t, next, NewDedupReporter(next, 0))
}
