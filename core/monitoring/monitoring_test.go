package monitoring

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/applog/core/factory"
)

type stubReporter struct {
	mu       sync.Mutex
	got      []Report
	flushOK  bool
	closeErr error
}

func (s *stubReporter) Report(r Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, r)
}

func (s *stubReporter) Flush(time.Duration) bool { return s.flushOK }
func (s *stubReporter) Close() error             { return s.closeErr }

func (s *stubReporter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestReportErr(t *testing.T) {
	cause := errors.New("connection refused")
	r := Report{Tag: "[db.Open():12]", Message: "[DATABASE] open failed", Cause: cause}

	err := r.Err()
	assert.Equal(t, "[db.Open():12]: [DATABASE] open failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", r.CauseText())

	bare := Report{Message: "no tag"}
	assert.Equal(t, "no tag", bare.Err().Error())
	assert.Empty(t, bare.CauseText())
}

func TestSafeReport(t *testing.T) {
	err := SafeReport(ReporterFunc(func(Report) { panic("boom") }), Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.NoError(t, SafeReport(NopReporter{}, Report{}))
}

func TestMultiReporter(t *testing.T) {
	a := &stubReporter{flushOK: true}
	b := &stubReporter{flushOK: true, closeErr: errors.New("close b")}
	m := NewMultiReporter(a, ReporterFunc(func(Report) { panic("bad") }), b)

	m.Report(Report{Message: "x"})
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())

	assert.True(t, m.Flush(time.Second))
	b.flushOK = false
	assert.False(t, m.Flush(time.Second))

	assert.EqualError(t, m.Close(), "close b")
}

func TestNewReporter(t *testing.T) {
	require.NoError(t, RegisterReporter("stub-test", func(map[string]any) (Reporter, error) {
		return &stubReporter{flushOK: true}, nil
	}))
	assert.Error(t, RegisterReporter("stub-test", func(map[string]any) (Reporter, error) { return nil, nil }))
	assert.Contains(t, ReporterTypes(), "stub-test")

	none, err := NewReporter(nil)
	require.NoError(t, err)
	assert.IsType(t, NopReporter{}, none)

	one, err := NewReporter([]factory.ModuleConfig{{Type: "stub-test"}})
	require.NoError(t, err)
	assert.IsType(t, &stubReporter{}, one)

	many, err := NewReporter([]factory.ModuleConfig{{Type: "stub-test"}, {Type: "stub-test"}})
	require.NoError(t, err)
	assert.Len(t, many.(*MultiReporter).Reporters, 2)

	_, err = NewReporter([]factory.ModuleConfig{{Type: "stub-test"}, {Type: "missing"}})
	assert.Error(t, err)
}
