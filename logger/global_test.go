package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	corelogger "github.com/kilianp07/applog/core/logger"
)

func TestState_BeforeAndAfterInit(t *testing.T) {
	resetGlobal(t)
	assert.Equal(t, "uninitialized", State())

	Init(WithMode(corelogger.ModeRestricted), WithReporter(&captureReporter{}))
	assert.Equal(t, "restricted", State())
	assert.Equal(t, corelogger.ModeRestricted, Mode())
}

func TestInit_IsIdempotent(t *testing.T) {
	resetGlobal(t)
	first := Init(WithMode(corelogger.ModeVerbose), WithOutput(corelogger.NopOutput{}))
	second := Init(WithMode(corelogger.ModeRestricted))

	assert.Same(t, first, second)
	assert.Equal(t, "verbose", State())
}

func TestInit_Concurrent(t *testing.T) {
	resetGlobal(t)
	const n = 32
	got := make([]*Logger, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			got[i] = Init(WithMode(corelogger.ModeRestricted), WithReporter(&captureReporter{}))
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}

func TestDefault_LazyInit(t *testing.T) {
	resetGlobal(t)
	t.Setenv("APP_ENV", "development")

	l := Default()
	require.NotNil(t, l)
	assert.Equal(t, "verbose", State())
	assert.Same(t, l, Default())
}

func TestDefault_UnreadableBuildInfoFallsBackToVerbose(t *testing.T) {
	resetGlobal(t)
	t.Setenv("APP_ENV", "staging")

	assert.Equal(t, corelogger.ModeVerbose, Mode())
}

func TestPlant(t *testing.T) {
	resetGlobal(t)
	out := &captureOutput{}
	l := newVerbose(out)

	assert.Same(t, l, Plant(l))
	assert.Same(t, l, Plant(newVerbose(&captureOutput{})))
	assert.Same(t, l, Init())
}

func TestGlobalFunctions(t *testing.T) {
	resetGlobal(t)
	out := &captureOutput{}
	Plant(newVerbose(out))

	Verbosef("v")
	Debugf("d")
	Infof("hello %s", "world")
	Warnf("w")
	Errorf("e")
	Assertf("a")
	JSON("")
	Category(corelogger.UI).Infof("clicked")
	Tag("explicit").Infof("tagged")
	Err(errors.New("cause")).Warnf("failed")

	lines := out.all()
	require.Len(t, lines, 10)
	assert.Equal(t, corelogger.VerboseLevel, lines[0].level)
	assert.Equal(t, corelogger.AssertLevel, lines[5].level)
	assert.Equal(t, "[Thread: main] hello world", lines[2].msg)
	assert.Equal(t, "[Thread: main] "+emptyJSON, lines[6].msg)
	assert.Equal(t, "[Thread: main] [UI] clicked", lines[7].msg)
	assert.Equal(t, "explicit", lines[8].tag)
	for i, ln := range lines {
		if i == 8 {
			continue
		}
		assert.Contains(t, ln.tag, "TestGlobalFunctions", "line %d", i)
	}

	assert.True(t, Flush(time.Millisecond))
	assert.NoError(t, Close())
}

func TestGlobal_RestrictedExample(t *testing.T) {
	resetGlobal(t)
	rep := &captureReporter{}
	Init(WithMode(corelogger.ModeRestricted), WithReporter(rep), WithOutput(corelogger.NopOutput{}))

	Infof("User %s logged in", "alice")
	Category(corelogger.Network).Errorf("Timeout after %d retries", 3)

	reports := rep.all()
	require.Len(t, reports, 1)
	assert.Equal(t, "[NETWORK] Timeout after 3 retries", reports[0].Message)
}
