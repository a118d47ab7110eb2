package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corelogger "github.com/kilianp07/applog/core/logger"
)

func TestRecover_ReportsAndRepanics(t *testing.T) {
	rep := &captureReporter{}
	l := newRestricted(rep)

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		defer l.Recover()
		panic(boom)
	})

	reports := rep.all()
	require.Len(t, reports, 1)
	assert.Equal(t, "ASSERT", reports[0].Level)
	assert.Equal(t, panicTag, reports[0].Tag)
	assert.Equal(t, "recovered panic", reports[0].Message)
	assert.ErrorIs(t, reports[0].Cause, boom)
	assert.Equal(t, 1, rep.flushed)
}

func TestRecover_NonErrorValue(t *testing.T) {
	resetGlobal(t)
	rep := &captureReporter{}
	Init(WithMode(corelogger.ModeRestricted), WithReporter(rep), WithOutput(corelogger.NopOutput{}))

	assert.PanicsWithValue(t, "bad state", func() {
		defer Recover()
		panic("bad state")
	})

	reports := rep.all()
	require.Len(t, reports, 1)
	assert.EqualError(t, reports[0].Cause, "bad state")
}

func TestRecover_NoPanic(t *testing.T) {
	rep := &captureReporter{}
	l := newRestricted(rep)

	assert.NotPanics(t, func() {
		defer l.Recover()
	})
	assert.Empty(t, rep.all())
}
