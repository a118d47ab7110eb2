package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	levels := []Level{VerboseLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, AssertLevel}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, "ASSERT", AssertLevel.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"verbose": VerboseLevel,
		"D":       DebugLevel,
		"info":    InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"wtf":     AssertLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
