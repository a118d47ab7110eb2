package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/applog/core/reportlog"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	resetFlags()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears the package-level flag values that persist between
// Execute calls.
func resetFlags() {
	cfgPath = ""
	reportsOpts.store, reportsOpts.path, reportsOpts.level = "", "", ""
	reportsOpts.category, reportsOpts.tag = "", ""
	reportsOpts.since, reportsOpts.limit, reportsOpts.asJSON = 0, 0, false
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestModeCommand(t *testing.T) {
	path := writeConfig(t, "logging:\n  mode: restricted\n")
	out, err := execute(t, "mode", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "configured: restricted")
	assert.Contains(t, out, "resolved:   restricted")
}

func TestReportsCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reports.db")
	store, err := reportlog.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	now := time.Now().UTC()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, reportlog.Entry{ID: "1", Timestamp: now, Level: "ERROR", Category: "NETWORK", Tag: "[Client.Do():3]", Message: "[NETWORK] timeout", Cause: "eof"}))
	require.NoError(t, store.Append(ctx, reportlog.Entry{ID: "2", Timestamp: now, Level: "ASSERT", Category: "NONE", Tag: "panic", Message: "recovered panic"}))
	require.NoError(t, store.Close())

	out, err := execute(t, "reports", "--store", "sqlite", "--path", dbPath, "--level", "e")
	require.NoError(t, err)
	assert.Contains(t, out, "[NETWORK] timeout (eof)")
	assert.NotContains(t, out, "recovered panic")

	out, err = execute(t, "reports", "--store", "sqlite", "--path", dbPath, "--json")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestReportsCommand_NoStore(t *testing.T) {
	_, err := execute(t, "reports")
	assert.Error(t, err)
}

// TestEmitCommand is the only test that plants the process-wide logger.
func TestEmitCommand(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "reports.jsonl")
	path := writeConfig(t, `logging:
  mode: restricted
  outputs:
    - type: nop
reporting:
  reporters:
    - type: jsonl
      conf:
        path: `+storePath+`
`)
	out, err := execute(t, "emit", "--config", path, "--level", "error", "--category", "database", "--tag", "cli", "--cause", "disk full", "insert", "failed")
	require.NoError(t, err)
	assert.Contains(t, out, "emitted ERROR record in restricted mode")

	out, err = execute(t, "reports", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cli [DATABASE] insert failed (disk full)")
}

func TestEmitCommand_BadLevel(t *testing.T) {
	_, err := execute(t, "emit", "--level", "loud", "x")
	assert.ErrorContains(t, err, "unknown level")
	emitOpts.level = "info"
}
