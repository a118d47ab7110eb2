package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig defines a rotating log file.
type FileConfig struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
}

// FileOutput writes JSON lines to a file rotated by lumberjack.
type FileOutput struct {
	*ZerologOutput
	file *lumberjack.Logger
}

// NewFileOutput creates the parent directory and opens the rotating file
// lazily on first write.
func NewFileOutput(cfg FileConfig) (*FileOutput, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file output: path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("file output: %w", err)
		}
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return &FileOutput{ZerologOutput: NewZerologOutput(lj, false), file: lj}, nil
}

// Close closes the underlying file.
func (o *FileOutput) Close() error { return o.file.Close() }
