package reportlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingJSONLStore stores entries in a JSONL file with automatic rotation.
type RotatingJSONLStore struct {
	logger *lumberjack.Logger
	path   string
}

// NewRotatingJSONLStore creates a store with rotation options in megabytes and days.
func NewRotatingJSONLStore(path string, maxSizeMB, maxBackups, maxAgeDays int) (*RotatingJSONLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonl store: empty path")
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("jsonl store: %w", err)
		}
	}
	return &RotatingJSONLStore{logger: lj, path: path}, nil
}

// Append writes the entry as one line and triggers rotation if needed.
func (s *RotatingJSONLStore) Append(_ context.Context, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = s.logger.Write(append(b, '\n'))
	return err
}

// Query reads the live file and every rotated backup, oldest entry first.
func (s *RotatingJSONLStore) Query(ctx context.Context, q Query) ([]Entry, error) {
	files, err := filepath.Glob(s.pattern())
	if err != nil {
		return nil, err
	}
	var res []Entry
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res = append(res, readJSONL(f, q)...)
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp) })
	if q.Limit > 0 && len(res) > q.Limit {
		res = res[:q.Limit]
	}
	return res, nil
}

// pattern matches "app.jsonl" and lumberjack backups like "app-<time>.jsonl".
func (s *RotatingJSONLStore) pattern() string {
	ext := filepath.Ext(s.path)
	return s.path[:len(s.path)-len(ext)] + "*" + ext
}

func readJSONL(path string, q Query) []Entry {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = file.Close() }()
	var res []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if q.Match(e) {
			res = append(res, e)
		}
	}
	return res
}

// Rotate closes the live file and starts a new one.
func (s *RotatingJSONLStore) Rotate() error { return s.logger.Rotate() }

// Close closes the underlying writer.
func (s *RotatingJSONLStore) Close() error {
	return s.logger.Close()
}
