package reportlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists entries to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS reports (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT,
        ts INTEGER,
        level TEXT,
        category TEXT,
        tag TEXT,
        message TEXT,
        cause TEXT
    );
    CREATE INDEX IF NOT EXISTS reports_ts ON reports (ts);`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the entry to the database.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (id, ts, level, category, tag, message, cause) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp.UnixNano(), e.Level, e.Category, e.Tag, e.Message, e.Cause)
	return err
}

// Query returns entries matching q ordered by time.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]Entry, error) {
	var args []any
	query := `SELECT id, ts, level, category, tag, message, cause FROM reports WHERE 1=1`
	if !q.Start.IsZero() {
		query += ` AND ts >= ?`
		args = append(args, q.Start.UnixNano())
	}
	if !q.End.IsZero() {
		query += ` AND ts <= ?`
		args = append(args, q.End.UnixNano())
	}
	if q.Level != "" {
		query += ` AND level = ?`
		args = append(args, q.Level)
	}
	if q.Category != "" {
		query += ` AND category = ?`
		args = append(args, q.Category)
	}
	if q.Tag != "" {
		query += ` AND tag = ?`
		args = append(args, q.Tag)
	}
	query += ` ORDER BY ts, seq`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &ts, &e.Level, &e.Category, &e.Tag, &e.Message, &e.Cause); err != nil {
			return nil, err
		}
		e.Timestamp = unixNano(ts)
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func unixNano(ns int64) time.Time { return time.Unix(0, ns).UTC() }
