package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"
)

const (
	busyTimeoutMS   = 5000
	maxOpenConns    = 1
	maxIdleConns    = 1
	connMaxLifetime = 5 * time.Minute
)

// SQLite stores key-value pairs in a single-file SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// Info describes the database backing a SQLite store.
type Info struct {
	Path          string   `json:"path"`
	SchemaVersion int      `json:"schema_version"`
	Keys          []string `json:"keys"`
}

// Open opens the SQLite database and applies pending migrations.
func Open(path string) (*SQLite, error) {
	dsn, err := sqliteDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := configureDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value stored under key, verifying its digest when present.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value  string
		digest sql.NullString
	)
	err := s.db.QueryRowContext(ctx, "SELECT value, digest FROM kv WHERE key = ?", key).Scan(&value, &digest)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	// Rows written before digests existed carry no digest and are trusted.
	if digest.Valid && digest.String != "" && digest.String != Digest(value) {
		return value, true, fmt.Errorf("%w: key %q", ErrCorrupt, key)
	}
	return value, true, nil
}

// Set upserts key with value.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, digest, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, digest = excluded.digest, updated_at = excluded.updated_at
	`, key, value, Digest(value), formatTime(time.Now()))
	return err
}

// Keys lists stored keys in lexical order.
func (s *SQLite) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Info reports the schema version and the stored keys.
func (s *SQLite) Info(ctx context.Context) (Info, error) {
	info := Info{Path: s.path}
	version, err := currentVersion(s.db)
	if err != nil {
		return info, err
	}
	info.SchemaVersion = version
	keys, err := s.Keys(ctx)
	if err != nil {
		return info, err
	}
	info.Keys = keys
	return info, nil
}

func configureDB(db *sql.DB) error {
	// Single writer: one connection is enough.
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db.Ping()
}

func sqliteDSN(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("db path is required")
	}
	// Pragmas travel in the DSN so every pooled connection gets them,
	// including ones opened after connMaxLifetime recycles the first.
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(FULL)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	u := url.URL{Scheme: "file", Path: path, RawQuery: q.Encode()}
	return u.String(), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
