package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteStore keeps values in a single SQLite table.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	closeErr error
	once     sync.Once
	closed   atomic.Bool
}

// OpenSQLite opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, apperrors.NewStorageError(string(BackendSQLite), "open", "", fmt.Errorf("path is required"))
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperrors.NewStorageError(string(BackendSQLite), "open", "", fmt.Errorf("failed to create database directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewStorageError(string(BackendSQLite), "open", "", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageError(string(BackendSQLite), "open", "", fmt.Errorf("failed to configure database: %w", err))
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageError(string(BackendSQLite), "open", "", fmt.Errorf("failed to migrate database: %w", err))
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Get implements ports.KeyValueStore.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := contextCheck(ctx, BackendSQLite, "get", key); err != nil {
		return "", false, err
	}
	if s.closed.Load() {
		return "", false, apperrors.NewStorageError(string(BackendSQLite), "get", key, ErrClosed)
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewStorageError(string(BackendSQLite), "get", key, s.translate(err))
	}
	return value, true, nil
}

// Set implements ports.KeyValueStore.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if err := contextCheck(ctx, BackendSQLite, "set", key); err != nil {
		return err
	}
	if s.closed.Load() {
		return apperrors.NewStorageError(string(BackendSQLite), "set", key, ErrClosed)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return apperrors.NewStorageError(string(BackendSQLite), "set", key, s.translate(err))
	}
	return nil
}

// Delete implements ports.KeyValueStore.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := contextCheck(ctx, BackendSQLite, "delete", key); err != nil {
		return err
	}
	if s.closed.Load() {
		return apperrors.NewStorageError(string(BackendSQLite), "delete", key, ErrClosed)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return apperrors.NewStorageError(string(BackendSQLite), "delete", key, s.translate(err))
	}
	return nil
}

// Close closes the database. It is safe to call more than once.
func (s *SQLiteStore) Close() error {
	s.once.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

func (s *SQLiteStore) translate(err error) error {
	if err != nil && s.closed.Load() {
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return err
}
