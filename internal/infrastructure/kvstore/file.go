package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

const fileFormatVersion = "1.0"

// FileDocument is the JSON file format for FileStore.
type FileDocument struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists values to a JSON file, rewritten atomically on every change.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
	closed  bool
}

// NewFileStore creates a FileStore and loads path if it exists.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, apperrors.NewStorageError(string(BackendFile), "open", "", fmt.Errorf("path is required"))
	}

	s := &FileStore{
		path:    path,
		version: fileFormatVersion,
		values:  make(map[string]string),
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError(string(BackendFile), "open", "", fmt.Errorf("failed to create store directory: %w", err))
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.NewStorageError(string(BackendFile), "open", "", err)
		}
	}

	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc FileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse store file: %w", err)
	}

	if doc.Version != "" {
		s.version = doc.Version
	}
	s.values = doc.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// save writes the document to disk atomically. Callers hold s.mu.
func (s *FileStore) save() error {
	doc := FileDocument{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	// Write to temporary file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get implements ports.KeyValueStore.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := contextCheck(ctx, BackendFile, "get", key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, apperrors.NewStorageError(string(BackendFile), "get", key, ErrClosed)
	}
	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements ports.KeyValueStore. The in-memory value is rolled back
// when the file cannot be written.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := contextCheck(ctx, BackendFile, "set", key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperrors.NewStorageError(string(BackendFile), "set", key, ErrClosed)
	}

	previous, had := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return apperrors.NewStorageError(string(BackendFile), "set", key, err)
	}
	return nil
}

// Delete implements ports.KeyValueStore.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := contextCheck(ctx, BackendFile, "delete", key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperrors.NewStorageError(string(BackendFile), "delete", key, ErrClosed)
	}

	previous, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.save(); err != nil {
		s.values[key] = previous
		return apperrors.NewStorageError(string(BackendFile), "delete", key, err)
	}
	return nil
}

// Close marks the store closed. The file is already up to date.
func (s *FileStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
