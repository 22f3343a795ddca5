package kvstore

import (
	"context"
	"sync"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

// MemoryStore keeps values in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements ports.KeyValueStore.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := contextCheck(ctx, BackendMemory, "get", key); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, apperrors.NewStorageError(string(BackendMemory), "get", key, ErrClosed)
	}
	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements ports.KeyValueStore.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := contextCheck(ctx, BackendMemory, "set", key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return apperrors.NewStorageError(string(BackendMemory), "set", key, ErrClosed)
	}
	m.values[key] = value
	return nil
}

// Delete implements ports.KeyValueStore.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := contextCheck(ctx, BackendMemory, "delete", key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return apperrors.NewStorageError(string(BackendMemory), "delete", key, ErrClosed)
	}
	delete(m.values, key)
	return nil
}

// Close releases the store; later calls fail with ErrClosed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
