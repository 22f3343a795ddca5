// Package kvstore provides ports.KeyValueStore backends: an in-process map, a
// JSON file written atomically, and a SQLite table.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// ErrUnknownBackend is returned by Open for unsupported backend names.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a closable key/value backend.
type Store interface {
	ports.KeyValueStore
	io.Closer
}

// Options selects and configures a backend.
type Options struct {
	Backend Backend
	Path    string
}

// Open constructs the backend described by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch Backend(strings.ToLower(string(opts.Backend))) {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(opts.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, opts.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

func contextCheck(ctx context.Context, backend Backend, op, key string) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(string(backend), op, key, err)
	}
	return nil
}
