package store

import (
	"context"
	"errors"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

// ErrNoStore means the accessor ran outside any provided scope.
var ErrNoStore = errors.New("theme accessor used outside of a theme provider")

type storeKey struct{}

// Provide creates and activates a Store and returns a context carrying it.
// The caller closes the store when the scope ends.
func Provide(ctx context.Context, opts Options) (context.Context, *Store) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := New(opts)
	s.Activate(ctx)
	return WithStore(ctx, s), s
}

// WithStore returns a child context carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the nearest Store in ctx.
func FromContext(ctx context.Context) (*Store, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(storeKey{}).(*Store)
	return s, ok && s != nil
}

// Use returns the current snapshot of the Store in ctx. It panics with a
// *errors.UsageError wrapping ErrNoStore when ctx carries no Store.
func Use(ctx context.Context) Snapshot {
	s, ok := FromContext(ctx)
	if !ok {
		panic(apperrors.NewUsageError("store.Use", ErrNoStore))
	}
	return s.Current()
}
