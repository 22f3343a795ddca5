package ports

import "context"

// KeyValueStore is the persistent string store consulted by the preferences
// adapter. Get reports a missing key with ok=false and a nil error. Callers
// only distinguish success from failure; error details are for logs.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
