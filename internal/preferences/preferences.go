// Package preferences persists the active theme name under a single fixed
// key. Storage failures never escape: reads fall back to the default theme and
// writes are logged.
package preferences

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// ThemeNameKey is the storage key holding the active theme name.
const ThemeNameKey = "@thematic/themeName"

// DefaultThemeName is returned when nothing usable is stored.
const DefaultThemeName = theme.Light

// Adapter reads and writes the persisted theme name.
type Adapter struct {
	kv     ports.KeyValueStore
	logger ports.Logger
}

// NewAdapter wraps a key/value backend. A nil backend behaves as an empty,
// read-only store.
func NewAdapter(kv ports.KeyValueStore, logger ports.Logger) *Adapter {
	return &Adapter{kv: kv, logger: logger}
}

// LoadThemeName returns the stored name, or DefaultThemeName when the key is
// absent, blank, or the read fails.
func (a *Adapter) LoadThemeName(ctx context.Context) theme.Name {
	if a == nil || a.kv == nil {
		return DefaultThemeName
	}

	value, ok, err := a.kv.Get(ctx, ThemeNameKey)
	if err != nil {
		a.warn(ctx, "error reading theme name", err)
		return DefaultThemeName
	}
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return DefaultThemeName
	}
	return theme.Name(value)
}

// SaveThemeName stores name. Failures are logged and otherwise ignored.
func (a *Adapter) SaveThemeName(ctx context.Context, name theme.Name) {
	if a == nil || a.kv == nil {
		return
	}
	if err := a.kv.Set(ctx, ThemeNameKey, string(name)); err != nil {
		a.warn(ctx, "error writing theme name", err, "theme", string(name))
		return
	}
	a.debug(ctx, "theme name persisted", "theme", string(name))
}

// Clear removes the stored name so the next hydration uses the default.
func (a *Adapter) Clear(ctx context.Context) {
	if a == nil || a.kv == nil {
		return
	}
	if err := a.kv.Delete(ctx, ThemeNameKey); err != nil {
		a.warn(ctx, "error clearing theme name", err)
	}
}

func (a *Adapter) warn(ctx context.Context, msg string, err error, fields ...interface{}) {
	if a.logger == nil {
		return
	}
	payload := append([]interface{}{"component", "preferences", "key", ThemeNameKey, "error", err}, fields...)
	a.logger.Warn(ctx, msg, payload...)
}

func (a *Adapter) debug(ctx context.Context, msg string, fields ...interface{}) {
	if a.logger == nil {
		return
	}
	a.logger.Debug(ctx, msg, append([]interface{}{"component", "preferences"}, fields...)...)
}
