package theme

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/thematic/internal/ports"
)

// Source records which branch produced a resolved theme.
type Source string

const (
	// SourceBuiltIn: a registry entry, possibly merged with an override.
	SourceBuiltIn Source = "builtin"
	// SourceCustom: an override with no registry base, used as-is.
	SourceCustom Source = "custom"
	// SourceFallback: unknown name, resolved as light.
	SourceFallback Source = "fallback"
)

// FallbackName is used when a name has neither a registry entry nor an override.
const FallbackName = Light

// Resolution is a resolved theme plus how it was obtained.
type Resolution struct {
	Name    Name
	Theme   Theme
	Source  Source
	Missing []string
}

// Resolver turns theme names into complete themes.
type Resolver struct {
	registry *Registry
	logger   ports.Logger
}

// NewResolver creates a resolver over registry. A nil registry means the
// default one; a nil logger discards warnings.
func NewResolver(registry *Registry, logger ports.Logger) *Resolver {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Resolver{registry: registry, logger: logger}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve returns the theme for name with any override registered under the
// same name merged on top. It always returns a usable theme.
func (r *Resolver) Resolve(ctx context.Context, name Name, overrides Overrides) Theme {
	return r.ResolveDetailed(ctx, name, overrides).Theme
}

// ResolveDetailed is Resolve with the resolution source attached.
func (r *Resolver) ResolveDetailed(ctx context.Context, name Name, overrides Overrides) Resolution {
	base, hasBase := r.registry.Lookup(name)
	override, hasOverride := overrides[name]

	switch {
	case hasBase:
		resolved := Merge(base, override)
		missing := MissingKeys(resolved)
		if len(missing) > 0 {
			r.warn(ctx, "override blanks required tokens", "theme", string(name), "missing", strings.Join(missing, ","))
		}
		return Resolution{Name: name, Theme: resolved, Source: SourceBuiltIn, Missing: missing}
	case hasOverride:
		resolved := override.AsTheme()
		missing := MissingKeys(resolved)
		if len(missing) > 0 {
			r.warn(ctx, "custom theme is missing required tokens", "theme", string(name), "missing", strings.Join(missing, ","))
		}
		return Resolution{Name: name, Theme: resolved, Source: SourceCustom, Missing: missing}
	default:
		r.warn(ctx, "theme not found, falling back", "theme", string(name), "fallback", string(FallbackName))
		fallback, ok := r.registry.Lookup(FallbackName)
		if !ok {
			fallback = lightTheme()
		}
		return Resolution{Name: name, Theme: Merge(fallback, overrides[FallbackName]), Source: SourceFallback}
	}
}

// Known reports whether name resolves without falling back.
func (r *Resolver) Known(name Name, overrides Overrides) bool {
	if r.registry.Has(name) {
		return true
	}
	_, ok := overrides[name]
	return ok
}

func (r *Resolver) warn(ctx context.Context, msg string, fields ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Warn(ctx, msg, append([]interface{}{"component", "resolver"}, fields...)...)
}
