package theme

import "sort"

// Registry is an immutable name -> Theme table.
type Registry struct {
	themes map[Name]Theme
}

var defaultRegistry = NewRegistry(map[Name]Theme{
	Light: lightTheme(),
	Dark:  darkTheme(),
})

// DefaultRegistry returns the shared registry holding the built-in light and
// dark themes.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from a copy of the supplied themes.
func NewRegistry(themes map[Name]Theme) *Registry {
	r := &Registry{themes: make(map[Name]Theme, len(themes))}
	for name, t := range themes {
		r.themes[name] = t.Clone()
	}
	return r
}

// Lookup returns a copy of the theme registered under name.
func (r *Registry) Lookup(name Name) (Theme, bool) {
	if r == nil {
		return Theme{}, false
	}
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, false
	}
	return t.Clone(), true
}

// Has reports whether name is registered.
func (r *Registry) Has(name Name) bool {
	if r == nil {
		return false
	}
	_, ok := r.themes[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []Name {
	if r == nil {
		return nil
	}
	names := make([]Name, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// BuiltIn returns a copy of every registered theme, for hosts that want the
// default tokens directly.
func (r *Registry) BuiltIn() map[Name]Theme {
	if r == nil {
		return map[Name]Theme{}
	}
	out := make(map[Name]Theme, len(r.themes))
	for name, t := range r.themes {
		out[name] = t.Clone()
	}
	return out
}
