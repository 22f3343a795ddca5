// Package theme holds thematic's design tokens: the typed Token Set, the
// immutable built-in Registry, partial Overrides with their structural merge,
// and the Resolver that turns a theme name into a complete Theme.
//
// Integration example:
//
//	resolver := theme.NewResolver(theme.DefaultRegistry(), logger)
//	overrides := theme.Overrides{
//		theme.Light: {Colors: theme.ColorsOverride{Primary: theme.String("#abc")}},
//	}
//	current := resolver.Resolve(ctx, theme.Light, overrides)
//	fmt.Println(current.Colors.Primary) // #abc
//
// Resolve never fails: unknown names fall back to the light theme and log a
// warning.
package theme
