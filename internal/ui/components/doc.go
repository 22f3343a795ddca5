// Package components maps declarative layout and typography props plus the
// current theme onto terminal styles.
//
// Style mapping is pure: ViewStyleFor and TextStyleFor take props and a
// theme.Theme and return a style value, with Lipgloss converting that value
// for rendering. ThemedView and ThemedText read the theme from the store in
// the render context once per render and never write to it:
//
//	ctx, s := store.Provide(ctx, store.Options{InitialThemeName: theme.Dark})
//	defer s.Close(ctx)
//
//	card := components.NewThemedView(components.ViewProps{Padding: components.Units(8)},
//		components.NewThemedText("Settings", components.TextProps{Variant: theme.TypographyHeading}),
//		components.NewThemedText("Pick a theme", components.TextProps{Variant: theme.TypographyCaption}),
//	)
//	fmt.Println(card.Render(ctx))
//
// Spacing values are design units; one terminal cell is UnitsPerCell units.
package components
