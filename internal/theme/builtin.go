package theme

// Shared by both built-in themes.
var (
	defaultTypography = Typography{Heading: 26, Subheading: 22, Body: 16, Caption: 12}
	defaultSpacing    = Spacing{Small: 8, Medium: 16, Large: 24}
)

func lightTheme() Theme {
	return Theme{
		Colors: Colors{
			Primary:    "#45e59c",
			Secondary:  "#4d73ff",
			Background: "#ffffff",
			Text:       "#000000",
			Border:     "#dddddd",
			Accent:     "#4d73ff",
		},
		Typography: defaultTypography,
		Spacing:    defaultSpacing,
	}
}

// Dark lightens the light palette's brand colors for contrast on black.
func darkTheme() Theme {
	return Theme{
		Colors: Colors{
			Primary:    "#67eaae",
			Secondary:  "#6e86ff",
			Background: "#000000",
			Text:       "#ffffff",
			Border:     "#333333",
			Accent:     "#6e86ff",
		},
		Typography: defaultTypography,
		Spacing:    defaultSpacing,
	}
}

// Placeholder returns the theme a store exposes before it is activated.
func Placeholder() Theme {
	return Theme{
		Colors: Colors{
			Primary:    "#000000",
			Secondary:  "#000000",
			Background: "#ffffff",
			Text:       "#000000",
			Border:     "#cccccc",
			Accent:     "#000000",
		},
		Typography: Typography{Heading: 24, Subheading: 20, Body: 16, Caption: 12},
		Spacing:    Spacing{Small: 8, Medium: 16, Large: 24},
	}
}
