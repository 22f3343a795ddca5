package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

const brandYAML = `themes:
  light:
    colors:
      primary: "#abc"
  brand:
    colors:
      primary: "#111111"
      secondary: "#222222"
      background: "#333333"
      text: "#444444"
      border: "#555555"
      accent: "#666666"
      highlight: "#777777"
    typography:
      heading: 30
      subheading: 24
      body: 18
      caption: 14
    spacing:
      small: 4
      medium: 8
      large: 16.5
    borderRadius:
      card: 12
`

const brandTOML = `
[themes.light.colors]
primary = "#abc"

[themes.brand.colors]
primary = "#111111"
secondary = "#222222"
background = "#333333"
text = "#444444"
border = "#555555"
accent = "#666666"

[themes.brand.typography]
heading = 30
subheading = 24
body = 18
caption = 14

[themes.brand.spacing]
small = 4
medium = 8
large = 16.5
`

func TestLoadThemes(t *testing.T) {
	cases := []struct {
		name     string
		file     string
		contents string
	}{
		{name: "yaml", file: "themes.yaml", contents: brandYAML},
		{name: "yml", file: "themes.yml", contents: brandYAML},
		{name: "toml", file: "themes.toml", contents: brandTOML},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tc.file, tc.contents)
			file, err := LoadThemes(path)
			require.NoError(t, err)

			assert.Equal(t, path, file.Path)
			assert.Equal(t, []theme.Name{"brand", "light"}, file.Names())

			light := file.Overrides[theme.Light]
			require.NotNil(t, light.Colors.Primary)
			assert.Equal(t, "#abc", *light.Colors.Primary)
			assert.Nil(t, light.Colors.Secondary)

			brand := file.Overrides["brand"].AsTheme()
			require.NoError(t, theme.Validate(brand))
			assert.Equal(t, 30.0, brand.Typography.Heading)
			assert.Equal(t, 16.5, brand.Spacing.Large)
		})
	}
}

func TestLoadThemesKeepsExtensions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "themes.yaml", brandYAML)

	file, err := LoadThemes(path)
	require.NoError(t, err)

	brand := file.Overrides["brand"]
	assert.Equal(t, "#777777", brand.Colors.Extra["highlight"])
	assert.Equal(t, map[string]any{"card": 12}, brand.Extensions["borderRadius"])
}

func TestLoadThemesErrors(t *testing.T) {
	cases := []struct {
		name      string
		file      string
		contents  string
		wantField string
		wantParse bool
	}{
		{
			name:      "unsupported extension",
			file:      "themes.json",
			contents:  "{}",
			wantField: "theme.file",
		},
		{
			name:      "missing themes key",
			file:      "themes.yaml",
			contents:  "palettes: {}\n",
			wantField: "themes",
		},
		{
			name:      "themes not a mapping",
			file:      "themes.yaml",
			contents:  "themes: [light, dark]\n",
			wantField: "themes",
		},
		{
			name:      "color of wrong kind",
			file:      "themes.yaml",
			contents:  "themes:\n  brand:\n    colors:\n      primary: 12\n",
			wantField: "themes.brand.colors.primary",
		},
		{
			name:      "spacing of wrong kind",
			file:      "themes.toml",
			contents:  "[themes.brand.spacing]\nsmall = \"tiny\"\n",
			wantField: "themes.brand.spacing.small",
		},
		{
			name:      "theme entry not a mapping",
			file:      "themes.yaml",
			contents:  "themes:\n  brand: 3\n",
			wantField: "themes.brand",
		},
		{
			name:      "blank theme name",
			file:      "themes.yaml",
			contents:  "themes:\n  \"  \":\n    colors:\n      primary: \"#000\"\n",
			wantField: "themes",
		},
		{
			name:      "yaml syntax error",
			file:      "themes.yaml",
			contents:  "themes:\n  brand:\n    colors: [\n",
			wantParse: true,
		},
		{
			name:      "toml syntax error",
			file:      "themes.toml",
			contents:  "[themes.brand\nprimary = 1\n",
			wantParse: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tc.file, tc.contents)
			_, err := LoadThemes(path)
			require.Error(t, err)

			if tc.wantParse {
				var perr *apperrors.ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, path, perr.Path)
				assert.Positive(t, perr.Line)
				return
			}

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestLoadThemesMissingFile(t *testing.T) {
	_, err := LoadThemes("/nonexistent/themes.yaml")
	var perr *apperrors.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseThemesAcceptsNumericThemeNames(t *testing.T) {
	data := []byte("themes:\n  2024:\n    colors:\n      primary: \"#202420\"\n  brand:\n    colors:\n      primary: \"#111111\"\n")

	overrides, err := ParseThemes("themes.yaml", FormatYAML, data)
	require.NoError(t, err)

	require.Contains(t, overrides, theme.Name("2024"))
	require.NotNil(t, overrides["2024"].Colors.Primary)
	assert.Equal(t, "#202420", *overrides["2024"].Colors.Primary)
	assert.Equal(t, []theme.Name{"2024", "brand"}, overrides.Names())
}
