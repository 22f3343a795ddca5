package theme

// Name identifies a theme. Light and Dark are backed by built-in entries; any
// other value is a fully custom theme name.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// String returns the string form of the name.
func (n Name) String() string {
	return string(n)
}

// ColorKey enumerates the required semantic color slots.
type ColorKey string

const (
	ColorPrimary    ColorKey = "primary"
	ColorSecondary  ColorKey = "secondary"
	ColorBackground ColorKey = "background"
	ColorText       ColorKey = "text"
	ColorBorder     ColorKey = "border"
	ColorAccent     ColorKey = "accent"
)

// TypographyKey enumerates the required font size slots.
type TypographyKey string

const (
	TypographyHeading    TypographyKey = "heading"
	TypographySubheading TypographyKey = "subheading"
	TypographyBody       TypographyKey = "body"
	TypographyCaption    TypographyKey = "caption"
)

// SpacingKey enumerates the required spacing slots.
type SpacingKey string

const (
	SpacingSmall  SpacingKey = "small"
	SpacingMedium SpacingKey = "medium"
	SpacingLarge  SpacingKey = "large"
)

var (
	colorKeys      = []ColorKey{ColorPrimary, ColorSecondary, ColorBackground, ColorText, ColorBorder, ColorAccent}
	typographyKeys = []TypographyKey{TypographyHeading, TypographySubheading, TypographyBody, TypographyCaption}
	spacingKeys    = []SpacingKey{SpacingSmall, SpacingMedium, SpacingLarge}
)

// ColorKeys returns the required color keys in declaration order.
func ColorKeys() []ColorKey { return append([]ColorKey(nil), colorKeys...) }

// TypographyKeys returns the required typography keys in declaration order.
func TypographyKeys() []TypographyKey { return append([]TypographyKey(nil), typographyKeys...) }

// SpacingKeys returns the required spacing keys in declaration order.
func SpacingKeys() []SpacingKey { return append([]SpacingKey(nil), spacingKeys...) }

// Colors maps semantic color slots to color strings. Extra carries
// additional, non-required color tokens.
type Colors struct {
	Primary    string `validate:"required"`
	Secondary  string `validate:"required"`
	Background string `validate:"required"`
	Text       string `validate:"required"`
	Border     string `validate:"required"`
	Accent     string `validate:"required"`
	Extra      map[string]string
}

// Get returns the color stored under key, checking required slots before Extra.
func (c Colors) Get(key ColorKey) (string, bool) {
	if p := c.slot(key); p != nil {
		return *p, *p != ""
	}
	v, ok := c.Extra[string(key)]
	return v, ok
}

func (c *Colors) slot(key ColorKey) *string {
	switch key {
	case ColorPrimary:
		return &c.Primary
	case ColorSecondary:
		return &c.Secondary
	case ColorBackground:
		return &c.Background
	case ColorText:
		return &c.Text
	case ColorBorder:
		return &c.Border
	case ColorAccent:
		return &c.Accent
	default:
		return nil
	}
}

// Typography maps semantic text variants to point sizes.
type Typography struct {
	Heading    float64 `validate:"required"`
	Subheading float64 `validate:"required"`
	Body       float64 `validate:"required"`
	Caption    float64 `validate:"required"`
	Extra      map[string]float64
}

// Get returns the size stored under key, checking required slots before Extra.
func (t Typography) Get(key TypographyKey) (float64, bool) {
	if p := t.slot(key); p != nil {
		return *p, *p != 0
	}
	v, ok := t.Extra[string(key)]
	return v, ok
}

func (t *Typography) slot(key TypographyKey) *float64 {
	switch key {
	case TypographyHeading:
		return &t.Heading
	case TypographySubheading:
		return &t.Subheading
	case TypographyBody:
		return &t.Body
	case TypographyCaption:
		return &t.Caption
	default:
		return nil
	}
}

// Spacing maps semantic spacing slots to numeric units.
type Spacing struct {
	Small  float64 `validate:"required"`
	Medium float64 `validate:"required"`
	Large  float64 `validate:"required"`
	Extra  map[string]float64
}

// Get returns the spacing stored under key, checking required slots before Extra.
func (s Spacing) Get(key SpacingKey) (float64, bool) {
	if p := s.slot(key); p != nil {
		return *p, *p != 0
	}
	v, ok := s.Extra[string(key)]
	return v, ok
}

func (s *Spacing) slot(key SpacingKey) *float64 {
	switch key {
	case SpacingSmall:
		return &s.Small
	case SpacingMedium:
		return &s.Medium
	case SpacingLarge:
		return &s.Large
	default:
		return nil
	}
}

// Theme is a complete Token Set. Extensions holds free-form additional tokens
// (border radii, shadows, ...); it is the only place nested maps and slices
// may appear.
type Theme struct {
	Colors     Colors
	Typography Typography
	Spacing    Spacing
	Extensions map[string]any
}

// Clone returns a deep copy of the theme. Values handed out by the registry,
// resolver and store are always clones.
func (t Theme) Clone() Theme {
	t.Colors.Extra = cloneStringMap(t.Colors.Extra)
	t.Typography.Extra = cloneFloatMap(t.Typography.Extra)
	t.Spacing.Extra = cloneFloatMap(t.Spacing.Extra)
	if t.Extensions != nil {
		t.Extensions = cloneValue(t.Extensions).(map[string]any)
	}
	return t
}

// ToMap flattens the theme into a generic document using the token names
// (colors.primary, typography.subheading, ...). Extra keys sit beside the
// required ones, extensions at the top level.
func (t Theme) ToMap() map[string]any {
	colors := make(map[string]any, len(colorKeys)+len(t.Colors.Extra))
	for k, v := range t.Colors.Extra {
		colors[k] = v
	}
	for _, key := range colorKeys {
		colors[string(key)] = *t.Colors.slot(key)
	}

	typography := make(map[string]any, len(typographyKeys)+len(t.Typography.Extra))
	for k, v := range t.Typography.Extra {
		typography[k] = v
	}
	for _, key := range typographyKeys {
		typography[string(key)] = *t.Typography.slot(key)
	}

	spacing := make(map[string]any, len(spacingKeys)+len(t.Spacing.Extra))
	for k, v := range t.Spacing.Extra {
		spacing[k] = v
	}
	for _, key := range spacingKeys {
		spacing[string(key)] = *t.Spacing.slot(key)
	}

	out := make(map[string]any, len(t.Extensions)+3)
	for k, v := range t.Extensions {
		out[k] = cloneValue(v)
	}
	out[categoryColors] = colors
	out[categoryTypography] = typography
	out[categorySpacing] = spacing
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneFloatMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, inner := range typed {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, inner := range typed {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
