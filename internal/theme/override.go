package theme

import (
	"fmt"
	"sort"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

const (
	categoryColors     = "colors"
	categoryTypography = "typography"
	categorySpacing    = "spacing"
)

// ColorsOverride is a partial Colors. Nil fields are left untouched by Merge.
type ColorsOverride struct {
	Primary    *string
	Secondary  *string
	Background *string
	Text       *string
	Border     *string
	Accent     *string
	Extra      map[string]string
}

// TypographyOverride is a partial Typography.
type TypographyOverride struct {
	Heading    *float64
	Subheading *float64
	Body       *float64
	Caption    *float64
	Extra      map[string]float64
}

// SpacingOverride is a partial Spacing.
type SpacingOverride struct {
	Small  *float64
	Medium *float64
	Large  *float64
	Extra  map[string]float64
}

// Override is a partial Token Set used only as merge input.
type Override struct {
	Colors     ColorsOverride
	Typography TypographyOverride
	Spacing    SpacingOverride
	Extensions map[string]any
}

// Overrides maps theme names to the override registered for them.
type Overrides map[Name]Override

// String returns a pointer to v, for building overrides in code.
func String(v string) *string { return &v }

// Number returns a pointer to v, for building overrides in code.
func Number(v float64) *float64 { return &v }

// Clone returns a deep copy of the overrides table.
func (o Overrides) Clone() Overrides {
	if o == nil {
		return Overrides{}
	}
	out := make(Overrides, len(o))
	for name, override := range o {
		out[name] = override.Clone()
	}
	return out
}

// Names returns the names carrying an override, sorted.
func (o Overrides) Names() []Name {
	names := make([]Name, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Clone returns a deep copy of the override.
func (o Override) Clone() Override {
	o.Colors = ColorsOverride{
		Primary:    clonePtr(o.Colors.Primary),
		Secondary:  clonePtr(o.Colors.Secondary),
		Background: clonePtr(o.Colors.Background),
		Text:       clonePtr(o.Colors.Text),
		Border:     clonePtr(o.Colors.Border),
		Accent:     clonePtr(o.Colors.Accent),
		Extra:      cloneStringMap(o.Colors.Extra),
	}
	o.Typography = TypographyOverride{
		Heading:    clonePtr(o.Typography.Heading),
		Subheading: clonePtr(o.Typography.Subheading),
		Body:       clonePtr(o.Typography.Body),
		Caption:    clonePtr(o.Typography.Caption),
		Extra:      cloneFloatMap(o.Typography.Extra),
	}
	o.Spacing = SpacingOverride{
		Small:  clonePtr(o.Spacing.Small),
		Medium: clonePtr(o.Spacing.Medium),
		Large:  clonePtr(o.Spacing.Large),
		Extra:  cloneFloatMap(o.Spacing.Extra),
	}
	if o.Extensions != nil {
		o.Extensions = cloneValue(o.Extensions).(map[string]any)
	}
	return o
}

// AsTheme reads the override as a complete theme without merging. Fields the
// override does not set stay at their zero value; see Validate.
func (o Override) AsTheme() Theme {
	return Merge(Theme{}, o)
}

func (c *ColorsOverride) slot(key ColorKey) **string {
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

func (t *TypographyOverride) slot(key TypographyKey) **float64 {
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

func (s *SpacingOverride) slot(key SpacingKey) **float64 {
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

// OverrideFromMap converts a generically decoded document (YAML, TOML, JSON)
// into an Override. Known token names fill the typed fields, unknown names in
// a category go to its Extra map, and unknown top-level keys become
// extensions. path prefixes field names in returned validation errors.
func OverrideFromMap(path string, fields map[string]any) (Override, error) {
	var out Override
	for key, raw := range fields {
		switch key {
		case categoryColors:
			entries, err := asMap(joinPath(path, key), raw)
			if err != nil {
				return Override{}, err
			}
			if err := decodeColors(joinPath(path, key), entries, &out.Colors); err != nil {
				return Override{}, err
			}
		case categoryTypography:
			entries, err := asMap(joinPath(path, key), raw)
			if err != nil {
				return Override{}, err
			}
			extra, err := decodeNumbers(joinPath(path, key), entries, func(k string) **float64 {
				return out.Typography.slot(TypographyKey(k))
			})
			if err != nil {
				return Override{}, err
			}
			out.Typography.Extra = extra
		case categorySpacing:
			entries, err := asMap(joinPath(path, key), raw)
			if err != nil {
				return Override{}, err
			}
			extra, err := decodeNumbers(joinPath(path, key), entries, func(k string) **float64 {
				return out.Spacing.slot(SpacingKey(k))
			})
			if err != nil {
				return Override{}, err
			}
			out.Spacing.Extra = extra
		default:
			if out.Extensions == nil {
				out.Extensions = make(map[string]any)
			}
			out.Extensions[key] = normalizeValue(raw)
		}
	}
	return out, nil
}

func decodeColors(path string, entries map[string]any, dst *ColorsOverride) error {
	for key, raw := range entries {
		value, ok := raw.(string)
		if !ok {
			return apperrors.NewValidationError(joinPath(path, key), fmt.Sprintf("must be a string, got %T", raw), nil)
		}
		if slot := dst.slot(ColorKey(key)); slot != nil {
			*slot = String(value)
			continue
		}
		if dst.Extra == nil {
			dst.Extra = make(map[string]string)
		}
		dst.Extra[key] = value
	}
	return nil
}

func decodeNumbers(path string, entries map[string]any, slot func(string) **float64) (map[string]float64, error) {
	var extra map[string]float64
	for key, raw := range entries {
		value, ok := toFloat(raw)
		if !ok {
			return nil, apperrors.NewValidationError(joinPath(path, key), fmt.Sprintf("must be a number, got %T", raw), nil)
		}
		if target := slot(key); target != nil {
			*target = Number(value)
			continue
		}
		if extra == nil {
			extra = make(map[string]float64)
		}
		extra[key] = value
	}
	return extra, nil
}

func asMap(path string, raw any) (map[string]any, error) {
	switch typed := normalizeValue(raw).(type) {
	case map[string]any:
		return typed, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, apperrors.NewValidationError(path, fmt.Sprintf("must be a mapping, got %T", raw), nil)
	}
}

// normalizeValue rewrites decoder-specific container types into
// map[string]any and []any so merge only deals with two container kinds.
func normalizeValue(raw any) any {
	switch typed := raw.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = normalizeValue(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = normalizeValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = normalizeValue(v)
		}
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = normalizeValue(v)
		}
		return out
	default:
		return raw
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	default:
		return 0, false
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
