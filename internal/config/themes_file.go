package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

// Format names a custom themes document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

const themesKey = "themes"

// ThemeFile is the parsed form of a custom themes document.
type ThemeFile struct {
	Path      string
	Overrides theme.Overrides `validate:"dive,keys,theme_name,endkeys"`
}

// Names returns the theme names defined by the file, sorted.
func (f ThemeFile) Names() []theme.Name {
	return f.Overrides.Names()
}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", apperrors.NewValidationError("theme.file", fmt.Sprintf("unsupported theme file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path)), nil)
	}
}

// LoadThemes reads a custom themes document from disk.
//
//	themes:
//	  light:
//	    colors:
//	      primary: "#abc"
//	  brand:
//	    colors: {...}
//	    typography: {...}
//	    spacing: {...}
func LoadThemes(path string) (ThemeFile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return ThemeFile{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ThemeFile{}, apperrors.NewParseError(path, 0, err)
	}

	overrides, err := ParseThemes(path, format, data)
	if err != nil {
		return ThemeFile{}, err
	}
	return ThemeFile{Path: path, Overrides: overrides}, nil
}

// ParseThemes decodes data in the given format. path is only used in errors.
func ParseThemes(path string, format Format, data []byte) (theme.Overrides, error) {
	doc, err := decodeDocument(path, format, data)
	if err != nil {
		return nil, err
	}

	raw, ok := doc[themesKey]
	if !ok {
		return nil, apperrors.NewValidationError(themesKey, "document must contain a top-level themes mapping", nil)
	}
	entries, ok := stringKeyed(raw)
	if !ok {
		return nil, apperrors.NewValidationError(themesKey, fmt.Sprintf("must be a mapping, got %T", raw), nil)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	overrides := make(theme.Overrides, len(entries))
	for _, name := range names {
		field := themesKey + "." + name
		fields, ok := stringKeyed(entries[name])
		if !ok && entries[name] != nil {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("must be a mapping, got %T", entries[name]), nil)
		}
		override, err := theme.OverrideFromMap(field, fields)
		if err != nil {
			return nil, err
		}
		overrides[theme.Name(name)] = override
	}

	if err := validatorInstance().Struct(ThemeFile{Path: path, Overrides: overrides}); err != nil {
		return nil, apperrors.NewValidationError(themesKey, "theme names must not be blank", err)
	}
	return overrides, nil
}

func decodeDocument(path string, format Format, data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, apperrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", format), nil)
	}
	return doc, nil
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return extractLine(err)
}

// stringKeyed accepts the map shapes the decoders produce. yaml.v3 yields
// map[any]any when a mapping has non-string keys such as `2024:`.
func stringKeyed(raw any) (map[string]any, bool) {
	switch typed := raw.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}
