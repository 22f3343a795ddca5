// Package config loads thematic's application settings and custom theme
// files.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. THEMATIC_STORAGE_BACKEND.
const EnvPrefix = "THEMATIC"

const appDir = "thematic"

// Setting keys.
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyThemeInitial   = "theme.initial"
	KeyThemeFile      = "theme.file"
)

// Settings is the resolved application configuration.
type Settings struct {
	Log     LogSettings     `mapstructure:"log"`
	Storage StorageSettings `mapstructure:"storage"`
	Theme   ThemeSettings   `mapstructure:"theme"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// LogSettings selects log verbosity and output format.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// StorageSettings selects the preferences backend.
type StorageSettings struct {
	Backend string `mapstructure:"backend" validate:"oneof=memory file sqlite"`
	Path    string `mapstructure:"path" validate:"required_unless=Backend memory"`
}

// ThemeSettings holds theme-related defaults.
type ThemeSettings struct {
	// Initial, when set, is used instead of the persisted name.
	Initial string `mapstructure:"initial"`
	// File points at a YAML or TOML custom themes document.
	File string `mapstructure:"file"`
}

// Loader layers defaults, a config file, THEMATIC_* environment variables
// and bound flags, in increasing precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment lookups in place.
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyStorageBackend, "file")
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyThemeInitial, "")
	v.SetDefault(KeyThemeFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// BindFlags binds the named flags to their setting keys. Flags that are
// missing from flags are skipped.
func (l *Loader) BindFlags(flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// Load reads path, or the first config file found in the search paths when
// path is empty, and returns validated settings. A missing optional config
// file is not an error.
func (l *Loader) Load(path string) (Settings, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("config")
		for _, dir := range searchPaths() {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && errors.As(err, &notFound):
		case os.IsNotExist(err):
			return Settings{}, apperrors.NewParseError(path, 0, err)
		default:
			return Settings{}, apperrors.NewParseError(l.v.ConfigFileUsed(), extractLine(err), err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, apperrors.NewParseError(l.v.ConfigFileUsed(), 0, err)
	}
	s.ConfigFile = l.v.ConfigFileUsed()
	s.normalize()

	if err := ValidateSettings(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ValidateSettings checks field values.
func ValidateSettings(s Settings) error {
	return convertValidationError(validatorInstance().Struct(s))
}

func (s *Settings) normalize() {
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.Storage.Backend = strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	s.Theme.Initial = strings.TrimSpace(s.Theme.Initial)
	if s.Storage.Path == "" {
		s.Storage.Path = DefaultStoragePath(s.Storage.Backend)
	}
	s.Storage.Path = expandHome(s.Storage.Path)
	s.Theme.File = expandHome(s.Theme.File)
}

// DefaultStoragePath returns where a backend keeps preferences when no path
// is configured: a file under the user config directory.
func DefaultStoragePath(backend string) string {
	var name string
	switch backend {
	case "file":
		name = "preferences.json"
	case "sqlite":
		name = "preferences.db"
	default:
		return ""
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join("."+appDir, name)
	}
	return filepath.Join(dir, appDir, name)
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, appDir))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", appDir))
	}
	return out
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
