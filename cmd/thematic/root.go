package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/thematic/internal/config"
)

type rootFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	storage     string
	storagePath string
	themesFile  string
}

// flagBindings maps setting keys to the persistent flags that override them.
var flagBindings = map[string]string{
	config.KeyLogLevel:       "log-level",
	config.KeyLogFormat:      "log-format",
	config.KeyStorageBackend: "storage",
	config.KeyStoragePath:    "storage-path",
	config.KeyThemeFile:      "themes-file",
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "thematic",
		Short:         "Thematic resolves, persists and previews application themes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/thematic/config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&flags.storage, "storage", "file", "Preferences backend: memory, file or sqlite")
	pf.StringVar(&flags.storagePath, "storage-path", "", "Preferences file or database path")
	pf.StringVar(&flags.themesFile, "themes-file", "", "YAML or TOML file with custom themes")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
