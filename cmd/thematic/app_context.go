package main

import (
	"context"
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/thematic/internal/config"
	"github.com/alexisbeaulieu97/thematic/internal/infrastructure/kvstore"
	"github.com/alexisbeaulieu97/thematic/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/thematic/internal/logger"
	"github.com/alexisbeaulieu97/thematic/internal/ports"
	"github.com/alexisbeaulieu97/thematic/internal/preferences"
	"github.com/alexisbeaulieu97/thematic/internal/store"
	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Settings    config.Settings
	Logger      ports.Logger
	Output      ports.Logger
	KV          kvstore.Store
	Preferences *preferences.Adapter
	Resolver    *theme.Resolver
	Themes      config.ThemeFile

	logs *logging.Deferred
}

// newAppContext loads settings, opens the preferences backend and reads the
// custom themes file. Log entries written before the output logger exists
// are held and replayed once it does.
func newAppContext(cmd *cobra.Command, op string) (context.Context, *AppContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logs := logging.NewDeferred(0)
	log := logs.Logger().With("command", op)

	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags(), flagBindings); err != nil {
		return nil, nil, newCommandError(op, "binding flags", err, "")
	}
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := loader.Load(configPath)
	if err != nil {
		return nil, nil, newCommandError(op, "loading configuration", err, "Check the config file and THEMATIC_* environment variables.")
	}
	log.Debug(ctx, "configuration loaded",
		"config_file", settings.ConfigFile,
		"backend", settings.Storage.Backend,
		"path", settings.Storage.Path,
	)

	output, err := newOutputLogger(cmd, settings.Log)
	if err != nil {
		return nil, nil, newCommandError(op, "creating logger", err, "")
	}

	app := &AppContext{
		Settings: settings,
		Logger:   log,
		Output:   output,
		logs:     logs,
	}
	app.Resolver = theme.NewResolver(nil, log.With("component", "resolver"))

	if settings.Theme.File != "" {
		file, err := config.LoadThemes(settings.Theme.File)
		if err != nil {
			logs.Release(output)
			return nil, nil, newCommandError(op, "loading custom themes", err, "Fix the themes file or unset theme.file.")
		}
		app.Themes = file
		log.Debug(ctx, "custom themes loaded", "path", file.Path, "count", len(file.Overrides))
	}

	kv, err := kvstore.Open(ctx, kvstore.Options{
		Backend: kvstore.Backend(settings.Storage.Backend),
		Path:    settings.Storage.Path,
	})
	if err != nil {
		logs.Release(output)
		return nil, nil, newCommandError(op, "opening preferences storage", err, "Check --storage and --storage-path.")
	}
	app.KV = kv
	app.Preferences = preferences.NewAdapter(kv, log.With("component", "preferences", "backend", settings.Storage.Backend))

	logs.Release(output)
	return ctx, app, nil
}

func newOutputLogger(cmd *cobra.Command, settings config.LogSettings) (ports.Logger, error) {
	if settings.Format == "json" {
		return logger.New(logger.Options{Level: settings.Level, Writer: cmd.ErrOrStderr()})
	}
	return logging.New(logging.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  settings.Level,
		Prefix: "thematic",
	})
}

// Close releases the preferences backend.
func (a *AppContext) Close() error {
	if a == nil || a.KV == nil {
		return nil
	}
	return a.KV.Close()
}

// HoldLogs buffers log output until ReleaseLogs, e.g. while a full-screen
// program owns the terminal.
func (a *AppContext) HoldLogs() {
	a.logs.Hold()
}

// ReleaseLogs flushes held log output.
func (a *AppContext) ReleaseLogs() {
	a.logs.Release(a.Output)
}

// StoreOptions describes a store over the app's preferences and themes.
func (a *AppContext) StoreOptions() store.Options {
	return store.Options{
		CustomThemes:     a.Themes.Overrides,
		InitialThemeName: theme.Name(a.Settings.Theme.Initial),
		Preferences:      a.Preferences,
		Resolver:         a.Resolver,
		Logger:           a.Logger,
	}
}

// Provide creates and activates a store scoped to ctx.
func (a *AppContext) Provide(ctx context.Context) (context.Context, *store.Store) {
	return store.Provide(ctx, a.StoreOptions())
}

// OpenStore provides a store and waits until it is Active.
func (a *AppContext) OpenStore(ctx context.Context) (context.Context, *store.Store, error) {
	ctx, s := a.Provide(ctx)
	select {
	case <-s.Ready():
		return ctx, s, nil
	case <-ctx.Done():
		return ctx, s, errors.Join(ctx.Err(), s.Close(context.WithoutCancel(ctx)))
	}
}

// Names lists built-in themes first, then custom-only themes, each sorted.
func (a *AppContext) Names() []theme.Name {
	registry := a.Resolver.Registry()
	names := registry.Names()

	var custom []theme.Name
	for _, name := range a.Themes.Names() {
		if !registry.Has(name) {
			custom = append(custom, name)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })
	return append(names, custom...)
}
