package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Long:  "List built-in and custom themes. The active theme is marked.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx, app, err := newAppContext(cmd, "list themes")
	if err != nil {
		return err
	}
	defer app.Close()

	active := app.Preferences.LoadThemeName(ctx)
	if app.Settings.Theme.Initial != "" {
		active = theme.Name(app.Settings.Theme.Initial)
	}

	marker := "*"
	if supportsUnicode(cmd) {
		marker = "●"
	}

	registry := app.Resolver.Registry()
	out := cmd.OutOrStdout()
	for _, name := range app.Names() {
		prefix := " "
		if name == active {
			prefix = marker
		}
		fmt.Fprintf(out, "%s %s (%s)\n", prefix, name, describeSource(registry.Has(name), app.Themes.Overrides, name))
	}
	return nil
}

func describeSource(builtIn bool, overrides theme.Overrides, name theme.Name) string {
	_, custom := overrides[name]
	switch {
	case builtIn && custom:
		return "built-in, customized"
	case builtIn:
		return "built-in"
	default:
		return "custom"
	}
}

func supportsUnicode(cmd *cobra.Command) bool {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
