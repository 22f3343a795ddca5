package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

func newSetCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Select and persist a theme",
		Long: `Select a theme and persist the choice. Unknown names are stored as
given and render with the light theme unless --strict is set, which also
rejects custom themes that leave required tokens unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, theme.Name(args[0]), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject unknown names and themes with missing tokens")
	return cmd
}

func runSet(cmd *cobra.Command, name theme.Name, strict bool) error {
	ctx, app, err := newAppContext(cmd, "set theme")
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.Resolver.Known(name, app.Themes.Overrides) {
		if strict {
			return newCommandError("set theme", fmt.Sprintf("theme %q", name), errors.New("unknown theme"), "Run 'thematic list' to see available themes.")
		}
		app.Logger.Warn(ctx, "unknown theme name, light will be used for rendering", "theme", name)
	}
	if strict {
		if err := theme.Validate(app.Resolver.Resolve(ctx, name, app.Themes.Overrides)); err != nil {
			return newCommandError("set theme", fmt.Sprintf("theme %q is incomplete", name), err, "Define every required token in the themes file.")
		}
	}

	_, s, err := app.OpenStore(ctx)
	if err != nil {
		return newCommandError("set theme", "waiting for the stored preference", err, "")
	}

	previous := s.Current().ThemeName
	s.SetThemeName(name)

	// Close waits for the queued write.
	if err := s.Close(context.WithoutCancel(ctx)); err != nil {
		return newCommandError("set theme", "flushing the preference", err, "")
	}

	if previous == name {
		fmt.Fprintf(cmd.OutOrStdout(), "Theme %s is already active\n", name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s (was %s)\n", name, previous)
	return nil
}
