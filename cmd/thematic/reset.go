package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted theme",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx, app, err := newAppContext(cmd, "reset theme")
	if err != nil {
		return err
	}
	defer app.Close()

	app.Preferences.Clear(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "Theme preference cleared; %s will be used\n", theme.FallbackName)
	return nil
}
