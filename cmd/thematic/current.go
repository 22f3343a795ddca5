package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active theme name",
		Args:  cobra.NoArgs,
		RunE:  runCurrent,
	}
}

func runCurrent(cmd *cobra.Command, _ []string) error {
	ctx, app, err := newAppContext(cmd, "read current theme")
	if err != nil {
		return err
	}
	defer app.Close()

	_, s, err := app.OpenStore(ctx)
	if err != nil {
		return newCommandError("read current theme", "waiting for the stored preference", err, "")
	}
	defer s.Close(context.WithoutCancel(ctx))

	fmt.Fprintln(cmd.OutOrStdout(), s.Current().ThemeName)
	return nil
}
