package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/thematic/internal/tui"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func newPreviewCmd() *cobra.Command {
	var altScreen bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse themes interactively",
		Long: `Open an interactive picker with a live preview of each theme.
Pressing enter applies and persists the highlighted theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, altScreen)
		},
	}

	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "Use the terminal's alternate screen")
	return cmd
}

func runPreview(cmd *cobra.Command, altScreen bool) error {
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if !inOK || !outOK || !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return newCommandError("preview themes", "no interactive terminal", errNotTerminal, "Use 'thematic list' and 'thematic show' in scripts.")
	}

	ctx, app, err := newAppContext(cmd, "preview themes")
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, s := app.Provide(ctx)
	defer s.Close(context.WithoutCancel(ctx))

	opts := []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	app.HoldLogs()
	final, err := tui.Run(ctx, s, app.Names(), opts...)
	app.ReleaseLogs()
	if err != nil {
		return newCommandError("preview themes", "running the picker", err, "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Active theme: %s\n", final)
	return nil
}
