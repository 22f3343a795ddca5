package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/thematic/internal/theme"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print the resolved tokens of a theme",
		Long: `Print the fully resolved theme with custom overrides applied.
Without a name the active theme is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func runShow(cmd *cobra.Command, args []string, format string) error {
	format = strings.ToLower(format)
	if format != "yaml" && format != "json" {
		return newCommandError("show theme", "invalid output format", fmt.Errorf("unsupported format %q", format), "Use --format yaml or --format json.")
	}

	ctx, app, err := newAppContext(cmd, "show theme")
	if err != nil {
		return err
	}
	defer app.Close()

	var name theme.Name
	switch {
	case len(args) == 1:
		name = theme.Name(args[0])
	case app.Settings.Theme.Initial != "":
		name = theme.Name(app.Settings.Theme.Initial)
	default:
		name = app.Preferences.LoadThemeName(ctx)
	}

	res := app.Resolver.ResolveDetailed(ctx, name, app.Themes.Overrides)

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "theme: %s (source: %s)\n", res.Name, res.Source)
	if len(res.Missing) > 0 {
		fmt.Fprintf(errOut, "missing tokens: %s\n", strings.Join(res.Missing, ", "))
	}

	doc := res.Theme.ToMap()
	out := cmd.OutOrStdout()
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
