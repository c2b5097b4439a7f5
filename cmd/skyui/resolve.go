package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

type resolveOptions struct {
	format string
	sample string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <directives.yaml>",
		Short: "Resolve a style directive document against the active theme",
		Long: `Resolve reads a YAML sequence of style directives, for example

  - pa: $space.s
  - jcb: true
  - mt: 20
    bp: gtPhone

and prints the resulting property map for the current theme and viewport width.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, yaml or preview")
	cmd.Flags().StringVar(&opts.sample, "sample", "The quick brown fox", "Text drawn by the preview format")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *resolveOptions) error {
	if err := validateFormat(opts.format, "json", "yaml", "preview"); err != nil {
		return newCommandError("resolve", "validating flags", err, "Pass --format json, yaml or preview.")
	}
	if err := validateInputPath(path); err != nil {
		return newCommandError("resolve", "reading directives", err, "Provide the path to a YAML directive document.")
	}

	app, err := newAppContext(cmd, rootFlags, "resolve")
	if err != nil {
		return err
	}

	directives, err := design.LoadDirectives(path)
	if err != nil {
		return newCommandError("resolve", "parsing directives", err, "Each entry must be a single-key map, optionally with a bp key.")
	}

	style, err := app.Theme.Resolve(app.Viewport, directives...)
	if err != nil {
		app.Logger.Error(err, "directive resolution failed")
		return newCommandError("resolve", fmt.Sprintf("resolving %s", path), err, resolveSuggestion(err))
	}

	app.Logger.WithFields(map[string]any{
		"directives": len(directives),
		"properties": len(style),
	}).Debug("resolved style")

	out := cmd.OutOrStdout()
	switch opts.format {
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(map[string]any(style)); err != nil {
			return err
		}
		return encoder.Close()
	case "preview":
		fmt.Fprintln(out, style.Lipgloss(app.Config.CellWidth).Render(opts.sample))
		return nil
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(style)
	}
}

func resolveSuggestion(err error) string {
	var (
		alias      *design.UnknownAliasError
		macro      *design.UnknownMacroError
		token      *design.UnknownTokenError
		breakpoint *design.UnknownBreakpointError
		trigger    *design.InvalidTriggerError
	)
	switch {
	case errors.As(err, &alias):
		if alias.OrMacro {
			return "Run 'skyui theme' to list the available aliases and macros."
		}
		return "Run 'skyui theme' to list the available aliases."
	case errors.As(err, &macro):
		return "Run 'skyui theme' to list the available macros."
	case errors.As(err, &token):
		return "Run 'skyui theme' to list the tokens of the active theme."
	case errors.As(err, &breakpoint):
		return "Declare the breakpoint under theme.breakpoints in skyui.yaml."
	case errors.As(err, &trigger):
		return "Boolean macros take true or false; font takes sans or mono."
	default:
		return "Check the directive document."
	}
}
