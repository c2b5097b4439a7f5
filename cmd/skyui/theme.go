package main

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/skyui/internal/design"
	"github.com/alexisbeaulieu97/skyui/pkg/diff"
)

type themeOptions struct {
	yamlOutput bool
	diffMode   string
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List the tokens, aliases, macros and breakpoints of the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Print the theme as YAML")
	cmd.Flags().StringVar(&opts.diffMode, "diff", "", "Compare the active theme against a built-in mode (light or dark)")

	return cmd
}

type themePayload struct {
	Name        string              `yaml:"name"`
	Tokens      design.Tokens       `yaml:"tokens"`
	Aliases     map[string][]string `yaml:"aliases"`
	Macros      []design.Macro      `yaml:"macros"`
	Breakpoints map[string]float64  `yaml:"breakpoints"`
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, opts *themeOptions) error {
	app, err := newAppContext(cmd, rootFlags, "theme")
	if err != nil {
		return err
	}

	theme, ok := design.FromContext(app.Context(cmd))
	if !ok {
		return newCommandError("theme", "loading theme", fmt.Errorf("no theme available"), "Check the theme section of your configuration.")
	}

	payload := newThemePayload(theme)

	if opts.diffMode != "" {
		return runThemeDiff(cmd, app, payload, opts.diffMode)
	}

	if opts.yamlOutput {
		data, err := encodeYAML(payload)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	renderThemeTable(cmd.OutOrStdout(), payload)
	return nil
}

func newThemePayload(theme *design.Theme) themePayload {
	cfg := theme.Config()
	return themePayload{
		Name:        theme.Name(),
		Tokens:      cfg.Tokens,
		Aliases:     cfg.Properties,
		Macros:      design.KnownMacros(),
		Breakpoints: cfg.Breakpoints,
	}
}

func runThemeDiff(cmd *cobra.Command, app *AppContext, active themePayload, against string) error {
	mode, err := design.ParseMode(against)
	if err != nil {
		return newCommandError("theme", "validating flags", err, "Pass --diff light or --diff dark.")
	}
	base, err := design.ForMode(mode)
	if err != nil {
		return err
	}

	// Names always differ; compare content only.
	basePayload := newThemePayload(base)
	basePayload.Name = active.Name

	before, err := encodeYAML(basePayload)
	if err != nil {
		return err
	}
	after, err := encodeYAML(active)
	if err != nil {
		return err
	}

	out := diff.Unified(before, after, base.Name(), active.Name)
	app.Logger.With("changed", len(diff.Changed(out))).Debug("theme diff computed")
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are identical\n", base.Name(), active.Name)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderThemeTable(w io.Writer, payload themePayload) {
	heading := lipgloss.NewStyle().Bold(true)

	fmt.Fprintf(w, "Theme: %s\n", payload.Name)

	categories := make([]string, 0, len(payload.Tokens))
	for category := range payload.Tokens {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	fmt.Fprintln(w, heading.Render("\nTokens:"))
	for _, category := range categories {
		values := payload.Tokens[design.Category(category)]
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value := fmt.Sprint(values[key])
			if design.Category(category) == design.CategoryColor {
				value = lipgloss.NewStyle().Foreground(lipgloss.Color(value)).Render("■") + " " + value
			}
			fmt.Fprintf(w, "  $%s.%s  %s\n", category, key, value)
		}
	}

	fmt.Fprintln(w, heading.Render("\nAliases:"))
	aliases := make([]string, 0, len(payload.Aliases))
	for alias := range payload.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		fmt.Fprintf(w, "  %-7s %s\n", alias, strings.Join(payload.Aliases[alias], ", "))
	}

	macros := make([]string, 0, len(payload.Macros))
	for _, m := range payload.Macros {
		macros = append(macros, string(m))
	}
	fmt.Fprintln(w, heading.Render("\nMacros:"))
	fmt.Fprintf(w, "  %s\n", strings.Join(macros, " "))

	fmt.Fprintln(w, heading.Render("\nBreakpoints:"))
	names := make([]string, 0, len(payload.Breakpoints))
	for name := range payload.Breakpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s ≥ %v\n", name, payload.Breakpoints[name])
	}
}
