package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skyui/internal/embed"
	"github.com/alexisbeaulieu97/skyui/internal/linkmeta"
)

type linkCardOptions struct {
	jsonOutput bool
	offline    bool
}

func newLinkCardCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &linkCardOptions{}

	cmd := &cobra.Command{
		Use:   "linkcard <url>",
		Short: "Fetch a page's preview metadata and draw it as a link card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinkCard(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the metadata and embed payload as JSON")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the network and draw a card from the URL alone")

	return cmd
}

func runLinkCard(cmd *cobra.Command, rootFlags *rootFlags, rawURL string, opts *linkCardOptions) error {
	if !isURL(rawURL) {
		return newCommandError("linkcard", "reading arguments", fmt.Errorf("%q is not an http(s) URL", rawURL), "Pass an absolute http or https URL.")
	}

	app, err := newAppContext(cmd, rootFlags, "linkcard")
	if err != nil {
		return err
	}

	meta := linkmeta.Meta{URL: rawURL, Type: linkmeta.GuessType(rawURL)}
	if !opts.offline {
		fetchOpts := app.Config.FetcherOptions()
		fetchOpts.Logger = app.Logger
		meta, err = linkmeta.NewFetcher(fetchOpts).Fetch(app.Context(cmd), rawURL)
		if err != nil {
			app.Logger.With("url", rawURL).Error(err, "link metadata unavailable")
			return newCommandError("linkcard", "fetching link metadata", err, "Retry with --offline to draw a card without metadata.")
		}
	}

	link := meta.Embed()
	if opts.jsonOutput {
		payload, err := embed.Encode(link)
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Meta  linkmeta.Meta   `json:"meta"`
			Embed json.RawMessage `json:"embed"`
		}{Meta: meta, Embed: payload})
	}

	renderer, err := embed.NewRenderer(app.Theme, app.Viewport)
	if err != nil {
		return newCommandError("linkcard", "resolving embed styles", err, "Check the theme section of your configuration.")
	}
	fmt.Fprintln(cmd.OutOrStdout(), embed.Draw(renderer.Render(link), app.Columns, app.Config.CellWidth))
	return nil
}
