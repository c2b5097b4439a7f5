package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skyui/internal/embed"
)

type embedOptions struct {
	tree bool
}

func newEmbedCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &embedOptions{}

	cmd := &cobra.Command{
		Use:   "embed <payload.json>",
		Short: "Render a post embed payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Print the render tree instead of drawing it")

	return cmd
}

func runEmbed(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *embedOptions) error {
	if err := validateInputPath(path); err != nil {
		return newCommandError("embed", "reading payload", err, "Provide the path to an embed JSON payload.")
	}

	app, err := newAppContext(cmd, rootFlags, "embed")
	if err != nil {
		return err
	}

	payload, err := embed.Load(path)
	if err != nil {
		return newCommandError("embed", "decoding payload", err, "The payload must be a JSON object with a $type field.")
	}

	renderer, err := embed.NewRenderer(app.Theme, app.Viewport)
	if err != nil {
		return newCommandError("embed", "resolving embed styles", err, "Check the theme section of your configuration.")
	}

	tree := renderer.Render(payload)
	log := app.Logger.WithFields(map[string]any{"type": payload.Type(), "images": tree.Count(embed.KindImage)})
	if tree.IsEmpty() {
		log.Warn("embed has nothing to render")
	} else {
		log.Debug("embed rendered")
	}

	if opts.tree {
		writeTree(cmd.OutOrStdout(), tree, 0)
		return nil
	}

	if out := embed.Draw(tree, app.Columns, app.Config.CellWidth); out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func writeTree(w io.Writer, n embed.Node, depth int) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind.String())
	if n.Role != "" {
		fmt.Fprintf(&b, " %s", n.Role)
	}
	if n.URI != "" {
		fmt.Fprintf(&b, " uri=%s", n.URI)
	}
	if n.Text != "" {
		fmt.Fprintf(&b, " text=%q", n.Text)
	}
	if len(n.Style) > 0 {
		pairs := make([]string, 0, len(n.Style))
		for _, key := range n.Style.Keys() {
			pairs = append(pairs, fmt.Sprintf("%s:%v", key, n.Style[key]))
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(pairs, " "))
	}
	fmt.Fprintln(w, b.String())

	for _, child := range n.Children {
		writeTree(w, child, depth+1)
	}
}
