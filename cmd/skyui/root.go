package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	humanLogs  bool
	mode       string
	width      float64
	cellWidth  int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "skyui",
		Short:         "skyui resolves design-system styles and renders post embeds in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to skyui.yaml (defaults to ./skyui.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.humanLogs, "human-logs", false, "Write logs in console format instead of JSON")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Theme mode: light or dark (overrides config)")
	cmd.PersistentFlags().Float64Var(&flags.width, "width", 0, "Viewport width in style pixels (defaults to terminal width)")
	cmd.PersistentFlags().IntVar(&flags.cellWidth, "cell-width", 0, "Style pixels per terminal column (overrides config)")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newEmbedCmd(flags))
	cmd.AddCommand(newLightboxCmd(flags))
	cmd.AddCommand(newLinkCardCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
