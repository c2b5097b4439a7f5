package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version string        `json:"version"`
	Commit  string        `json:"commit"`
	Built   string        `json:"built"`
	Modes   []design.Mode `json:"modes"`
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the skyui build and the theme modes it ships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
				Modes:   []design.Mode{design.ModeLight, design.ModeDark},
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}
			fmt.Fprintf(out, "skyui %s (%s, built %s)\n", info.Version, info.Commit, info.Built)
			fmt.Fprintf(out, "theme modes: %s, %s\n", info.Modes[0], info.Modes[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print build information as JSON")

	return cmd
}
