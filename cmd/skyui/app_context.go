package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/skyui/internal/config"
	"github.com/alexisbeaulieu97/skyui/internal/design"
	"github.com/alexisbeaulieu97/skyui/internal/logger"
)

const defaultColumns = 80

// AppContext bundles the services a command needs, built once per invocation.
type AppContext struct {
	Config *config.Config
	Theme  *design.Theme
	Logger *logger.Logger

	// Columns is the terminal width available for drawing.
	Columns int
	// Viewport is the width in style pixels used for breakpoint gating.
	Viewport float64
}

// Context returns the command context with the theme attached.
func (a *AppContext) Context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return design.WithTheme(ctx, a.Theme)
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, component string) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(component, "loading configuration", err, "Check the file passed with --config or remove it to use defaults.")
	}

	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.cellWidth > 0 {
		cfg.CellWidth = flags.cellWidth
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.humanLogs {
		cfg.Log.Human = true
	}
	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError(component, "validating flags", err, "Use --mode light or --mode dark.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
	if err != nil {
		return nil, newCommandError(component, "creating logger", err, "Set log.level to one of trace, debug, info, warn or error.")
	}

	theme, err := cfg.BuildTheme()
	if err != nil {
		return nil, newCommandError(component, "building theme", err, "Check the theme section of your configuration.")
	}

	columns := terminalColumns(cmd.OutOrStdout())
	viewport := flags.width
	if viewport <= 0 {
		viewport = float64(columns * cfg.CellWidth)
	} else {
		columns = design.Cells(viewport, cfg.CellWidth)
	}

	log.WithFields(map[string]any{
		"theme":    theme.Name(),
		"columns":  columns,
		"viewport": viewport,
	}).Debug("application context ready")

	return &AppContext{
		Config:   cfg,
		Theme:    theme,
		Logger:   log,
		Columns:  columns,
		Viewport: viewport,
	}, nil
}

func terminalColumns(out io.Writer) int {
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultColumns
}
