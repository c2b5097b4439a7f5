package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skyui/internal/embed"
	"github.com/alexisbeaulieu97/skyui/internal/lightbox"
	"github.com/alexisbeaulieu97/skyui/internal/logger"
)

type lightboxOptions struct {
	index int
}

func newLightboxCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lightboxOptions{}

	cmd := &cobra.Command{
		Use:   "lightbox <payload.json | image-url...>",
		Short: "Browse the images of an embed full screen",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLightbox(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Image to open first (zero-based)")

	return cmd
}

func runLightbox(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *lightboxOptions) error {
	images, err := lightboxImages(args)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, rootFlags, "lightbox")
	if err != nil {
		return err
	}

	viewer, err := lightbox.New(lightbox.Options{
		Images:          images.sources(),
		Index:           opts.index,
		Visible:         true,
		BackgroundColor: app.Config.Lightbox.Background,
		Footer:          images.caption,
		Theme:           app.Theme,
		CellWidth:       app.Config.CellWidth,
	})
	if err != nil {
		return newCommandError("lightbox", "building viewer", err, "Check lightbox.background in your configuration.")
	}

	program := tea.NewProgram(
		newLightboxProgram(viewer, app.Logger),
		tea.WithAltScreen(),
		tea.WithContext(app.Context(cmd)),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return newCommandError("lightbox", "running viewer", err, "Run skyui lightbox from an interactive terminal.")
	}

	if m, ok := final.(lightboxProgram); ok {
		app.Logger.With("index", m.index).Info("lightbox closed")
	}
	return nil
}

type imageList []embed.Image

func (l imageList) sources() []lightbox.ImageSource {
	out := make([]lightbox.ImageSource, 0, len(l))
	for _, img := range l {
		out = append(out, lightbox.ImageSource{URI: img.Thumb, Thumb: img.Thumb, FullSize: img.FullSize})
	}
	return out
}

func (l imageList) caption(index int) string {
	if index < 0 || index >= len(l) {
		return ""
	}
	return l[index].Alt
}

func lightboxImages(args []string) (imageList, error) {
	if len(args) == 1 && !isURL(args[0]) {
		if err := validateInputPath(args[0]); err != nil {
			return nil, newCommandError("lightbox", "reading payload", err, "Pass an image embed payload or one or more image URLs.")
		}
		payload, err := embed.Load(args[0])
		if err != nil {
			return nil, newCommandError("lightbox", "decoding payload", err, "The payload must be a JSON object with a $type field.")
		}
		set, ok := payload.(embed.ImageSet)
		if !ok || len(set.Images) == 0 {
			return nil, newCommandError("lightbox", "reading payload", fmt.Errorf("embed %q has no images", payload.Type()), "Use an "+embed.TypeImages+" payload.")
		}
		return imageList(set.Images), nil
	}

	out := make(imageList, 0, len(args))
	for _, arg := range args {
		if !isURL(arg) {
			return nil, newCommandError("lightbox", "reading arguments", fmt.Errorf("%q is not an http(s) URL", arg), "Pass a single payload file or only image URLs.")
		}
		out = append(out, embed.Image{Thumb: arg, FullSize: arg})
	}
	return out, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// lightboxProgram hosts the viewer and quits once it asks to be closed.
type lightboxProgram struct {
	viewer lightbox.Model
	log    *logger.Logger
	index  int
}

func newLightboxProgram(viewer lightbox.Model, log *logger.Logger) lightboxProgram {
	return lightboxProgram{viewer: viewer, log: log, index: viewer.Index()}
}

func (m lightboxProgram) Init() tea.Cmd {
	return m.viewer.Init()
}

func (m lightboxProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lightbox.CloseRequestedMsg:
		return m, tea.Quit
	case lightbox.IndexChangedMsg:
		m.index = msg.Index
		m.log.With("index", msg.Index).Debug("lightbox page changed")
		return m, nil
	}

	updated, cmd := m.viewer.Update(msg)
	m.viewer = updated.(lightbox.Model)
	return m, cmd
}

func (m lightboxProgram) View() string {
	return m.viewer.View()
}
