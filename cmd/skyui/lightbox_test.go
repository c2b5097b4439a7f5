package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skyui/internal/lightbox"
	"github.com/alexisbeaulieu97/skyui/internal/logger"
)

func TestLightboxImagesFromPayload(t *testing.T) {
	path := writeFile(t, "embed.json", `{
  "$type": "app.bsky.embed.images#presented",
  "images": [
    {"thumb": "https://cdn.example/a_t.jpg", "fullsize": "https://cdn.example/a.jpg", "alt": "a cat"},
    {"thumb": "https://cdn.example/b_t.jpg", "fullsize": "https://cdn.example/b.jpg"}
  ]
}`)

	images, err := lightboxImages([]string{path})
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "a cat", images.caption(0))
	require.Equal(t, "", images.caption(5))

	sources := images.sources()
	require.Equal(t, "https://cdn.example/a.jpg", sources[0].FullSize)
	require.Equal(t, "https://cdn.example/b_t.jpg", sources[1].Thumb)
}

func TestLightboxImagesFromURLs(t *testing.T) {
	images, err := lightboxImages([]string{"https://cdn.example/a.jpg", "http://cdn.example/b.png"})
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, "http://cdn.example/b.png", images[1].FullSize)
}

func TestLightboxImagesErrors(t *testing.T) {
	link := writeFile(t, "link.json", `{"$type": "app.bsky.embed.external#presented", "external": {"uri": "https://example.com"}}`)

	cases := map[string][]string{
		"missing payload": {filepath.Join(t.TempDir(), "missing.json")},
		"link payload":    {link},
		"mixed arguments": {"https://cdn.example/a.jpg", "local.jpg"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lightboxImages(args)
			require.Error(t, err)
		})
	}
}

func TestLightboxProgramQuitsOnClose(t *testing.T) {
	viewer, err := lightbox.New(lightbox.Options{
		Images:  []lightbox.ImageSource{{URI: "https://cdn.example/a.jpg"}, {URI: "https://cdn.example/b.jpg"}},
		Visible: true,
	})
	require.NoError(t, err)

	m := newLightboxProgram(viewer, logger.Nop())
	cmd := m.Init()
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(lightboxProgram)
	require.Equal(t, 0, m.index)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(lightboxProgram)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(lightboxProgram)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(lightboxProgram)
	require.Equal(t, 1, m.index)
	require.Contains(t, m.View(), "2 / 2")

	_, cmd = m.Update(lightbox.CloseRequestedMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
