package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCells(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Cells(0, 8))
	assert.Equal(t, 1, Cells(3, 8), "small measures keep one cell")
	assert.Equal(t, 2, Cells(16, 8))
	assert.Equal(t, 3, Cells(24, 8))
	assert.Equal(t, 2, Cells(16, 0), "zero cell width falls back to the default")
}

func TestStyleLipgloss(t *testing.T) {
	t.Parallel()

	light := Light()
	style, err := light.Resolve(0,
		Alias("px", Token(CategorySpace, "m")),
		Alias("c", Token(CategoryColor, "textLink")),
		Alias("bg", Token(CategoryColor, "surface")),
		Alias("fw", "bold"),
		Use(MacroTAC, true),
	)
	require.NoError(t, err)

	ls := style.Lipgloss(8)
	assert.Equal(t, 2, ls.GetPaddingLeft())
	assert.Equal(t, 2, ls.GetPaddingRight())
	assert.Equal(t, 0, ls.GetPaddingTop())
	assert.True(t, ls.GetBold())
	assert.Equal(t, lipgloss.Color("#0085ff"), ls.GetForeground())
	assert.Equal(t, lipgloss.Color("#fff"), ls.GetBackground())
	assert.Equal(t, lipgloss.Center, ls.GetAlignHorizontal())
}

func TestStyleLipglossBorders(t *testing.T) {
	t.Parallel()

	rounded := Style{"borderWidth": 1, "borderRadius": 8, "borderColor": "#f0e9e9"}.Lipgloss(8)
	assert.Equal(t, lipgloss.RoundedBorder(), rounded.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("#f0e9e9"), rounded.GetBorderTopForeground())

	square := Style{"borderWidth": 1}.Lipgloss(8)
	assert.Equal(t, lipgloss.NormalBorder(), square.GetBorderStyle())

	none := Style{"borderRadius": 4}.Lipgloss(8)
	assert.False(t, none.GetBorderTop())

	zeroWidth := Style{"borderWidth": 0, "borderRadius": 4}.Lipgloss(8)
	assert.False(t, zeroWidth.GetBorderTop())
}

func TestStyleLipglossTransforms(t *testing.T) {
	t.Parallel()

	caps := Style{"textTransform": "uppercase"}.Lipgloss(8)
	assert.Equal(t, "HELLO", caps.Render("hello"))

	assert.True(t, Style{"fontWeight": "700"}.Lipgloss(8).GetBold())
	assert.True(t, Style{"fontWeight": 600}.Lipgloss(8).GetBold())
	assert.False(t, Style{"fontWeight": "normal"}.Lipgloss(8).GetBold())
	assert.False(t, Style{"fontWeight": "400"}.Lipgloss(8).GetBold())
	assert.False(t, Style{"fontWeight": "-700"}.Lipgloss(8).GetBold())
}

func TestStyleAccessors(t *testing.T) {
	t.Parallel()

	style := Style{"width": 5, "color": "#000", "flex": 1.5}
	assert.Equal(t, []string{"color", "flex", "width"}, style.Keys())

	n, ok := style.Number("flex")
	require.True(t, ok)
	assert.Equal(t, 1.5, n)

	_, ok = style.Number("color")
	assert.False(t, ok)

	s, ok := style.String("color")
	require.True(t, ok)
	assert.Equal(t, "#000", s)
}
