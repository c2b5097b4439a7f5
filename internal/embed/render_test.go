package embed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

func newTestRenderer(t *testing.T, theme *design.Theme) *Renderer {
	t.Helper()
	r, err := NewRenderer(theme, 390)
	require.NoError(t, err)
	return r
}

func images(n int) ImageSet {
	set := ImageSet{}
	for i := 0; i < n; i++ {
		set.Images = append(set.Images, Image{
			Thumb:    fmt.Sprintf("https://cdn.example/%d_thumb.jpg", i),
			FullSize: fmt.Sprintf("https://cdn.example/%d.jpg", i),
		})
	}
	return set
}

func TestRenderImageLayouts(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())

	cases := []struct {
		count          int
		pairs          int
		wide           int
		big            int
		heightSpacers  int
		widthSpacers   int
		expectedImages int
	}{
		{count: 1, big: 1, expectedImages: 1},
		{count: 2, pairs: 1, widthSpacers: 1, expectedImages: 2},
		{count: 3, pairs: 1, wide: 1, heightSpacers: 1, widthSpacers: 1, expectedImages: 3},
		{count: 4, pairs: 2, heightSpacers: 1, widthSpacers: 2, expectedImages: 4},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%d images", tc.count), func(t *testing.T) {
			t.Parallel()

			tree := r.Render(images(tc.count))
			assert.Equal(t, RoleImagesContainer, tree.Role)
			assert.Len(t, tree.Find(RoleImagePair), tc.pairs)
			assert.Len(t, tree.Find(RoleImageWide), tc.wide)
			assert.Len(t, tree.Find(RoleImageBig), tc.big)
			assert.Len(t, tree.Find(RoleHeightSpacer), tc.heightSpacers)
			assert.Len(t, tree.Find(RoleWidthSpacer), tc.widthSpacers)
			assert.Equal(t, tc.expectedImages, tree.Count(KindImage))
		})
	}
}

func TestRenderImageOrder(t *testing.T) {
	t.Parallel()

	tree := newTestRenderer(t, design.Light()).Render(images(3))

	var thumbs []string
	for _, role := range []string{RoleImageWideItem, RoleImagePairItem} {
		for _, n := range tree.Find(role) {
			thumbs = append(thumbs, n.URI)
		}
	}
	assert.Equal(t, []string{
		"https://cdn.example/0_thumb.jpg",
		"https://cdn.example/1_thumb.jpg",
		"https://cdn.example/2_thumb.jpg",
	}, thumbs)

	wide := tree.Find(RoleImageWideItem)[0]
	assert.Equal(t, "https://cdn.example/0.jpg", wide.FullSizeURI)
}

func TestRenderImageCountsWithoutLayout(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())
	for _, n := range []int{0, 5, 8} {
		tree := r.Render(images(n))
		assert.True(t, tree.IsEmpty(), "count %d", n)
		assert.Equal(t, 0, tree.Count(KindImage), "count %d", n)
	}
}

func TestRenderImageStyles(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())
	tree := r.Render(images(2))

	assert.Equal(t, design.Style{"marginBottom": 10}, tree.Style)

	pair := tree.Find(RoleImagePair)[0]
	assert.Equal(t, design.Style{"flexDirection": "row"}, pair.Style)

	item := tree.Find(RoleImagePairItem)[0]
	assert.Equal(t, design.Style{"resizeMode": "contain", "flex": 1, "borderRadius": 4}, item.Style)

	spacer := tree.Find(RoleWidthSpacer)[0]
	assert.Equal(t, design.Style{"width": 5}, spacer.Style)
}

func TestRenderExternalMinimal(t *testing.T) {
	t.Parallel()

	tree := newTestRenderer(t, design.Light()).Render(ExternalLink{URI: "https://example.com/post", Title: "Hello"})

	require.Equal(t, KindLink, tree.Kind)
	assert.Equal(t, "https://example.com/post", tree.URI)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, RoleExtTitle, tree.Children[0].Role)
	assert.Equal(t, "Hello", tree.Children[0].Text)
	assert.Equal(t, 1, tree.Children[0].Lines)
	assert.Equal(t, RoleExtURL, tree.Children[1].Role)
	assert.Equal(t, "https://example.com/post", tree.Children[1].Text)
	assert.Empty(t, tree.Find(RoleExtThumb))
	assert.Empty(t, tree.Find(RoleExtDescription))
}

func TestRenderExternalTitleFallsBackToURI(t *testing.T) {
	t.Parallel()

	tree := newTestRenderer(t, design.Light()).Render(ExternalLink{URI: "https://example.com"})
	assert.Equal(t, "https://example.com", tree.Find(RoleExtTitle)[0].Text)
}

func TestRenderExternalFull(t *testing.T) {
	t.Parallel()

	link := ExternalLink{
		URI:         "https://example.com",
		Title:       "Example",
		Description: "Something worth reading",
		Thumb:       "https://example.com/og.png",
	}
	tree := newTestRenderer(t, design.Dark()).Render(&link)

	require.Len(t, tree.Children, 4)
	assert.Equal(t, RoleExtThumb, tree.Children[0].Role)
	assert.Equal(t, "https://example.com/og.png", tree.Children[0].URI)

	desc := tree.Find(RoleExtDescription)[0]
	assert.Equal(t, 2, desc.Lines)
	assert.Equal(t, "#fff", desc.Style["color"])

	assert.Equal(t, design.Style{
		"borderWidth":   1,
		"borderColor":   "#f0e9e9",
		"borderRadius":  8,
		"paddingTop":    10,
		"paddingBottom": 10,
		"paddingLeft":   10,
		"paddingRight":  10,
	}, tree.Style)
}

func TestRenderUnknownIsEmpty(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())

	for _, e := range []Embed{Unknown{Tag: "app.bsky.embed.record#presented"}, nil, (*ImageSet)(nil)} {
		tree := r.Render(e)
		assert.True(t, tree.IsEmpty())
		assert.Equal(t, RoleEmpty, tree.Role)
	}
}

func TestDrawExternalCard(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())
	tree := r.Render(ExternalLink{
		URI:         "https://example.com",
		Title:       "Example Domain",
		Description: strings.Repeat("lorem ipsum dolor sit amet ", 20),
	})

	out := Draw(tree, 40, design.DefaultCellWidth)
	assert.Contains(t, out, "Example Domain")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, ellipsis, "long descriptions are clamped")
	assert.LessOrEqual(t, lipgloss.Width(out), 40)

	// border (2) + padding (2) + title + url + margin (1) + two description lines
	assert.Equal(t, 9, lipgloss.Height(out))
}

func TestDrawImages(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())
	out := Draw(r.Render(images(4)), 60, design.DefaultCellWidth)

	for i := 0; i < 4; i++ {
		assert.Contains(t, out, fmt.Sprintf("%d_thumb.jpg", i))
	}
	assert.LessOrEqual(t, lipgloss.Width(out), 60)
}

func TestDrawEmpty(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, design.Light())
	assert.Equal(t, "", Draw(r.Render(Unknown{}), 40, design.DefaultCellWidth))
	assert.Equal(t, "", Draw(r.Render(images(1)), 0, design.DefaultCellWidth))
}

func TestImageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cat.jpg", imageName("https://cdn.example/img/cat.jpg?size=large"))
	assert.Equal(t, "image", imageName(""))
}
