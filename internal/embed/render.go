package embed

import (
	"fmt"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

const urlColor = "#968d8d"

func stylesheet() map[string][]design.Directive {
	radius := func(r int) design.Directive { return design.Alias("radius", r) }

	return map[string][]design.Directive{
		RoleImagesContainer: {design.Alias("mb", design.Token(design.CategorySpace, "s"))},
		RoleWidthSpacer:     {design.Alias("w", 5)},
		RoleHeightSpacer:    {design.Alias("h", 5)},
		RoleImagePair:       {design.Use(design.MacroInline, true)},
		RoleImagePairItem: {
			design.Literal(design.Style{"resizeMode": "contain", "flex": 1}),
			radius(4),
		},
		RoleImageWideItem: {
			design.Literal(design.Style{"resizeMode": "contain"}),
			radius(4),
		},
		RoleImageBigItem: {radius(4)},
		RoleExtOuter: {
			design.Literal(design.Style{
				"borderWidth": 1,
				"borderColor": design.Token(design.CategoryColor, "border"),
			}),
			radius(8),
			design.Alias("pa", design.Token(design.CategorySpace, "s")),
		},
		RoleExtTitle: {
			design.Alias("fs", design.Token(design.CategoryFontSize, "m")),
			design.Alias("fw", "bold"),
			design.Alias("c", design.Token(design.CategoryColor, "text")),
		},
		RoleExtURL: {design.Alias("c", urlColor)},
		RoleExtDescription: {
			design.Alias("mt", 4),
			design.Alias("fs", 15),
			design.Alias("c", design.Token(design.CategoryColor, "text")),
		},
	}
}

// Renderer turns embeds into render trees styled by a theme.
type Renderer struct {
	styles map[string]design.Style
}

// NewRenderer resolves the embed stylesheet against theme at the given
// viewport width.
func NewRenderer(theme *design.Theme, viewportWidth float64) (*Renderer, error) {
	sheet := stylesheet()
	styles := make(map[string]design.Style, len(sheet))
	for role, directives := range sheet {
		style, err := design.Resolve(theme, directives, viewportWidth)
		if err != nil {
			return nil, fmt.Errorf("embed style %s: %w", role, err)
		}
		styles[role] = style
	}
	return &Renderer{styles: styles}, nil
}

// Style returns the resolved style for a role.
func (r *Renderer) Style(role string) design.Style {
	return r.styles[role].Clone()
}

// Render builds the render tree for e. Unknown embeds, nil embeds and image
// sets without a layout render as an empty view.
func (r *Renderer) Render(e Embed) Node {
	switch v := e.(type) {
	case ImageSet:
		return r.renderImages(v)
	case *ImageSet:
		if v != nil {
			return r.renderImages(*v)
		}
	case ExternalLink:
		return r.renderExternal(v)
	case *ExternalLink:
		if v != nil {
			return r.renderExternal(*v)
		}
	}
	return Node{Kind: KindView, Role: RoleEmpty}
}

func (r *Renderer) node(kind Kind, role string) Node {
	return Node{Kind: kind, Role: role, Style: r.Style(role)}
}

func (r *Renderer) renderImages(set ImageSet) Node {
	layout := LayoutFor(len(set.Images))
	if layout == LayoutNone {
		return Node{Kind: KindView, Role: RoleEmpty}
	}

	thumb := func(i int, role string) Node {
		n := r.node(KindImage, role)
		n.URI = set.Images[i].Thumb
		n.FullSizeURI = set.Images[i].FullSize
		n.Text = set.Images[i].Alt
		return n
	}

	container := r.node(KindView, RoleImagesContainer)
	for rowIndex, row := range layout.Rows() {
		if rowIndex > 0 {
			container.Children = append(container.Children, r.node(KindSpacer, RoleHeightSpacer))
		}

		switch {
		case len(row) == 2:
			pair := r.node(KindRow, RoleImagePair)
			pair.Children = []Node{
				thumb(row[0], RoleImagePairItem),
				r.node(KindSpacer, RoleWidthSpacer),
				thumb(row[1], RoleImagePairItem),
			}
			container.Children = append(container.Children, pair)
		case layout == LayoutWidePair:
			wide := r.node(KindView, RoleImageWide)
			wide.Children = []Node{thumb(row[0], RoleImageWideItem)}
			container.Children = append(container.Children, wide)
		default:
			big := r.node(KindView, RoleImageBig)
			big.Children = []Node{thumb(row[0], RoleImageBigItem)}
			container.Children = append(container.Children, big)
		}
	}
	return container
}

func (r *Renderer) renderExternal(link ExternalLink) Node {
	outer := r.node(KindLink, RoleExtOuter)
	outer.URI = link.URI

	if link.Thumb != "" {
		thumb := Node{Kind: KindImage, Role: RoleExtThumb, URI: link.Thumb}
		outer.Children = append(outer.Children, thumb)
	}

	title := r.node(KindText, RoleExtTitle)
	title.Text = link.Title
	if title.Text == "" {
		title.Text = link.URI
	}
	title.Lines = 1

	url := r.node(KindText, RoleExtURL)
	url.Text = link.URI
	url.Lines = 1

	outer.Children = append(outer.Children, title, url)

	if link.Description != "" {
		desc := r.node(KindText, RoleExtDescription)
		desc.Text = link.Description
		desc.Lines = 2
		outer.Children = append(outer.Children, desc)
	}
	return outer
}
