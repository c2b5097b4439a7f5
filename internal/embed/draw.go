package embed

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

const ellipsis = "…"

// Draw renders a node tree to a string of at most width terminal columns.
// cell is the number of style pixels per column.
func Draw(n Node, width, cell int) string {
	if width <= 0 {
		return ""
	}

	switch n.Kind {
	case KindView, KindLink:
		if n.IsEmpty() {
			return ""
		}
		style := n.Style.Lipgloss(cell)
		inner := width - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		blocks := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			blocks = append(blocks, Draw(child, inner, cell))
		}
		if n.Kind == KindLink || style.GetBorderTop() {
			style = style.Width(width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
		}
		return style.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))

	case KindRow:
		return drawRow(n, width, cell)

	case KindImage:
		return drawImage(n, width, cell)

	case KindText:
		return drawText(n, width, cell)

	case KindSpacer:
		if h, ok := n.Style.Number("height"); ok {
			rows := design.Cells(h, cell)
			if rows > 1 {
				rows = (rows + 1) / 2
			}
			return strings.Repeat("\n", rows-1)
		}
		if w, ok := n.Style.Number("width"); ok {
			return strings.Repeat(" ", design.Cells(w, cell))
		}
		return ""
	}
	return ""
}

func drawRow(n Node, width, cell int) string {
	fixed := 0
	flexible := 0
	for _, child := range n.Children {
		if child.Kind == KindSpacer {
			if w, ok := child.Style.Number("width"); ok {
				fixed += design.Cells(w, cell)
			}
			continue
		}
		flexible++
	}

	share := width
	if flexible > 0 {
		share = (width - fixed) / flexible
	}
	if share < 1 {
		share = 1
	}

	blocks := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Kind == KindSpacer {
			blocks = append(blocks, Draw(child, width, cell))
			continue
		}
		blocks = append(blocks, Draw(child, share, cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func drawImage(n Node, width, cell int) string {
	style := n.Style.Lipgloss(cell)
	if r, ok := n.Style.Number("borderRadius"); ok && r > 0 {
		style = style.Border(lipgloss.RoundedBorder())
	} else {
		style = style.Border(lipgloss.NormalBorder())
	}

	inner := width - style.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}

	label := n.Text
	if label == "" {
		label = imageName(n.URI)
	}
	lines := []string{
		ansi.Truncate("▣ "+label, inner, ellipsis),
		ansi.Truncate(n.URI, inner, ellipsis),
	}
	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

func drawText(n Node, width, cell int) string {
	style := n.Style.Lipgloss(cell)
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	wrapped := strings.Split(lipgloss.NewStyle().Width(inner).Render(n.Text), "\n")
	for i := range wrapped {
		wrapped[i] = strings.TrimRight(wrapped[i], " ")
	}
	if n.Lines > 0 && len(wrapped) > n.Lines {
		wrapped = wrapped[:n.Lines]
		last := wrapped[n.Lines-1]
		if lipgloss.Width(last)+lipgloss.Width(ellipsis) > inner {
			last = ansi.Truncate(last, inner-lipgloss.Width(ellipsis), "")
		}
		wrapped[n.Lines-1] = last + ellipsis
	}
	return style.Render(strings.Join(wrapped, "\n"))
}

func imageName(uri string) string {
	if uri == "" {
		return "image"
	}
	trimmed := strings.TrimRight(uri, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	base := path.Base(trimmed)
	if base == "." || base == "/" || base == "" {
		return uri
	}
	return base
}
