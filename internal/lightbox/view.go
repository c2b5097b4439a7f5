package lightbox

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// View renders the viewer. Nothing is drawn while closed or faded out.
func (m Model) View() string {
	if m.state == StateClosed || m.opacity == 0 || len(m.images) == 0 {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := make([]string, 0, 5)
	if m.headerBar.pos > -barSlide/2 {
		sections = append(sections, m.renderBar(m.headerText(), width))
	}

	body := m.renderImage(width)
	sections = append(sections, body)

	if !m.ScrollLocked() {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, m.pager.View()))
		sections = append(sections, m.help.View(m.keys))
	}

	if m.footer != nil && m.footerBar.pos < barSlide/2 {
		sections = append(sections, m.renderBar(m.footer(m.index), width))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.height > 0 {
		content = lipgloss.Place(width, m.height, lipgloss.Left, lipgloss.Top, content)
	}
	return m.styles.container.Render(content)
}

func (m Model) headerText() string {
	if m.header != nil {
		return m.header(m.index)
	}
	return "✕ close"
}

func (m Model) renderBar(text string, width int) string {
	inner := width - m.styles.bar.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	return m.styles.bar.Width(width).Render(ansi.Truncate(text, inner, ellipsis))
}

func (m Model) renderImage(width int) string {
	img := m.images[m.index]
	uri := img.FullSize
	if uri == "" {
		uri = img.URI
	}
	if uri == "" {
		uri = img.Thumb
	}

	title := fmt.Sprintf("▣ %s", imageName(uri))
	position := fmt.Sprintf("%d / %d", m.index+1, len(m.images))
	if m.state == StateZoomed {
		position += "  " + m.styles.accent.Render("zoomed")
	}

	lines := []string{
		m.styles.title.Render(ansi.Truncate(title, width, ellipsis)),
		m.styles.caption.Render(ansi.Truncate(uri, width, ellipsis)),
		position,
	}

	bodyHeight := m.height - 4
	if bodyHeight < len(lines) {
		bodyHeight = len(lines)
	}
	return lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

func imageName(uri string) string {
	trimmed := strings.TrimRight(uri, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	base := path.Base(trimmed)
	if base == "." || base == "/" || base == "" {
		return "image"
	}
	return base
}
