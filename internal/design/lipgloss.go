package design

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCellWidth is the number of style pixels one terminal cell stands for.
const DefaultCellWidth = 8

// Cells converts a pixel measure to terminal cells. Non-zero measures never
// collapse to zero cells.
func Cells(px float64, cell int) int {
	if cell <= 0 {
		cell = DefaultCellWidth
	}
	if px <= 0 {
		return 0
	}
	n := int(math.Round(px / float64(cell)))
	if n == 0 {
		n = 1
	}
	return n
}

// Lipgloss maps the resolved properties onto a lipgloss style for terminal
// rendering. Properties with no terminal equivalent are ignored.
func (s Style) Lipgloss(cell int) lipgloss.Style {
	out := lipgloss.NewStyle()

	if c, ok := s.String("color"); ok {
		out = out.Foreground(lipgloss.Color(c))
	}
	if c, ok := s.String("backgroundColor"); ok {
		out = out.Background(lipgloss.Color(c))
	}

	measure := func(key string) (int, bool) {
		px, ok := s.Number(key)
		if !ok {
			return 0, false
		}
		return Cells(px, cell), true
	}

	if n, ok := measure("paddingTop"); ok {
		out = out.PaddingTop(verticalCells(n))
	}
	if n, ok := measure("paddingBottom"); ok {
		out = out.PaddingBottom(verticalCells(n))
	}
	if n, ok := measure("paddingLeft"); ok {
		out = out.PaddingLeft(n)
	}
	if n, ok := measure("paddingRight"); ok {
		out = out.PaddingRight(n)
	}
	if n, ok := measure("marginTop"); ok {
		out = out.MarginTop(verticalCells(n))
	}
	if n, ok := measure("marginBottom"); ok {
		out = out.MarginBottom(verticalCells(n))
	}
	if n, ok := measure("marginLeft"); ok {
		out = out.MarginLeft(n)
	}
	if n, ok := measure("marginRight"); ok {
		out = out.MarginRight(n)
	}
	if n, ok := measure("width"); ok {
		out = out.Width(n)
	}
	if n, ok := measure("height"); ok {
		out = out.Height(verticalCells(n))
	}

	if weight, ok := s["fontWeight"]; ok && isBold(weight) {
		out = out.Bold(true)
	}

	if align, ok := s.String("textAlign"); ok {
		switch align {
		case "center":
			out = out.Align(lipgloss.Center)
		case "right":
			out = out.Align(lipgloss.Right)
		case "left":
			out = out.Align(lipgloss.Left)
		}
	}

	if transform, ok := s.String("textTransform"); ok {
		switch transform {
		case "uppercase":
			out = out.Transform(strings.ToUpper)
		case "lowercase":
			out = out.Transform(strings.ToLower)
		}
	}

	radius, hasRadius := s.Number("borderRadius")
	width, hasWidth := s.Number("borderWidth")
	switch {
	case hasWidth && width > 0 && hasRadius && radius > 0:
		out = out.Border(lipgloss.RoundedBorder())
	case hasWidth && width > 0:
		out = out.Border(lipgloss.NormalBorder())
	}
	if c, ok := s.String("borderColor"); ok {
		out = out.BorderForeground(lipgloss.Color(c))
	}

	return out
}

// A terminal row is roughly twice as tall as a cell is wide.
func verticalCells(n int) int {
	if n <= 1 {
		return n
	}
	return (n + 1) / 2
}

func isBold(weight any) bool {
	switch v := weight.(type) {
	case string:
		if v == "bold" {
			return true
		}
		if n, err := strconv.Atoi(v); err == nil {
			return n >= 600
		}
	default:
		if n, ok := toFloat(v); ok {
			return n >= 600
		}
	}
	return false
}
