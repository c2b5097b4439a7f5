package lightbox

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

const captionColor = "#968d8d"

type styles struct {
	container lipgloss.Style
	bar       lipgloss.Style
	title     lipgloss.Style
	caption   lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(theme *design.Theme, background string, cell int) (styles, error) {
	var st styles
	sheet := []struct {
		target     *lipgloss.Style
		directives []design.Directive
	}{
		{&st.container, []design.Directive{design.Alias("bg", background)}},
		{&st.bar, []design.Directive{
			design.Alias("c", "#fff"),
			design.Alias("px", design.Token(design.CategorySpace, "s")),
			design.Use(design.MacroJCB, true),
		}},
		{&st.title, []design.Directive{design.Alias("c", "#fff"), design.Alias("fw", "bold")}},
		{&st.caption, []design.Directive{design.Alias("c", captionColor)}},
		{&st.accent, []design.Directive{design.Alias("c", design.Token(design.CategoryColor, "textLink"))}},
		{&st.muted, []design.Directive{design.Alias("c", design.Token(design.CategoryColor, "border"))}},
	}

	for _, entry := range sheet {
		resolved, err := theme.Resolve(0, entry.directives...)
		if err != nil {
			return styles{}, err
		}
		*entry.target = resolved.Lipgloss(cell)
	}
	return st, nil
}
