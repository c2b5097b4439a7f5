package lightbox

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/skyui/internal/design"
)

// DefaultBackground is the viewer backdrop colour.
const DefaultBackground = "#000"

// Header and footer slide this far out of view while an image is zoomed.
const barSlide = 300.0

const frameRate = 60

// ImageSource is one page of the viewer.
type ImageSource struct {
	URI      string
	Thumb    string
	FullSize string
}

// State is the viewer's interaction state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateZoomed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateZoomed:
		return "zoomed"
	default:
		return "closed"
	}
}

// BarRenderer draws a header or footer for the page at index.
type BarRenderer func(index int) string

// Options configures a viewer.
type Options struct {
	Images          []ImageSource
	Index           int
	Visible         bool
	BackgroundColor string
	Header          BarRenderer
	Footer          BarRenderer
	Theme           *design.Theme
	CellWidth       int
}

type bar struct {
	pos float64
	vel float64
}

// Model is a bubbletea model presenting images one page at a time.
type Model struct {
	images []ImageSource
	index  int
	state  State

	opacity float64
	scrollX float64
	width   int
	height  int

	header BarRenderer
	footer BarRenderer

	headerBar bar
	footerBar bar
	barTarget float64
	spring    harmonica.Spring
	animating bool
	frameGen  int

	keys   keyMap
	help   help.Model
	pager  paginator.Model
	styles styles
}

// New builds a viewer. The theme defaults to light.
func New(opts Options) (Model, error) {
	theme := opts.Theme
	if theme == nil {
		theme = design.Light()
	}
	background := opts.BackgroundColor
	if background == "" {
		background = DefaultBackground
	}

	st, err := newStyles(theme, background, opts.CellWidth)
	if err != nil {
		return Model{}, err
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = 1
	pager.ActiveDot = st.accent.Render("•")
	pager.InactiveDot = st.muted.Render("•")
	pager.SetTotalPages(len(opts.Images))

	m := Model{
		images:  append([]ImageSource(nil), opts.Images...),
		opacity: 1,
		header:  opts.Header,
		footer:  opts.Footer,
		spring:  harmonica.NewSpring(harmonica.FPS(frameRate), 12.0, 1.0),
		keys:    defaultKeyMap(),
		help:    help.New(),
		pager:   pager,
		styles:  st,
	}
	m.index = m.clampIndex(opts.Index)
	m.pager.Page = m.index
	if opts.Visible && len(m.images) > 0 {
		m.state = StateOpen
	}
	return m, nil
}

// Init announces the initial page when the viewer starts open.
func (m Model) Init() tea.Cmd {
	if m.state == StateClosed {
		return nil
	}
	return indexChanged(m.index)
}

// Index returns the current page.
func (m Model) Index() int {
	return m.index
}

// State returns the interaction state.
func (m Model) State() State {
	return m.state
}

// Opacity returns the backdrop opacity, 0 or 1.
func (m Model) Opacity() float64 {
	return m.opacity
}

// ScrollLocked reports whether horizontal paging is disabled.
func (m Model) ScrollLocked() bool {
	return m.state == StateZoomed
}

// BarOffsets returns the vertical offsets of the header and footer.
func (m Model) BarOffsets() (header, footer float64) {
	return m.headerBar.pos, m.footerBar.pos
}

// Animating reports whether the header and footer are still moving.
func (m Model) Animating() bool {
	return m.animating
}

// PageIndex converts a horizontal scroll offset into a page index. It reports
// false when the viewport has no width yet.
func PageIndex(offsetX, viewportWidth float64) (int, bool) {
	if viewportWidth <= 0 {
		return 0, false
	}
	next := int(math.Round(offsetX / viewportWidth))
	if next < 0 {
		next = 0
	}
	return next, true
}

func (m Model) clampIndex(i int) int {
	if i < 0 || len(m.images) == 0 {
		return 0
	}
	if i >= len(m.images) {
		return len(m.images) - 1
	}
	return i
}

func indexChanged(index int) tea.Cmd {
	return func() tea.Msg { return IndexChangedMsg{Index: index} }
}

func nextFrame(gen int) tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}
