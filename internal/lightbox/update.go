package lightbox

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const settleThreshold = 0.5

// Update handles Bubbletea messages and updates viewer state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollX = float64(m.index * m.width)
		return m, nil

	case OpenMsg:
		if len(m.images) == 0 {
			return m, nil
		}
		m.index = m.clampIndex(msg.Index)
		m.pager.Page = m.index
		m.scrollX = float64(m.index * m.width)
		m.state = StateOpen
		m.opacity = 1
		m.resetBars()
		return m, indexChanged(m.index)

	case resetOpacityMsg:
		m.opacity = 1
		return m, nil

	case frameMsg:
		if msg.gen != m.frameGen {
			return m, nil
		}
		return m.stepBars()

	case PinchMsg:
		return m.pinch(msg.Scaled)

	case ScrollEndMsg:
		return m.scrollTo(msg.OffsetX)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateClosed {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.requestClose()
	case key.Matches(msg, m.keys.Next):
		return m.scrollTo(float64((m.index + 1) * m.width))
	case key.Matches(msg, m.keys.Prev):
		return m.scrollTo(float64((m.index - 1) * m.width))
	case key.Matches(msg, m.keys.Zoom):
		return m.pinch(m.state != StateZoomed)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// The backdrop fades out, the caller is told, and opacity is restored on the
// following tick so reopening is immediate.
func (m Model) requestClose() (tea.Model, tea.Cmd) {
	m.opacity = 0
	m.state = StateClosed
	m.resetBars()
	return m, tea.Sequence(
		func() tea.Msg { return CloseRequestedMsg{} },
		func() tea.Msg { return resetOpacityMsg{} },
	)
}

func (m Model) scrollTo(offsetX float64) (tea.Model, tea.Cmd) {
	if m.state != StateOpen {
		return m, nil
	}
	next, ok := PageIndex(offsetX, float64(m.width))
	if !ok {
		return m, nil
	}
	next = m.clampIndex(next)
	m.scrollX = float64(next * m.width)
	if next == m.index {
		return m, nil
	}
	m.index = next
	m.pager.Page = next
	return m, indexChanged(next)
}

func (m Model) pinch(scaled bool) (tea.Model, tea.Cmd) {
	if m.state == StateClosed {
		return m, nil
	}
	if scaled {
		m.state = StateZoomed
		m.barTarget = barSlide
	} else {
		m.state = StateOpen
		m.barTarget = 0
	}
	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, nextFrame(m.frameGen)
}

// Header moves to -barTarget, footer to +barTarget.
func (m Model) stepBars() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.headerBar.pos, m.headerBar.vel = m.spring.Update(m.headerBar.pos, m.headerBar.vel, -m.barTarget)
	m.footerBar.pos, m.footerBar.vel = m.spring.Update(m.footerBar.pos, m.footerBar.vel, m.barTarget)

	if settled(m.headerBar, -m.barTarget) && settled(m.footerBar, m.barTarget) {
		m.headerBar = bar{pos: -m.barTarget}
		m.footerBar = bar{pos: m.barTarget}
		m.animating = false
		return m, nil
	}
	return m, nextFrame(m.frameGen)
}

func (m *Model) resetBars() {
	m.headerBar = bar{}
	m.footerBar = bar{}
	m.barTarget = 0
	m.animating = false
	m.frameGen++
}

func settled(b bar, target float64) bool {
	return math.Abs(b.pos-target) < settleThreshold && math.Abs(b.vel) < settleThreshold
}
