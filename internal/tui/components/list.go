package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

// Renderable is anything that can draw itself into an area of a Surface.
type Renderable interface {
	Render(s *Surface, area Rect)
}

// ListConfig configures how a StyledList is framed.
type ListConfig struct {
	Title   string
	Focused bool
	// Placeholder replaces the list contents when non-empty.
	Placeholder string
	// BorderColor is used while focused. Defaults to theme.FocusedBorder.
	BorderColor lipgloss.TerminalColor
}

func (c ListConfig) borderColor() lipgloss.TerminalColor {
	if !c.Focused {
		return theme.UnfocusedBorder
	}
	if c.BorderColor != nil {
		return c.BorderColor
	}
	return theme.FocusedBorder
}

// StyledList draws a framed list of multi-row items. With a Selection the
// selected item is highlighted and kept in view; without one nothing is.
type StyledList struct {
	Config    ListConfig
	Items     []Text
	Selection *Selection
}

func (l StyledList) Render(s *Surface, area Rect) {
	if area.Empty() {
		return
	}
	s.Clear(area)
	drawFrame(s, area, l.Config.Title, l.Config.borderColor())
	inner := area.Inner()
	if inner.Empty() {
		return
	}

	if l.Config.Placeholder != "" {
		s.SetLine(inner.X, inner.Y, inner.Width, PlainLine(l.Config.Placeholder).clip(inner.Width, nil))
		return
	}

	selected := -1
	if l.Selection != nil {
		if i, ok := l.Selection.Index(); ok && i < len(l.Items) {
			selected = i
		}
	}

	y := inner.Y
	for idx := l.firstVisible(selected, inner.Height); idx < len(l.Items); idx++ {
		var highlight *lipgloss.Style
		if idx == selected {
			highlight = &theme.SelectedStyle
		}
		for _, line := range l.Items[idx] {
			if y >= inner.Y+inner.Height {
				return
			}
			s.SetLine(inner.X, y, inner.Width, line.clip(inner.Width, highlight))
			y++
		}
	}
}

// firstVisible returns the first item to draw so that the selected item ends
// within height rows.
func (l StyledList) firstVisible(selected, height int) int {
	if selected < 0 {
		return 0
	}
	first := 0
	rows := 0
	for i := 0; i <= selected; i++ {
		rows += l.Items[i].Height()
	}
	for first < selected && rows > height {
		rows -= l.Items[first].Height()
		first++
	}
	return first
}
