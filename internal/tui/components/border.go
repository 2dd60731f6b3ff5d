package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

// drawFrame paints a bordered box around area with title set into the top
// edge. lipgloss borders cannot carry a title, so the edges are built here.
func drawFrame(s *Surface, area Rect, title string, color lipgloss.TerminalColor) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	b := theme.PanelBorder
	edge := lipgloss.NewStyle().Foreground(color)
	inner := area.Width - 2

	top := ""
	if title != "" && inner > 0 {
		top = theme.TitleStyle.Render(ansi.Truncate(title, inner, ""))
	}
	if fill := inner - ansi.StringWidth(top); fill > 0 {
		top += edge.Render(strings.Repeat(b.Top, fill))
	}
	s.SetLine(area.X, area.Y, area.Width, edge.Render(b.TopLeft)+top+edge.Render(b.TopRight))

	left, right := edge.Render(b.Left), edge.Render(b.Right)
	for y := area.Y + 1; y < area.Y+area.Height-1; y++ {
		s.SetLine(area.X, y, 1, left)
		s.SetLine(area.X+area.Width-1, y, 1, right)
	}

	bottom := edge.Render(b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight)
	s.SetLine(area.X, area.Y+area.Height-1, area.Width, bottom)
}
