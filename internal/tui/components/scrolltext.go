package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const (
	scrollUpSymbol    = "↑"
	scrollDownSymbol  = "↓"
	scrollTrackSymbol = "│"
	scrollThumbSymbol = "█"
)

// ScrollableText is a framed, word-wrapped text pane starting at Offset
// logical lines.
type ScrollableText struct {
	Title       string
	Text        Text
	Offset      int
	BorderColor lipgloss.TerminalColor
}

func (t ScrollableText) Render(s *Surface, area Rect) {
	t.Draw(s, area)
}

// Draw paints the pane and returns the indicator it drew. The indicator's
// Position is the clamped offset, which callers keep as the new offset.
func (t ScrollableText) Draw(s *Surface, area Rect) ScrollIndicator {
	offset := ClampScroll(t.Offset, len(t.Text))
	indicator := ScrollIndicator{ContentLength: len(t.Text), Position: offset}
	if area.Empty() {
		return indicator
	}

	color := t.BorderColor
	if color == nil {
		color = theme.DetailBorder
	}
	s.Clear(area)
	drawFrame(s, area, t.Title, color)

	inner := area.Inner()
	if !inner.Empty() {
		y := inner.Y
	fill:
		for _, line := range t.Text[offset:] {
			for _, row := range strings.Split(ansi.Wrap(line.Render(), inner.Width, ""), "\n") {
				if y >= inner.Y+inner.Height {
					break fill
				}
				s.SetLine(inner.X, y, inner.Width, row)
				y++
			}
		}
	}

	drawScrollIndicator(s, area, indicator)
	return indicator
}

// drawScrollIndicator paints the indicator over the right border, between
// the top and bottom corners.
func drawScrollIndicator(s *Surface, area Rect, indicator ScrollIndicator) {
	track := area.Height - 2
	if area.Width < 1 || track < 1 {
		return
	}
	x := area.X + area.Width - 1
	top := area.Y + 1

	if track < 3 {
		s.SetLine(x, top, 1, theme.ScrollThumbStyle.Render(scrollThumbSymbol))
		return
	}

	s.SetLine(x, top, 1, theme.ScrollTrackStyle.Render(scrollUpSymbol))
	s.SetLine(x, top+track-1, 1, theme.ScrollTrackStyle.Render(scrollDownSymbol))
	inner := track - 2
	thumb := indicator.Thumb(inner)
	for i := 0; i < inner; i++ {
		cell := theme.ScrollTrackStyle.Render(scrollTrackSymbol)
		if i == thumb {
			cell = theme.ScrollThumbStyle.Render(scrollThumbSymbol)
		}
		s.SetLine(x, top+1+i, 1, cell)
	}
}
