package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks r by one cell on every side, the space left inside a border.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// SplitHorizontal splits r into a left column of percent% of the width and a
// right column holding the remainder.
func (r Rect) SplitHorizontal(percent int) (Rect, Rect) {
	leftWidth := r.Width * percent / 100
	left := Rect{X: r.X, Y: r.Y, Width: leftWidth, Height: r.Height}
	right := Rect{X: r.X + leftWidth, Y: r.Y, Width: r.Width - leftWidth, Height: r.Height}
	return left, right
}

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Surface is a fixed-size grid of terminal rows that widgets paint into.
// Rows may hold ANSI styling; widths are measured in terminal cells.
type Surface struct {
	width  int
	height int
	rows   []string
}

func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}
	return &Surface{width: width, height: height, rows: rows}
}

func (s *Surface) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// SetLine replaces the cells of row y starting at column x with content,
// clipped to width cells and padded with spaces when shorter.
func (s *Surface) SetLine(x, y, width int, content string) {
	area := Rect{X: x, Y: y, Width: width, Height: 1}.intersect(s.Bounds())
	if area.Empty() {
		return
	}
	// content is clipped on the left when x was outside the surface.
	if skip := area.X - x; skip > 0 {
		content = ansi.TruncateLeft(content, skip, "")
	}
	content = fit(content, area.Width)

	row := s.rows[y]
	left := ansi.Truncate(row, area.X, "")
	if w := ansi.StringWidth(left); w < area.X {
		left += strings.Repeat(" ", area.X-w)
	}
	if strings.Contains(left, "\x1b") {
		left += sgrReset
	}
	right := ansi.TruncateLeft(row, area.X+area.Width, "")
	if w := ansi.StringWidth(right); w < s.width-area.X-area.Width {
		right = strings.Repeat(" ", s.width-area.X-area.Width-w) + right
	}
	s.rows[y] = left + content + right
}

// Clear resets area to blank cells.
func (s *Surface) Clear(area Rect) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		s.SetLine(area.X, y, area.Width, "")
	}
}

func (s *Surface) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return s.rows[y]
}

func (s *Surface) String() string {
	return strings.Join(s.rows, "\n")
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "")
		if strings.Contains(s, "\x1b") {
			s += sgrReset
		}
		w = ansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
