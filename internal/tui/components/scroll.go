package components

import "math"

// Scroll is a vertical scroll offset in lines. Moving it saturates at the
// integer bounds; it is only clamped to the content when drawn.
type Scroll struct {
	offset int
}

func (s Scroll) Offset() int { return s.offset }

func (s *Scroll) Advance() {
	if s.offset < math.MaxInt {
		s.offset++
	}
}

func (s *Scroll) Retreat() {
	if s.offset > 0 {
		s.offset--
	}
}

func (s *Scroll) Reset() { s.offset = 0 }

// Set stores an offset computed during drawing.
func (s *Scroll) Set(offset int) {
	s.offset = max(offset, 0)
}

// ClampScroll bounds offset by the number of content lines.
func ClampScroll(offset, lines int) int {
	return max(min(offset, lines), 0)
}

// ScrollIndicator describes where a scrollable pane is positioned within its
// content. It is rebuilt on every draw.
type ScrollIndicator struct {
	ContentLength int
	Position      int
}

// Thumb returns the row of the thumb within a track of the given length.
func (i ScrollIndicator) Thumb(track int) int {
	if track <= 1 || i.ContentLength <= 1 {
		return 0
	}
	pos := min(max(i.Position, 0), i.ContentLength-1)
	return pos * (track - 1) / (i.ContentLength - 1)
}
