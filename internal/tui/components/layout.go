package components

const leftColumnPercent = 30

// TwoColumnLayout splits its area 30/70 and draws Left then Right.
type TwoColumnLayout struct {
	Left  Renderable
	Right Renderable
}

func (l TwoColumnLayout) Render(s *Surface, area Rect) {
	left, right := area.SplitHorizontal(leftColumnPercent)
	if l.Left != nil {
		l.Left.Render(s, left)
	}
	if l.Right != nil {
		l.Right.Render(s, right)
	}
}
