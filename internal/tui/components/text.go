package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text drawn with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

type Line []Span

type Text []Line

func Plain(s string) Span {
	return Span{Text: s, Style: lipgloss.NewStyle()}
}

func Styled(s string, style lipgloss.Style) Span {
	return Span{Text: s, Style: style}
}

func PlainLine(s string) Line {
	return Line{Plain(s)}
}

func (l Line) String() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}
	return b.String()
}

func (l Line) Render() string {
	var b strings.Builder
	for _, span := range l {
		if span.Text == "" {
			continue
		}
		b.WriteString(span.Style.Render(span.Text))
	}
	return b.String()
}

// clip renders l cut to at most width display cells. When highlight is set it
// is layered under every span and the line is padded to the full width.
func (l Line) clip(width int, highlight *lipgloss.Style) string {
	var b strings.Builder
	remaining := width
	for _, span := range l {
		if remaining <= 0 {
			break
		}
		txt := runewidth.Truncate(span.Text, remaining, "")
		if txt == "" {
			continue
		}
		remaining -= runewidth.StringWidth(txt)
		style := span.Style
		if highlight != nil {
			style = highlight.Inherit(span.Style)
		}
		b.WriteString(style.Render(txt))
	}
	if highlight != nil && remaining > 0 {
		b.WriteString(highlight.Render(strings.Repeat(" ", remaining)))
	}
	return b.String()
}

// Height is the number of rows the text occupies unwrapped.
func (t Text) Height() int {
	return len(t)
}
