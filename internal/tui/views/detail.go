package views

import (
	"strings"

	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui/components"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const (
	detailTitle      = "Issue Detail"
	commentSeparator = "---"
)

type IssueDetail struct {
	Detail *linear.IssueDetail
	Offset int
}

// splitLines splits on newlines. A trailing newline does not start a new line
// and carriage returns before a newline are dropped.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// DetailText lays out an issue as URL, title, description and comments.
func DetailText(d *linear.IssueDetail) components.Text {
	if d == nil {
		return nil
	}
	blank := components.Line{}
	text := components.Text{
		{components.Styled("URL: ", theme.LabelStyle), components.Plain(d.URL)},
		blank,
		{components.Styled("Title: ", theme.LabelStyle), components.Plain(d.Title)},
		blank,
	}

	if d.Description != "" {
		text = append(text, components.Line{components.Styled("Description:", theme.SectionStyle)})
		for _, line := range splitLines(d.Description) {
			text = append(text, components.PlainLine(line))
		}
		text = append(text, blank)
	}

	if len(d.Comments) > 0 {
		text = append(text, components.Line{components.Styled("Comments:", theme.SectionStyle)})
		for _, c := range d.Comments {
			text = append(text, components.Line{components.Styled(commentSeparator, theme.SeparatorStyle)})
			for _, line := range splitLines(c.Body) {
				text = append(text, components.PlainLine(line))
			}
			text = append(text, blank)
		}
	}
	return text
}

func (v IssueDetail) pane() components.ScrollableText {
	return components.ScrollableText{
		Title:       detailTitle,
		Text:        DetailText(v.Detail),
		Offset:      v.Offset,
		BorderColor: theme.DetailBorder,
	}
}

func (v IssueDetail) Draw(s *components.Surface, area components.Rect) components.ScrollIndicator {
	return v.pane().Draw(s, area)
}

func (v IssueDetail) Render(s *components.Surface, area components.Rect) {
	v.Draw(s, area)
}
