package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui/components"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const (
	issuesTitle       = "Issues"
	issuesPlaceholder = "Select a team to view issues"
	noDescription     = "No description"
	ellipsis          = "..."
	// descriptionInset is the room reserved for the frame and margin.
	descriptionInset = 5
)

type IssuesList struct {
	Issues    []linear.TeamIssue
	Selection *components.Selection
	Focused   bool
}

// TruncateDescription cuts desc to maxWidth runes, ending in "..." when
// anything was dropped.
func TruncateDescription(desc string, maxWidth int) string {
	runes := []rune(desc)
	if len(runes) <= maxWidth {
		return desc
	}
	keep := max(maxWidth-len(ellipsis), 0)
	return string(runes[:keep]) + ellipsis
}

// flatten keeps a description on a single row.
var flatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// fitDescription flattens desc to one row and truncates it to maxWidth runes.
// Wide characters can still overflow maxWidth cells, so the result is then
// cut by display width, keeping the ellipsis.
func fitDescription(desc string, maxWidth int) string {
	desc = TruncateDescription(flatten.Replace(desc), maxWidth)
	if maxWidth >= len(ellipsis) && runewidth.StringWidth(desc) > maxWidth {
		desc = runewidth.Truncate(desc, maxWidth, ellipsis)
	}
	return desc
}

func IssueRow(issue linear.TeamIssue, maxWidth int) components.Text {
	desc := components.Styled(noDescription, theme.DimStyle)
	if issue.Description != nil {
		desc = components.Styled(fitDescription(*issue.Description, maxWidth), theme.SubTextStyle)
	}
	return components.Text{
		{components.Styled(issue.Title, theme.TextStyle)},
		{desc},
	}
}

func (v IssuesList) Render(s *components.Surface, area components.Rect) {
	cfg := components.ListConfig{Title: issuesTitle, Focused: v.Focused}
	if len(v.Issues) == 0 || !v.Focused {
		cfg.Placeholder = issuesPlaceholder
	}

	maxWidth := max(area.Width-descriptionInset, 0)
	items := make([]components.Text, 0, len(v.Issues))
	for _, issue := range v.Issues {
		items = append(items, IssueRow(issue, maxWidth))
	}
	components.StyledList{
		Config:    cfg,
		Items:     items,
		Selection: v.Selection,
	}.Render(s, area)
}
