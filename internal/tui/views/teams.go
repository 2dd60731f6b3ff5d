package views

import (
	"fmt"

	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui/components"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const teamsTitle = "Teams"

type TeamsList struct {
	Teams     []linear.Team
	Selection *components.Selection
	Focused   bool
}

func TeamRow(team linear.Team) components.Text {
	return components.Text{
		{components.Styled(team.Name, theme.TextStyle)},
		{components.Styled(fmt.Sprintf("(%d issues)", team.IssueCount), theme.DimStyle)},
	}
}

func (v TeamsList) Render(s *components.Surface, area components.Rect) {
	items := make([]components.Text, 0, len(v.Teams))
	for _, team := range v.Teams {
		items = append(items, TeamRow(team))
	}
	components.StyledList{
		Config:    components.ListConfig{Title: teamsTitle, Focused: v.Focused},
		Items:     items,
		Selection: v.Selection,
	}.Render(s, area)
}
