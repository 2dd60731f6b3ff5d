package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func fetchCmd(ctx context.Context, ctrl *Controller, req LoadRequest) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{result: ctrl.Fetch(ctx, req)}
	}
}
