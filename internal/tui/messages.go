package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const toastDuration = 3 * time.Second

// toast is a transient warning shown in the status row.
type toast struct {
	message   string
	expiresAt time.Time
}

func newToast(message string) *toast {
	return &toast{message: message, expiresAt: time.Now().Add(toastDuration)}
}

func (t *toast) expired() bool {
	return time.Now().After(t.expiresAt)
}

func (t *toast) render() string {
	return theme.WarnStyle.Render("! " + t.message)
}

// loadedMsg carries a finished fetch back to the update loop.
type loadedMsg struct {
	result LoadResult
}

type toastExpiredMsg struct{}

func toastExpireCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}
