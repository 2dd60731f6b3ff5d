package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Quit     key.Binding
	Navigate key.Binding
	Back     key.Binding
	Next     key.Binding
	Previous key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "shift+tab"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
	}
}

// Event maps a key press to an Event. Unbound keys map to EventNone.
func (k KeyMap) Event(msg tea.KeyMsg) Event {
	switch {
	case key.Matches(msg, k.Quit):
		return EventQuit
	case key.Matches(msg, k.Navigate):
		return EventNavigateTo
	case key.Matches(msg, k.Back):
		return EventGoBack
	case key.Matches(msg, k.Next):
		return EventNextItem
	case key.Matches(msg, k.Previous):
		return EventPreviousItem
	default:
		return EventNone
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Navigate, k.Back, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
