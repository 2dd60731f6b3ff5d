package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapEvents(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Event
	}{
		{"q quits", runeKey('q'), EventQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, EventQuit},
		{"enter navigates", tea.KeyMsg{Type: tea.KeyEnter}, EventNavigateTo},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, EventGoBack},
		{"backspace goes back", tea.KeyMsg{Type: tea.KeyBackspace}, EventGoBack},
		{"shift+tab goes back", tea.KeyMsg{Type: tea.KeyShiftTab}, EventGoBack},
		{"down is next", tea.KeyMsg{Type: tea.KeyDown}, EventNextItem},
		{"j is next", runeKey('j'), EventNextItem},
		{"up is previous", tea.KeyMsg{Type: tea.KeyUp}, EventPreviousItem},
		{"k is previous", runeKey('k'), EventPreviousItem},
		{"other rune ignored", runeKey('x'), EventNone},
		{"tab ignored", tea.KeyMsg{Type: tea.KeyTab}, EventNone},
		{"capital Q ignored", runeKey('Q'), EventNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Event(tt.msg); got != tt.want {
				t.Fatalf("Event(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}
