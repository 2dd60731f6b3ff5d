package tui

// State identifies the active screen.
type State int

const (
	StateTeamsList State = iota
	StateIssuesList
	StateIssueDetail
)

func (s State) String() string {
	switch s {
	case StateTeamsList:
		return "teams"
	case StateIssuesList:
		return "issues"
	case StateIssueDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Event is an input signal with the physical key already stripped away.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventNavigateTo
	EventGoBack
	EventNextItem
	EventPreviousItem
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventNavigateTo:
		return "navigate"
	case EventGoBack:
		return "back"
	case EventNextItem:
		return "next"
	case EventPreviousItem:
		return "previous"
	default:
		return "none"
	}
}
