package theme

import "github.com/charmbracelet/lipgloss"

var (
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	Teal         = lipgloss.Color("#94e2d5")
	WarnColor    = lipgloss.Color("#f9e2af")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	OverlayColor = lipgloss.Color("#45475a")
)

// Border colours for list panes.
var (
	FocusedBorder   = Accent
	UnfocusedBorder = OverlayColor
	DetailBorder    = Accent2
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	SectionStyle = lipgloss.NewStyle().
			Foreground(Accent2).
			Bold(true)
	TextStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	SubTextStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	LabelStyle = lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true)
	SelectedStyle = lipgloss.NewStyle().
			Reverse(true)
	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(OverlayColor)
	ScrollTrackStyle = lipgloss.NewStyle().
				Foreground(OverlayColor)
	ScrollThumbStyle = lipgloss.NewStyle().
				Foreground(Accent2)
)

var PanelBorder = lipgloss.RoundedBorder()
