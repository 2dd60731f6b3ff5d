package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/linear-tui/internal/tui/components"
	"github.com/nicobailon/linear-tui/internal/tui/theme"
)

const statusHeight = 1

type model struct {
	ctx     context.Context
	ctrl    *Controller
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	logger  *slog.Logger
	loading bool
	toast   *toast
	width   int
	height  int
	err     error
}

type App struct {
	api    IssueSource
	logger *slog.Logger
}

func New(api IssueSource, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{api: api, logger: logger}
}

// Run blocks until the user quits. A failed load ends the session and is
// returned once the terminal has been restored.
func (a *App) Run(ctx context.Context) error {
	m := initialModel(ctx, a.api, a.logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := finalModel.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func initialModel(ctx context.Context, api IssueSource, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	h := help.New()
	h.Styles.ShortKey = theme.KeyStyle
	h.Styles.ShortDesc = theme.DimStyle
	h.Styles.ShortSeparator = theme.SeparatorStyle

	return model{
		ctx:     ctx,
		ctrl:    NewController(api, logger),
		keys:    DefaultKeyMap(),
		help:    h,
		spinner: sp,
		logger:  logger,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.ctx, m.ctrl, TeamsRequest()), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return handleKey(&m, msg)

	case loadedMsg:
		return handleLoaded(&m, msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		if m.toast != nil && m.toast.expired() {
			m.toast = nil
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := components.NewSurface(m.width, max(m.height-statusHeight, 0))
	m.ctrl.Render(s, s.Bounds())
	return s.String() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	var line string
	switch {
	case m.loading:
		line = m.spinner.View() + theme.DimStyle.Render(" Loading...")
	case m.toast != nil:
		line = m.toast.render()
	default:
		line = m.help.View(m.keys)
	}
	return ansi.Truncate(line, m.width, "")
}
