package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui/components"
	"github.com/nicobailon/linear-tui/internal/tui/views"
)

const noticeIssueNotFound = "Issue not found"

// IssueSource is the part of the Linear API the controller reads from.
type IssueSource interface {
	Teams(ctx context.Context) ([]linear.Team, error)
	TeamIssues(ctx context.Context, teamID string) ([]linear.TeamIssue, error)
	Issue(ctx context.Context, issueID string) (*linear.IssueDetail, error)
}

type loadKind int

const (
	loadTeams loadKind = iota
	loadTeamIssues
	loadIssueDetail
)

func (k loadKind) String() string {
	switch k {
	case loadTeams:
		return "teams"
	case loadTeamIssues:
		return "team issues"
	default:
		return "issue detail"
	}
}

// LoadRequest names a fetch the controller needs before it can move on.
type LoadRequest struct {
	kind loadKind
	id   string
}

func TeamsRequest() LoadRequest { return LoadRequest{kind: loadTeams} }

// LoadResult is the outcome of Fetch, not yet applied to the controller.
type LoadResult struct {
	Request LoadRequest
	Err     error

	teams  []linear.Team
	issues []linear.TeamIssue
	detail *linear.IssueDetail
}

// Result reports what handling an event asks of the event loop.
type Result struct {
	Quit   bool
	Notice string
}

// Controller owns the navigation state and everything the screens draw from.
// It is not safe for concurrent use; only Fetch may run off the owning
// goroutine.
type Controller struct {
	api    IssueSource
	logger *slog.Logger

	state  State
	teams  []linear.Team
	issues []linear.TeamIssue
	detail *linear.IssueDetail

	teamSel   components.Selection
	issueSel  components.Selection
	scroll    components.Scroll
	indicator components.ScrollIndicator
}

func NewController(api IssueSource, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{api: api, logger: logger, state: StateTeamsList}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Teams() []linear.Team { return c.teams }
func (c *Controller) Issues() []linear.TeamIssue { return c.issues }
func (c *Controller) Detail() *linear.IssueDetail { return c.detail }
func (c *Controller) TeamSelection() components.Selection { return c.teamSel }
func (c *Controller) IssueSelection() components.Selection { return c.issueSel }
func (c *Controller) ScrollOffset() int { return c.scroll.Offset() }
func (c *Controller) ScrollIndicator() components.ScrollIndicator { return c.indicator }

func (c *Controller) LoadTeams(ctx context.Context) error {
	_, err := c.apply(c.Fetch(ctx, TeamsRequest()))
	return err
}

func (c *Controller) LoadTeamIssues(ctx context.Context, teamID string) error {
	_, err := c.apply(c.Fetch(ctx, LoadRequest{kind: loadTeamIssues, id: teamID}))
	return err
}

// LoadIssueDetail reports false when the issue does not exist; the previous
// detail is kept in that case.
func (c *Controller) LoadIssueDetail(ctx context.Context, issueID string) (bool, error) {
	notice, err := c.apply(c.Fetch(ctx, LoadRequest{kind: loadIssueDetail, id: issueID}))
	return notice == "", err
}

// Request returns the load that ev needs, if any. Only NavigateTo on a list
// with a selected item loads anything.
func (c *Controller) Request(ev Event) (LoadRequest, bool) {
	if ev != EventNavigateTo {
		return LoadRequest{}, false
	}
	switch c.state {
	case StateTeamsList:
		if team, ok := components.Current(c.teamSel, c.teams); ok {
			return LoadRequest{kind: loadTeamIssues, id: team.ID}, true
		}
	case StateIssuesList:
		if issue, ok := components.Current(c.issueSel, c.issues); ok {
			return LoadRequest{kind: loadIssueDetail, id: issue.ID}, true
		}
	}
	return LoadRequest{}, false
}

// Fetch performs the I/O for req. It touches nothing but the API handle.
func (c *Controller) Fetch(ctx context.Context, req LoadRequest) LoadResult {
	res := LoadResult{Request: req}
	switch req.kind {
	case loadTeams:
		res.teams, res.Err = c.api.Teams(ctx)
	case loadTeamIssues:
		res.issues, res.Err = c.api.TeamIssues(ctx, req.id)
	case loadIssueDetail:
		res.detail, res.Err = c.api.Issue(ctx, req.id)
	}
	return res
}

// apply stores the data of a finished load without changing screens.
func (c *Controller) apply(res LoadResult) (string, error) {
	req := res.Request
	if res.Err != nil {
		if req.kind == loadIssueDetail && errors.Is(res.Err, linear.ErrIssueNotFound) {
			c.logger.Info("issue not found", "issue", req.id)
			c.scroll.Reset()
			return noticeIssueNotFound, nil
		}
		return "", fmt.Errorf("load %s: %w", req.kind, res.Err)
	}

	switch req.kind {
	case loadTeams:
		c.teams = res.teams
		c.teamSel.Reset(len(c.teams))
		c.logger.Debug("teams loaded", "count", len(c.teams))
	case loadTeamIssues:
		c.issues = res.issues
		c.issueSel.Reset(len(c.issues))
		c.logger.Debug("team issues loaded", "team", req.id, "count", len(c.issues))
	case loadIssueDetail:
		c.detail = res.detail
		c.scroll.Reset()
		c.indicator = components.ScrollIndicator{}
		c.logger.Debug("issue detail loaded", "issue", req.id)
	}
	return "", nil
}

// Complete applies a finished load and then commits the screen change the
// load was made for. A returned error is fatal to the session.
func (c *Controller) Complete(res LoadResult) (string, error) {
	notice, err := c.apply(res)
	if err != nil || notice != "" {
		return notice, err
	}
	switch res.Request.kind {
	case loadTeamIssues:
		c.transition(StateIssuesList)
	case loadIssueDetail:
		c.transition(StateIssueDetail)
	}
	return "", nil
}

// Apply handles the events that never need a load.
func (c *Controller) Apply(ev Event) {
	switch ev {
	case EventGoBack:
		switch c.state {
		case StateIssuesList:
			c.transition(StateTeamsList)
		case StateIssueDetail:
			c.transition(StateIssuesList)
		}
	case EventNextItem:
		switch c.state {
		case StateTeamsList:
			c.teamSel.Next(len(c.teams))
		case StateIssuesList:
			c.issueSel.Next(len(c.issues))
		case StateIssueDetail:
			c.scroll.Advance()
		}
	case EventPreviousItem:
		switch c.state {
		case StateTeamsList:
			c.teamSel.Previous(len(c.teams))
		case StateIssuesList:
			c.issueSel.Previous(len(c.issues))
		case StateIssueDetail:
			c.scroll.Retreat()
		}
	}
}

// Handle runs ev to completion, loading synchronously when it has to.
func (c *Controller) Handle(ctx context.Context, ev Event) (Result, error) {
	if ev == EventQuit {
		return Result{Quit: true}, nil
	}
	if req, ok := c.Request(ev); ok {
		notice, err := c.Complete(c.Fetch(ctx, req))
		return Result{Notice: notice}, err
	}
	c.Apply(ev)
	return Result{}, nil
}

func (c *Controller) transition(to State) {
	c.logger.Debug("navigate", "from", c.state, "to", to)
	c.state = to
}

// Render draws the active screen into area. In the detail screen the clamped
// scroll offset is kept for the next event.
func (c *Controller) Render(s *components.Surface, area components.Rect) {
	switch c.state {
	case StateTeamsList, StateIssuesList:
		components.TwoColumnLayout{
			Left: views.TeamsList{
				Teams:     c.teams,
				Selection: &c.teamSel,
				Focused:   c.state == StateTeamsList,
			},
			Right: views.IssuesList{
				Issues:    c.issues,
				Selection: &c.issueSel,
				Focused:   c.state == StateIssuesList,
			},
		}.Render(s, area)
	case StateIssueDetail:
		c.indicator = views.IssueDetail{Detail: c.detail, Offset: c.scroll.Offset()}.Draw(s, area)
		c.scroll.Set(c.indicator.Position)
	}
}
