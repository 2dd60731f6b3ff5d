package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui/components"
)

type fakeSource struct {
	teams      []linear.Team
	issues     map[string][]linear.TeamIssue
	details    map[string]*linear.IssueDetail
	teamsErr   error
	issuesErr  error
	issueCalls []string
	teamCalls  []string
}

func (f *fakeSource) Teams(context.Context) ([]linear.Team, error) {
	return f.teams, f.teamsErr
}

func (f *fakeSource) TeamIssues(_ context.Context, teamID string) ([]linear.TeamIssue, error) {
	f.teamCalls = append(f.teamCalls, teamID)
	if f.issuesErr != nil {
		return nil, f.issuesErr
	}
	issues, ok := f.issues[teamID]
	if !ok {
		return nil, linear.ErrTeamNotFound
	}
	return issues, nil
}

func (f *fakeSource) Issue(_ context.Context, issueID string) (*linear.IssueDetail, error) {
	f.issueCalls = append(f.issueCalls, issueID)
	detail, ok := f.details[issueID]
	if !ok {
		return nil, linear.ErrIssueNotFound
	}
	return detail, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		teams: []linear.Team{
			{ID: "t1", Name: "Eng", IssueCount: 5},
			{ID: "t2", Name: "Design", IssueCount: 2},
		},
		issues: map[string][]linear.TeamIssue{
			"t1": {{ID: "i1", Title: "Bug"}},
			"t2": {{ID: "i2", Title: "Mockups"}, {ID: "i3", Title: "Icons"}},
			"t3": {},
		},
		details: map[string]*linear.IssueDetail{
			"i1": {Title: "Bug", URL: "https://linear.app/x/ENG-1"},
			"i2": {Title: "Mockups", URL: "https://linear.app/x/DES-1", Description: "draw things"},
		},
	}
}

func newLoadedController(t *testing.T, src *fakeSource) *Controller {
	t.Helper()
	c := NewController(src, discardLogger())
	if err := c.LoadTeams(context.Background()); err != nil {
		t.Fatalf("LoadTeams: %v", err)
	}
	return c
}

func handle(t *testing.T, c *Controller, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if _, err := c.Handle(context.Background(), ev); err != nil {
			t.Fatalf("Handle(%s): %v", ev, err)
		}
	}
}

func selectedIndex(t *testing.T, sel components.Selection) int {
	t.Helper()
	i, ok := sel.Index()
	if !ok {
		t.Fatal("expected a selection")
	}
	return i
}

func TestSelectTeamAndOpenIssues(t *testing.T) {
	src := newFakeSource()
	c := newLoadedController(t, src)

	if c.State() != StateTeamsList {
		t.Fatalf("initial state = %s", c.State())
	}
	if got := selectedIndex(t, c.TeamSelection()); got != 0 {
		t.Fatalf("initial team selection = %d", got)
	}

	handle(t, c, EventNextItem)
	if got := selectedIndex(t, c.TeamSelection()); got != 1 {
		t.Fatalf("team selection after next = %d", got)
	}

	handle(t, c, EventNavigateTo)
	if c.State() != StateIssuesList {
		t.Fatalf("state = %s, want issues", c.State())
	}
	if len(src.teamCalls) != 1 || src.teamCalls[0] != "t2" {
		t.Fatalf("team loads = %v", src.teamCalls)
	}
	if len(c.Issues()) != 2 {
		t.Fatalf("issues = %v", c.Issues())
	}
	if got := selectedIndex(t, c.IssueSelection()); got != 0 {
		t.Fatalf("issue selection = %d", got)
	}
}

func TestOpenIssueAndGoBack(t *testing.T) {
	src := newFakeSource()
	c := newLoadedController(t, src)
	handle(t, c, EventNavigateTo)

	handle(t, c, EventNavigateTo)
	if c.State() != StateIssueDetail {
		t.Fatalf("state = %s, want detail", c.State())
	}
	if c.Detail() == nil || c.Detail().Title != "Bug" {
		t.Fatalf("detail = %+v", c.Detail())
	}
	if c.ScrollOffset() != 0 {
		t.Fatalf("scroll offset = %d", c.ScrollOffset())
	}

	handle(t, c, EventGoBack)
	if c.State() != StateIssuesList {
		t.Fatalf("state = %s, want issues", c.State())
	}
	if len(src.teamCalls) != 1 {
		t.Fatalf("issues reloaded on back: %v", src.teamCalls)
	}

	handle(t, c, EventGoBack)
	if c.State() != StateTeamsList {
		t.Fatalf("state = %s, want teams", c.State())
	}
	handle(t, c, EventGoBack)
	if c.State() != StateTeamsList {
		t.Fatalf("back from teams changed state to %s", c.State())
	}
}

func TestDetailScrollClampsAtContentLength(t *testing.T) {
	src := newFakeSource()
	lines := make([]string, 44)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	// URL, blank, Title, blank, header, 44 lines, blank = 50 lines.
	src.details["i1"] = &linear.IssueDetail{Title: "Bug", URL: "u", Description: strings.Join(lines, "\n")}

	c := newLoadedController(t, src)
	handle(t, c, EventNavigateTo, EventNavigateTo)

	s := components.NewSurface(60, 12)
	for i := 0; i < 60; i++ {
		handle(t, c, EventNextItem)
		c.Render(s, s.Bounds())
	}
	if c.ScrollOffset() != 50 {
		t.Fatalf("scroll offset = %d, want 50", c.ScrollOffset())
	}
	if ind := c.ScrollIndicator(); ind.ContentLength != 50 || ind.Position != 50 {
		t.Fatalf("indicator = %+v", ind)
	}

	for i := 0; i < 80; i++ {
		handle(t, c, EventPreviousItem)
	}
	if c.ScrollOffset() != 0 {
		t.Fatalf("scroll offset = %d, want 0", c.ScrollOffset())
	}
}

func TestScrollUnclampedUntilRender(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	handle(t, c, EventNavigateTo, EventNavigateTo)
	for i := 0; i < 10; i++ {
		handle(t, c, EventNextItem)
	}
	if c.ScrollOffset() != 10 {
		t.Fatalf("scroll offset = %d before render", c.ScrollOffset())
	}
	s := components.NewSurface(40, 10)
	c.Render(s, s.Bounds())
	if c.ScrollOffset() != 4 {
		t.Fatalf("scroll offset = %d after render, want 4", c.ScrollOffset())
	}
}

func TestNewDetailResetsScroll(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	handle(t, c, EventNavigateTo, EventNavigateTo, EventNextItem, EventNextItem)
	if c.ScrollOffset() != 2 {
		t.Fatalf("scroll offset = %d", c.ScrollOffset())
	}
	handle(t, c, EventGoBack, EventNavigateTo)
	if c.ScrollOffset() != 0 {
		t.Fatalf("scroll offset = %d after reopening", c.ScrollOffset())
	}
}

func TestLoadingTeamIssuesResetsSelection(t *testing.T) {
	src := newFakeSource()
	c := newLoadedController(t, src)
	ctx := context.Background()

	handle(t, c, EventNextItem, EventNavigateTo, EventNextItem)
	if got := selectedIndex(t, c.IssueSelection()); got != 1 {
		t.Fatalf("issue selection = %d", got)
	}

	if err := c.LoadTeamIssues(ctx, "t2"); err != nil {
		t.Fatalf("LoadTeamIssues: %v", err)
	}
	if got := selectedIndex(t, c.IssueSelection()); got != 0 {
		t.Fatalf("issue selection after reload = %d", got)
	}

	if err := c.LoadTeamIssues(ctx, "t3"); err != nil {
		t.Fatalf("LoadTeamIssues: %v", err)
	}
	if _, ok := c.IssueSelection().Index(); ok {
		t.Fatal("empty issue set should leave nothing selected")
	}

	handle(t, c, EventNavigateTo)
	if c.State() != StateIssuesList || len(src.issueCalls) != 0 {
		t.Fatalf("navigate with nothing selected: state=%s calls=%v", c.State(), src.issueCalls)
	}
}

func TestLoadIssueDetailResetsScroll(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	handle(t, c, EventNavigateTo, EventNavigateTo, EventNextItem)

	found, err := c.LoadIssueDetail(context.Background(), "i2")
	if err != nil || !found {
		t.Fatalf("LoadIssueDetail = %v, %v", found, err)
	}
	if c.ScrollOffset() != 0 {
		t.Fatalf("scroll offset = %d", c.ScrollOffset())
	}
	if c.Detail().Title != "Mockups" {
		t.Fatalf("detail = %+v", c.Detail())
	}
}

func TestIssueNotFoundKeepsPreviousDetail(t *testing.T) {
	src := newFakeSource()
	src.issues["t1"] = append(src.issues["t1"], linear.TeamIssue{ID: "gone", Title: "Deleted"})
	c := newLoadedController(t, src)
	handle(t, c, EventNavigateTo, EventNavigateTo, EventGoBack, EventNextItem)

	res, err := c.Handle(context.Background(), EventNavigateTo)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Notice != noticeIssueNotFound {
		t.Fatalf("notice = %q", res.Notice)
	}
	if c.State() != StateIssuesList {
		t.Fatalf("state = %s, want issues", c.State())
	}
	if c.Detail() == nil || c.Detail().Title != "Bug" {
		t.Fatalf("previous detail replaced: %+v", c.Detail())
	}

	found, err := c.LoadIssueDetail(context.Background(), "gone")
	if err != nil || found {
		t.Fatalf("LoadIssueDetail = %v, %v", found, err)
	}
}

func TestFetchFailureIsFatal(t *testing.T) {
	src := newFakeSource()
	src.issuesErr = errors.New("connection reset")
	c := newLoadedController(t, src)

	_, err := c.Handle(context.Background(), EventNavigateTo)
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if c.State() != StateTeamsList {
		t.Fatalf("state changed after failed load: %s", c.State())
	}
}

func TestTeamNotFoundIsFatal(t *testing.T) {
	src := newFakeSource()
	delete(src.issues, "t1")
	c := newLoadedController(t, src)

	_, err := c.Handle(context.Background(), EventNavigateTo)
	if !errors.Is(err, linear.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestLoadTeamsFailure(t *testing.T) {
	src := newFakeSource()
	src.teamsErr = errors.New("unauthorized")
	c := NewController(src, discardLogger())
	if err := c.LoadTeams(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestTransitionWaitsForComplete(t *testing.T) {
	c := newLoadedController(t, newFakeSource())

	req, ok := c.Request(EventNavigateTo)
	if !ok {
		t.Fatal("expected a load request")
	}
	res := c.Fetch(context.Background(), req)
	if c.State() != StateTeamsList || c.Issues() != nil {
		t.Fatalf("fetch mutated controller: state=%s issues=%v", c.State(), c.Issues())
	}
	if _, err := c.Complete(res); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if c.State() != StateIssuesList || len(c.Issues()) != 1 {
		t.Fatalf("after complete: state=%s issues=%v", c.State(), c.Issues())
	}
}

func TestRequestOnlyForNavigate(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	for _, ev := range []Event{EventNone, EventQuit, EventGoBack, EventNextItem, EventPreviousItem} {
		if _, ok := c.Request(ev); ok {
			t.Fatalf("%s should not load", ev)
		}
	}
}

func TestQuitFromAnyState(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	for _, setup := range [][]Event{nil, {EventNavigateTo}, {EventNavigateTo}} {
		handle(t, c, setup...)
		res, err := c.Handle(context.Background(), EventQuit)
		if err != nil || !res.Quit {
			t.Fatalf("quit in %s = %+v, %v", c.State(), res, err)
		}
	}
}

func TestEmptyTeamsNavigationIsNoop(t *testing.T) {
	src := newFakeSource()
	src.teams = nil
	c := newLoadedController(t, src)
	handle(t, c, EventNextItem, EventPreviousItem, EventNavigateTo)
	if c.State() != StateTeamsList {
		t.Fatalf("state = %s", c.State())
	}
	if _, ok := c.TeamSelection().Index(); ok {
		t.Fatal("no teams should mean no selection")
	}
}

func TestRenderDispatch(t *testing.T) {
	c := newLoadedController(t, newFakeSource())
	s := components.NewSurface(80, 10)

	c.Render(s, s.Bounds())
	out := ansi.Strip(s.String())
	for _, want := range []string{"Teams", "Eng", "Design", "Select a team to view issues"} {
		if !strings.Contains(out, want) {
			t.Fatalf("teams screen missing %q:\n%s", want, out)
		}
	}

	handle(t, c, EventNavigateTo)
	s = components.NewSurface(80, 10)
	c.Render(s, s.Bounds())
	out = ansi.Strip(s.String())
	for _, want := range []string{"Teams", "Issues", "Bug", "No description"} {
		if !strings.Contains(out, want) {
			t.Fatalf("issues screen missing %q:\n%s", want, out)
		}
	}

	handle(t, c, EventNavigateTo)
	s = components.NewSurface(80, 10)
	c.Render(s, s.Bounds())
	out = ansi.Strip(s.String())
	for _, want := range []string{"Issue Detail", "URL: https://linear.app/x/ENG-1", "Title: Bug"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Teams") {
		t.Fatalf("detail screen should be full width:\n%s", out)
	}
}
