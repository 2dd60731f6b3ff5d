package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const DefaultEndpoint = "https://api.linear.app/graphql"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 16 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// APIKey is sent verbatim in the Authorization header.
	APIKey string
	// Endpoint defaults to DefaultEndpoint.
	Endpoint string
	// Timeout applies to each request when HTTPClient is nil.
	Timeout time.Duration
	// HTTPClient is used for all requests. If nil, one is built from Timeout.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the Linear GraphQL API. It is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("linear: APIKey is required")
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var data teamsData
	if err := c.do(ctx, "Teams", teamsQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return data.Teams.Nodes, nil
}

// TeamIssues returns ErrTeamNotFound when the API has no team with that id.
func (c *Client) TeamIssues(ctx context.Context, teamID string) ([]TeamIssue, error) {
	var data teamIssuesData
	vars := map[string]any{"teamId": teamID}
	if err := c.do(ctx, "TeamIssues", teamIssuesQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("fetch issues for team %s: %w", teamID, err)
	}
	if data.Team == nil {
		return nil, ErrTeamNotFound
	}
	return data.Team.Issues.Nodes, nil
}

// Issue returns ErrIssueNotFound when the API has no issue with that id.
func (c *Client) Issue(ctx context.Context, issueID string) (*IssueDetail, error) {
	var data issueData
	vars := map[string]any{"issueId": issueID}
	if err := c.do(ctx, "Issue", issueQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("fetch issue %s: %w", issueID, err)
	}
	if data.Issue == nil {
		return nil, ErrIssueNotFound
	}
	detail := &IssueDetail{
		Title:    data.Issue.Title,
		URL:      data.Issue.URL,
		Comments: data.Issue.Comments.Nodes,
	}
	if data.Issue.Description != nil {
		detail.Description = *data.Issue.Description
	}
	return detail, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []GraphQLErrorEntry `json:"errors"`
}

func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	encoded, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("graphql request",
		"operation", op,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return &GraphQLError{Errors: envelope.Errors}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("response has no data")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
