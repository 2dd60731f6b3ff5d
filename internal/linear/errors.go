package linear

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTeamNotFound  = errors.New("linear: team not found")
	ErrIssueNotFound = errors.New("linear: issue not found")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("linear: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("linear: unexpected status %d: %s", e.StatusCode, body)
}

type GraphQLErrorEntry struct {
	Message string `json:"message"`
}

// GraphQLError carries the errors array of a GraphQL response.
type GraphQLError struct {
	Errors []GraphQLErrorEntry
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		msgs = append(msgs, entry.Message)
	}
	return "linear: graphql: " + strings.Join(msgs, "; ")
}
