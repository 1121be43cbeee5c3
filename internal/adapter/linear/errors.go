package linear

import (
	"fmt"
	"strings"
)

// StatusError reports a non-200 HTTP response, carrying the raw body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, e.Body)
}

// GraphQLError reports the messages of a GraphQL-level errors array, one
// per line.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	lines := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		lines[i] = "  - " + m
	}
	return "GraphQL Errors:\n" + strings.Join(lines, "\n")
}

// MalformedError reports a 200 response that does not carry the expected
// data.projectUpdates.nodes path, including the raw body for diagnosis.
type MalformedError struct {
	Body string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("unexpected response format\nResponse: %s", e.Body)
}
