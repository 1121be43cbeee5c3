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

	"linear-updates/internal/domain"
)

// DefaultBaseURL is Linear's public GraphQL endpoint.
const DefaultBaseURL = "https://api.linear.app/graphql"

// projectUpdatesQuery fetches every project update with its embedded project.
const projectUpdatesQuery = `
query GetProjectUpdates {
  projectUpdates {
    nodes {
      id
      createdAt
      updatedAt
      body
      url
      user {
        name
        email
      }
      project {
        id
        name
        description
        state
        priority
        status {
          id
          name
          type
        }
      }
    }
  }
}`

// Client implements ports.UpdateSource against the Linear GraphQL API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// ListProjectUpdates performs the one fixed GraphQL POST and returns the
// nodes at data.projectUpdates.nodes mapped to domain types. Every failure
// mode is terminal for the caller: transport errors, non-200 statuses,
// GraphQL-level errors, and responses missing the expected path.
func (c *Client) ListProjectUpdates(ctx context.Context) ([]domain.Update, error) {
	if c.apiKey == "" {
		return nil, errors.New("missing api key")
	}

	payload, err := json.Marshal(graphqlRequest{
		Query:     projectUpdatesQuery,
		Variables: map[string]any{},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	// Linear expects the raw key, no "Bearer" prefix.
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to Linear API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error making request to Linear API: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedError{Body: string(body)}
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			msgs[i] = e.Message
		}
		return nil, &GraphQLError{Messages: msgs}
	}
	if env.Data == nil || env.Data.ProjectUpdates == nil || env.Data.ProjectUpdates.Nodes == nil {
		return nil, &MalformedError{Body: string(body)}
	}

	nodes := *env.Data.ProjectUpdates.Nodes
	c.log.Debug("fetched project updates", slog.Int("count", len(nodes)))

	out := make([]domain.Update, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.toDomain())
	}
	return out, nil
}

// graphqlRequest is the POST body sent to the GraphQL endpoint.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// envelope mirrors the GraphQL response envelope. Nodes is a pointer so a
// missing data.projectUpdates.nodes path is distinguishable from an empty
// list.
type envelope struct {
	Data *struct {
		ProjectUpdates *struct {
			Nodes *[]rawUpdate `json:"nodes"`
		} `json:"projectUpdates"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// rawUpdate mirrors one node from the Linear API. Nested objects are
// pointers; absent ones map to zero-valued domain fields.
type rawUpdate struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	User      *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Project *struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		State       string `json:"state"`
		Priority    int    `json:"priority"`
		Status      *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"status"`
	} `json:"project"`
}

func (r rawUpdate) toDomain() domain.Update {
	u := domain.Update{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Body:      r.Body,
		URL:       r.URL,
	}
	if r.User != nil {
		u.Author = domain.Author{Name: r.User.Name, Email: r.User.Email}
	}
	if r.Project != nil {
		u.Project = domain.Project{
			ID:          r.Project.ID,
			Name:        r.Project.Name,
			Description: r.Project.Description,
			State:       r.Project.State,
			Priority:    r.Project.Priority,
		}
		if r.Project.Status != nil {
			u.Project.Status = domain.ProjectStatus{
				ID:   r.Project.Status.ID,
				Name: r.Project.Status.Name,
				Type: r.Project.Status.Type,
			}
		}
	}
	return u
}
