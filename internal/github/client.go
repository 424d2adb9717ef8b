// Package github fetches a user's contribution count for the current
// calendar day via the GitHub GraphQL API.
//
// The fetch is a single timeout-bounded attempt. Callers treat
// ErrUserNotFound and APIError differently at the HTTP boundary, so the
// two are kept distinct here; everything transient (timeouts included)
// collapses into APIError.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daisuke8000/grass-fireworks/internal/platform/timeouts"
)

// DefaultEndpoint is the public GitHub GraphQL API endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// ErrUserNotFound reports that the username does not exist on GitHub.
var ErrUserNotFound = errors.New("github user not found")

// APIError wraps any transient upstream failure: transport errors,
// timeouts, non-200 statuses, malformed payloads.
type APIError struct {
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	return "github api: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

const contributionQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
      }
    }
  }
}`

// Client queries the GitHub GraphQL API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

// Config holds the client inputs. Token is required by the GitHub
// GraphQL API even for public data.
type Config struct {
	Endpoint string        // empty selects DefaultEndpoint
	Token    string        //
	Timeout  time.Duration // zero selects timeouts.UpstreamFetch
	Now      func() time.Time
}

// NewClient builds a configured client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("github token is required")
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.UpstreamFetch
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		endpoint:   endpoint,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		now:        now,
	}, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"errors"`
}

// TodayContributionCount returns the user's contribution count for the
// current UTC calendar day.
func (c *Client) TodayContributionCount(ctx context.Context, username string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: empty username", ErrUserNotFound)
	}

	day := c.now().UTC().Truncate(24 * time.Hour)
	from := day.Format(time.RFC3339)
	to := day.Add(24*time.Hour - time.Second).Format(time.RFC3339)

	payload, err := json.Marshal(graphqlRequest{
		Query: contributionQuery,
		Variables: map[string]any{
			"login": username,
			"from":  from,
			"to":    to,
		},
	})
	if err != nil {
		return 0, &APIError{Message: "encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, &APIError{Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &APIError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, &APIError{Message: "read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, &APIError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var parsed graphqlResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, &APIError{Message: "decode response", Cause: err}
	}
	for _, gqlErr := range parsed.Errors {
		if gqlErr.Type == "NOT_FOUND" {
			return 0, fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
	}
	if len(parsed.Errors) > 0 {
		return 0, &APIError{Message: parsed.Errors[0].Message}
	}
	if parsed.Data.User == nil {
		return 0, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	return parsed.Data.User.ContributionsCollection.ContributionCalendar.TotalContributions, nil
}
