// Package toggl is a thin client for the Toggl Track API v9, covering the
// handful of endpoints the hours sync needs.
package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.track.toggl.com/api/v9"

// Client talks to the Toggl Track API with token authentication.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a Toggl API client with the provided API token.
func NewClient(apiToken string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiToken:   apiToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clients lists the Toggl clients visible to the token.
func (c *Client) Clients(ctx context.Context) ([]TrackClient, error) {
	var clients []TrackClient
	if err := c.do(ctx, http.MethodGet, "/me/clients", nil, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Projects lists all projects visible to the token.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/me/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ClientProjects lists the projects belonging to one Toggl client.
func (c *Client) ClientProjects(ctx context.Context, clientID int64) ([]Project, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []Project
	for _, p := range projects {
		if p.ClientID == clientID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// TimeEntries lists time entries in [start, end). The API treats the end
// date as exclusive.
func (c *Client) TimeEntries(ctx context.Context, start, end time.Time) ([]TimeEntry, error) {
	query := url.Values{}
	query.Set("start_date", start.UTC().Format(time.RFC3339))
	query.Set("end_date", end.UTC().Format(time.RFC3339))

	var entries []TimeEntry
	if err := c.do(ctx, http.MethodGet, "/me/time_entries", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DefaultWorkspaceID returns the token's default workspace.
func (c *Client) DefaultWorkspaceID(ctx context.Context) (int64, error) {
	var m me
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &m); err != nil {
		return 0, err
	}
	return m.DefaultWorkspaceID, nil
}

// CreateTimeEntry creates a time entry in the entry's workspace.
func (c *Client) CreateTimeEntry(ctx context.Context, entry NewTimeEntry) (*TimeEntry, error) {
	path := fmt.Sprintf("/workspaces/%d/time_entries", entry.WorkspaceID)
	var created TimeEntry
	if err := c.do(ctx, http.MethodPost, path, nil, entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("toggl: encoding %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("toggl: building %s %s: %w", method, path, err)
	}
	req.SetBasicAuth(c.apiToken, "api_token")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("toggl: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("toggl: %s %s: unexpected status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("toggl: decoding %s %s response: %w", method, path, err)
	}
	return nil
}
