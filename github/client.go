// Package github is a thin client for the GitHub REST v3 API. It covers
// exactly the surface issuepad needs: listing repositories and issues,
// creating and mutating issues, and reading and writing comments. No
// business logic lives here; responses are converted to the internal model
// at this boundary and errors are surfaced as typed failures.
//
// The client is deliberately simple: a single fixed page size, no retries,
// and no rate-limit handling. Callers re-trigger failed actions manually.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amonks/issuepad/issue"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultPageSize is the fixed per_page ceiling for list calls.
const DefaultPageSize = 100

// StateFilter selects which issues a list call returns.
type StateFilter string

const (
	// FilterOpen returns only open issues.
	FilterOpen StateFilter = "open"

	// FilterClosed returns only closed issues.
	FilterClosed StateFilter = "closed"

	// FilterAll returns open and closed issues.
	FilterAll StateFilter = "all"
)

// IsValid returns true if the filter is a known valid value.
func (f StateFilter) IsValid() bool {
	switch f {
	case FilterOpen, FilterClosed, FilterAll:
		return true
	}
	return false
}

// Config carries everything the client needs. It is passed explicitly; the
// client keeps no ambient state.
type Config struct {
	// Token is the bearer credential for the API.
	Token string

	// Username scopes repository listing.
	Username string

	// BaseURL overrides the API endpoint, primarily for tests. Empty
	// means DefaultBaseURL.
	BaseURL string

	// PageSize overrides the per_page ceiling. Zero means
	// DefaultPageSize.
	PageSize int
}

// Client calls the GitHub REST API.
type Client struct {
	baseURL  string
	token    string
	username string
	pageSize int
	client   *http.Client
}

// NewClient creates a client from the given configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		baseURL:  baseURL,
		token:    cfg.Token,
		username: cfg.Username,
		pageSize: pageSize,
		client:   &http.Client{},
	}
}

// ListRepos returns the configured user's repositories.
func (c *Client) ListRepos(ctx context.Context) ([]issue.Repository, error) {
	if c.username == "" {
		return nil, ErrNoUser
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.pageSize))
	query.Set("sort", "updated")

	var repos []repoJSON
	path := fmt.Sprintf("/users/%s/repos", url.PathEscape(c.username))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &repos); err != nil {
		return nil, err
	}

	result := make([]issue.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, repo.toRepository())
	}
	return result, nil
}

// ListIssues returns a repository's issues matching the state filter.
// Pull requests, which the endpoint interleaves, are filtered out.
func (c *Client) ListIssues(ctx context.Context, owner, repo string, state StateFilter) ([]issue.Issue, error) {
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid state filter %q", state)
	}

	query := url.Values{}
	query.Set("state", string(state))
	query.Set("per_page", strconv.Itoa(c.pageSize))

	var items []issueJSON
	path := fmt.Sprintf("/repos/%s/%s/issues", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &items); err != nil {
		return nil, err
	}

	result := make([]issue.Issue, 0, len(items))
	for _, item := range items {
		if item.PullRequest != nil {
			continue
		}
		result = append(result, item.toIssue())
	}
	return result, nil
}

// GetIssue returns a single issue by number.
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (issue.Issue, error) {
	var item issueJSON
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", url.PathEscape(owner), url.PathEscape(repo), number)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &item); err != nil {
		return issue.Issue{}, err
	}
	return item.toIssue(), nil
}

// CreateIssue opens a new issue and returns it.
func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string) (issue.Issue, error) {
	payload := map[string]string{"title": title}
	if body != "" {
		payload["body"] = body
	}

	var item issueJSON
	path := fmt.Sprintf("/repos/%s/%s/issues", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &item); err != nil {
		return issue.Issue{}, err
	}
	return item.toIssue(), nil
}

// UpdateIssue changes an issue's title and body.
func (c *Client) UpdateIssue(ctx context.Context, owner, repo string, number int, title, body string) (issue.Issue, error) {
	payload := map[string]string{"title": title, "body": body}

	var item issueJSON
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", url.PathEscape(owner), url.PathEscape(repo), number)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, &item); err != nil {
		return issue.Issue{}, err
	}
	return item.toIssue(), nil
}

// SetIssueState opens or closes an issue.
func (c *Client) SetIssueState(ctx context.Context, owner, repo string, number int, state issue.State) (issue.Issue, error) {
	if !state.IsValid() {
		return issue.Issue{}, fmt.Errorf("invalid issue state %q", state)
	}

	payload := map[string]string{"state": string(state)}

	var item issueJSON
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", url.PathEscape(owner), url.PathEscape(repo), number)
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, &item); err != nil {
		return issue.Issue{}, err
	}
	return item.toIssue(), nil
}

// ListComments returns an issue's comments.
func (c *Client) ListComments(ctx context.Context, owner, repo string, number int) ([]issue.Comment, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.pageSize))

	var items []commentJSON
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", url.PathEscape(owner), url.PathEscape(repo), number)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &items); err != nil {
		return nil, err
	}

	result := make([]issue.Comment, 0, len(items))
	for _, item := range items {
		result = append(result, item.toComment())
	}
	return result, nil
}

// CreateComment adds a comment to an issue.
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) (issue.Comment, error) {
	payload := map[string]string{"body": body}

	var item commentJSON
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", url.PathEscape(owner), url.PathEscape(repo), number)
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &item); err != nil {
		return issue.Comment{}, err
	}
	return item.toComment(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, dest any) error {
	if c.token == "" {
		return ErrNoToken
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readErrorResponse(resp, requestURL)
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response from %s: %w", requestURL, err)
	}
	return nil
}

func readErrorResponse(resp *http.Response, requestURL string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, URL: requestURL}

	var payload struct {
		Message string `json:"message"`
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}

	return apiErr
}
