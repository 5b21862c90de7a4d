// Package github retrieves release notes from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/runoshun/deputui/internal/domain"
)

// Ensure Client implements domain.NotesSource.
var _ domain.NotesSource = (*Client)(nil)

// EmptyNotes is returned when a release exists but has no body.
const EmptyNotes = "Empty release notes"

// Release is the subset of a GitHub release that is decoded.
type Release struct {
	Body    *string `json:"body"`
	TagName string  `json:"tag_name"`
	Name    string  `json:"name"`
	HTMLURL string  `json:"html_url"`
}

// Client is a GitHub releases client.
// Fields are ordered to minimize memory padding.
type Client struct {
	http      *http.Client
	logger    domain.Logger
	apiURL    string
	token     string
	userAgent string
}

// NewClient creates a Client. An empty token sends unauthenticated requests.
func NewClient(apiURL, token, userAgent string, logger domain.Logger) *Client {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		http:      http.DefaultClient,
		logger:    logger,
		apiURL:    strings.TrimRight(apiURL, "/"),
		token:     token,
		userAgent: userAgent,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Name identifies the source.
func (c *Client) Name() string { return "github" }

// FetchNotes returns the notes of the release matching r's version.
func (c *Client) FetchNotes(ctx context.Context, r domain.Release) (string, error) {
	repo, err := ParseRepo(r.RepositoryURL)
	if err != nil {
		return "", err
	}

	rel, err := c.FetchReleaseByVersion(ctx, repo, r.Semver)
	if err != nil {
		return "", err
	}
	if rel.Body == nil || strings.TrimSpace(*rel.Body) == "" {
		return EmptyNotes, nil
	}
	return *rel.Body, nil
}

// FetchReleaseByVersion looks the release up by tag "version", then "v"+version.
// It returns domain.ErrNotFound only when every tag was missing.
func (c *Client) FetchReleaseByVersion(ctx context.Context, repo Repo, version string) (*Release, error) {
	var lastErr error
	allNotFound := true

	for _, tag := range []string{version, "v" + version} {
		rel, err := c.FetchRelease(ctx, repo, tag)
		if err == nil {
			return rel, nil
		}
		c.logger.Debug("notes", fmt.Sprintf("%s tag %s: %v", repo, tag, err))
		if !errors.Is(err, domain.ErrNotFound) {
			allNotFound = false
			lastErr = err
		}
		if ctx.Err() != nil {
			break
		}
	}

	if allNotFound {
		return nil, fmt.Errorf("no release for %s %s: %w", repo, version, domain.ErrNotFound)
	}
	return nil, lastErr
}

// FetchRelease retrieves the release with the given tag.
func (c *Client) FetchRelease(ctx context.Context, repo Repo, tag string) (*Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s",
		c.apiURL, url.PathEscape(repo.Owner), url.PathEscape(repo.Name), url.PathEscape(tag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request release %s: %w: %w", tag, domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("release %s: %w", tag, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("release %s: %w: GitHub API returned status %d", tag, domain.ErrNetwork, resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release %s: %w: %w", tag, domain.ErrParse, err)
	}
	return &rel, nil
}
