// Package npm fetches package metadata from an npm-compatible registry.
package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/runoshun/deputui/internal/domain"
)

// Ensure Client implements domain.Registry.
var _ domain.Registry = (*Client)(nil)

// packageDocument is the subset of a registry packument that is decoded.
type packageDocument struct {
	Versions   map[string]struct{} `json:"versions"`
	Name       string              `json:"name"`
	Repository repositoryField     `json:"repository"`
}

// Client is an npm registry client.
// Fields are ordered to minimize memory padding.
type Client struct {
	http      *http.Client
	logger    domain.Logger
	baseURL   string
	userAgent string
}

// NewClient creates a Client for the registry at baseURL.
func NewClient(baseURL, userAgent string, logger domain.Logger) *Client {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		http:      http.DefaultClient,
		logger:    logger,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// PackageURL returns the metadata URL of a package. Scoped names keep their
// '@' and have the '/' escaped, as the registry expects.
func (c *Client) PackageURL(name string) string {
	return c.baseURL + "/" + url.PathEscape(name)
}

// FetchPackage retrieves the metadata of the named package.
func (c *Client) FetchPackage(ctx context.Context, name string) (*domain.PackageMetadata, error) {
	endpoint := c.PackageURL(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w: %w", name, domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("registry", "GET "+endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", name, domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w: registry returned status %d", name, domain.ErrNetwork, resp.StatusCode)
	}

	var doc packageDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w: %w", name, domain.ErrParse, err)
	}

	versions := make([]string, 0, len(doc.Versions))
	for v := range doc.Versions {
		versions = append(versions, v)
	}
	slices.Sort(versions)

	meta := &domain.PackageMetadata{
		Name:          doc.Name,
		RepositoryURL: NormalizeRepositoryURL(doc.Repository.URL),
		Versions:      versions,
	}
	if meta.Name == "" {
		meta.Name = name
	}
	c.logger.Debug("registry", fmt.Sprintf("%s: %d versions, repository %q", name, len(versions), meta.RepositoryURL))
	return meta, nil
}
