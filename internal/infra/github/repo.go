package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/runoshun/deputui/internal/domain"
)

// Host is the only repository host this source understands.
const Host = "github.com"

// Repo identifies a GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns "owner/name".
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo extracts owner and repository name from a GitHub URL.
// A trailing ".git" is removed from the repository name.
func ParseRepo(rawURL string) (Repo, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Repo{}, fmt.Errorf("%q: %w", rawURL, domain.ErrInvalidURL)
	}
	if !strings.EqualFold(u.Hostname(), Host) {
		return Repo{}, fmt.Errorf("%q: %w", u.Hostname(), domain.ErrUnsupportedHost)
	}

	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) < 2 {
		return Repo{}, fmt.Errorf("%q: missing owner or repository: %w", rawURL, domain.ErrInvalidURL)
	}
	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")
	if owner == "" || name == "" {
		return Repo{}, fmt.Errorf("%q: empty owner or repository: %w", rawURL, domain.ErrInvalidURL)
	}

	return Repo{Owner: owner, Name: name}, nil
}
