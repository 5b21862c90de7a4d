package npm

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// repositoryField accepts both forms npm allows for "repository":
// an object {"type": "git", "url": "..."} or a bare string.
type repositoryField struct {
	URL string
}

func (r *repositoryField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.URL)
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.URL = obj.URL
	return nil
}

// shorthandHosts maps npm repository shorthand prefixes to hosts.
var shorthandHosts = map[string]string{
	"github":    "github.com",
	"gitlab":    "gitlab.com",
	"bitbucket": "bitbucket.org",
}

// bareShorthand matches "owner/repo", which npm treats as a GitHub repository.
var bareShorthand = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// NormalizeRepositoryURL converts the repository notations found in package
// metadata into "https://host/path". Values it cannot interpret are returned
// unchanged so the notes source can report them.
func NormalizeRepositoryURL(raw string) string {
	s, _, _ := strings.Cut(strings.TrimSpace(raw), "#")
	if s == "" {
		return ""
	}

	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		if host, known := shorthandHosts[prefix]; known && !strings.HasPrefix(rest, "//") {
			return "https://" + host + "/" + strings.TrimPrefix(rest, "/")
		}
	}
	if bareShorthand.MatchString(s) {
		return "https://github.com/" + s
	}

	ep, err := transport.NewEndpoint(strings.TrimPrefix(s, "git+"))
	if err != nil || ep.Host == "" || ep.Protocol == "file" {
		return raw
	}
	return "https://" + ep.Host + "/" + strings.TrimPrefix(ep.Path, "/")
}
