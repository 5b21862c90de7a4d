package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrParse             = errors.New("parse error")
	ErrNetwork           = errors.New("network error")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedSource = errors.New("unsupported notes source")
	ErrChannelClosed     = errors.New("notification channel closed")
	ErrNoReleases        = errors.New("no releases to review")
	ErrNoCandidates      = errors.New("no minor updates found")
	ErrAborted           = errors.New("aborted by user")
	ErrConfigExists      = errors.New("config file already exists")
)

// Semver parse errors. All of them wrap ErrParse.
var (
	ErrPrereleaseUnsupported = fmt.Errorf("%w: prerelease versions are not supported", ErrParse)
	ErrInvalidFormat         = fmt.Errorf("%w: expected major.minor.patch", ErrParse)
	ErrInvalidNumber         = fmt.Errorf("%w: invalid version number", ErrParse)
)

// Repository URL errors. Both wrap ErrUnsupportedSource.
var (
	ErrInvalidURL      = fmt.Errorf("%w: invalid repository url", ErrUnsupportedSource)
	ErrUnsupportedHost = fmt.Errorf("%w: unsupported repository host", ErrUnsupportedSource)
)

// SemverNumberError reports which component of a version failed to parse.
type SemverNumberError struct {
	Part  string // "major", "minor" or "patch"
	Value string
}

func (e *SemverNumberError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidNumber.Error(), e.Part, e.Value)
}

// Unwrap returns ErrInvalidNumber so errors.Is matches both it and ErrParse.
func (e *SemverNumberError) Unwrap() error {
	return ErrInvalidNumber
}
