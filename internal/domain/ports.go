package domain

import (
	"context"
	"time"
)

// Registry fetches package metadata from a package registry.
type Registry interface {
	// FetchPackage returns the metadata of the named package.
	FetchPackage(ctx context.Context, name string) (*PackageMetadata, error)
}

// NotesSource retrieves release notes for a release.
// A source that cannot handle the release's repository returns an error
// wrapping ErrUnsupportedSource so callers can fall through to the next one.
type NotesSource interface {
	// Name identifies the source in logs.
	Name() string
	// FetchNotes returns the release notes body.
	FetchNotes(ctx context.Context, release Release) (string, error)
}

// CachedNotes is a cached release notes entry.
type CachedNotes struct {
	FetchedAt time.Time `json:"fetched_at"`
	Notes     string    `json:"notes"`
}

// NotesCache persists release notes between runs.
type NotesCache interface {
	// Get returns the cached entry for key. ok is false on a miss.
	Get(key string) (entry CachedNotes, ok bool, err error)
	// Put stores an entry for key.
	Put(key string, entry CachedNotes) error
	// Prune removes entries fetched before cutoff and returns how many were removed.
	Prune(cutoff time.Time) (int, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults merged with the file).
	Load() (*Config, error)
	// Path returns the config file location.
	Path() string
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates the config file.
type ConfigManager interface {
	// Info returns the location and content of the config file.
	Info() ConfigInfo
	// Init writes a commented config file rendered from cfg.
	// It fails with ErrConfigExists when the file is already present.
	Init(cfg *Config) error
}

// Logger writes diagnostic entries.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
