// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/infra/config"
	"github.com/runoshun/deputui/internal/infra/github"
	"github.com/runoshun/deputui/internal/infra/logging"
	"github.com/runoshun/deputui/internal/infra/notescache"
	"github.com/runoshun/deputui/internal/infra/npm"
	"github.com/runoshun/deputui/internal/usecase"
)

// Paths holds the file locations used by the application.
type Paths struct {
	ConfigPath     string // config.toml; empty when no config home is available
	StateDir       string // Log directory root; empty disables logging
	NotesCachePath string // notes.json; empty disables the notes cache
}

// DefaultPaths resolves the XDG locations.
func DefaultPaths() Paths {
	p := Paths{ConfigPath: config.DefaultPath()}

	if dir := stateHome(); dir != "" {
		p.StateDir = domain.StateDir(dir)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		p.NotesCachePath = domain.NotesCachePath(dir)
	}
	return p
}

// stateHome returns XDG_STATE_HOME or ~/.local/state.
func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Registry      domain.Registry
	NotesCache    domain.NotesCache // nil when caching is disabled
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	// ConfigErr is the error from loading the config file. AppConfig holds
	// defaults in that case so config subcommands keep working.
	ConfigErr error
	closer    interface{ Close() error }

	NotesSources []domain.NotesSource

	Paths Paths
}

// New creates a Container for the default locations.
func New(version string) (*Container, error) {
	return NewWithPaths(DefaultPaths(), version)
}

// NewWithPaths creates a Container for explicit locations.
func NewWithPaths(paths Paths, version string) (*Container, error) {
	loader := config.NewLoaderWithPath(paths.ConfigPath)
	cfg, cfgErr := loader.Load()
	if cfgErr != nil {
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(paths.StateDir, logging.ParseLevel(cfg.Log.Level))
	userAgent := domain.AppName + "/" + version

	registry := npm.NewClient(cfg.Registry.URL, userAgent, logger)
	gh := github.NewClient(cfg.GitHub.APIURL, os.Getenv(cfg.GitHub.TokenEnv), userAgent, logger)

	var cache domain.NotesCache
	if cfg.Notes.Cache && paths.NotesCachePath != "" {
		cache = notescache.New(paths.NotesCachePath)
	}

	return &Container{
		Registry:      registry,
		NotesSources:  []domain.NotesSource{gh},
		NotesCache:    cache,
		Clock:         domain.RealClock{},
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(paths.ConfigPath),
		Logger:        logger,
		AppConfig:     cfg,
		ConfigErr:     cfgErr,
		closer:        logger,
		Paths:         paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, registry domain.Registry, sources []domain.NotesSource, cache domain.NotesCache, clock domain.Clock, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Registry:     registry,
		NotesSources: sources,
		NotesCache:   cache,
		Clock:        clock,
		Logger:       logger,
		AppConfig:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// ResolveReleasesUseCase returns a new ResolveReleases use case.
func (c *Container) ResolveReleasesUseCase() *usecase.ResolveReleases {
	return usecase.NewResolveReleases(c.Registry, c.Logger, c.AppConfig.Filter.Ignore, c.AppConfig.Registry.Concurrency)
}

// FetchReleaseNotesUseCase returns a new FetchReleaseNotes use case.
func (c *Container) FetchReleaseNotesUseCase() *usecase.FetchReleaseNotes {
	opts := []usecase.FetchReleaseNotesOption{}
	if c.Clock != nil {
		opts = append(opts, usecase.WithClock(c.Clock))
	}
	if c.NotesCache != nil {
		opts = append(opts, usecase.WithNotesCache(c.NotesCache, c.AppConfig.Notes.CacheTTLDuration()))
	}
	return usecase.NewFetchReleaseNotes(c.NotesSources, c.Logger, opts...)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
