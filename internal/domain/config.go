package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Filter   FilterConfig   `toml:"filter"`
	Registry RegistryConfig `toml:"registry"`
	GitHub   GitHubConfig   `toml:"github"`
	Notes    NotesConfig    `toml:"notes"`
	Log      LogConfig      `toml:"log"`
	Review   ReviewConfig   `toml:"review"`
}

// RegistryConfig holds settings from the [registry] section.
type RegistryConfig struct {
	URL         string `toml:"url"`         // Base URL of the npm registry
	Concurrency int    `toml:"concurrency"` // Max concurrent metadata requests
}

// GitHubConfig holds settings from the [github] section.
type GitHubConfig struct {
	APIURL   string `toml:"api_url"`   // Base URL of the GitHub REST API
	TokenEnv string `toml:"token_env"` // Environment variable holding the API token
}

// NotesConfig holds settings from the [notes] section.
type NotesConfig struct {
	Style          string `toml:"style"`           // glamour style name
	CacheTTL       string `toml:"cache_ttl"`       // Go duration, e.g. "24h"
	RenderMarkdown bool   `toml:"render_markdown"` // Render notes as markdown
	Cache          bool   `toml:"cache"`           // Persist fetched notes on disk
}

// CacheTTLDuration returns the parsed cache TTL, or DefaultCacheTTL when unparsable.
func (n NotesConfig) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(n.CacheTTL)
	if err != nil {
		return DefaultCacheTTL
	}
	return d
}

// ReviewConfig holds settings from the [review] section.
type ReviewConfig struct {
	ScrollStep      int `toml:"scroll_step"`       // Lines per notes scroll
	LeftColumnWidth int `toml:"left_column_width"` // Initial release list width
}

// FilterConfig holds settings from the [filter] section.
type FilterConfig struct {
	Ignore []string `toml:"ignore"` // doublestar globs of package names to skip
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultConcurrency     = 8
	DefaultGitHubAPIURL    = "https://api.github.com"
	DefaultTokenEnv        = "DEPUTUI_GITHUB_TOKEN"
	DefaultNotesStyle      = "dark"
	DefaultCacheTTL        = 24 * time.Hour
	DefaultScrollStep      = 5
	DefaultLeftColumnWidth = 40
	MinLeftColumnWidth     = 10
	MaxLeftColumnWidth     = 120
	DefaultLogLevel        = "info"
)

// Naming constants.
const (
	AppName        = "deputui"
	ConfigFileName = "config.toml"
	ConfigEnv      = "DEPUTUI_CONFIG"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:         DefaultRegistryURL,
			Concurrency: DefaultConcurrency,
		},
		GitHub: GitHubConfig{
			APIURL:   DefaultGitHubAPIURL,
			TokenEnv: DefaultTokenEnv,
		},
		Notes: NotesConfig{
			RenderMarkdown: true,
			Style:          DefaultNotesStyle,
			Cache:          true,
			CacheTTL:       "24h",
		},
		Review: ReviewConfig{
			ScrollStep:      DefaultScrollStep,
			LeftColumnWidth: DefaultLeftColumnWidth,
		},
		Filter: FilterConfig{Ignore: []string{}},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// ConfigDir returns the deputui config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// ConfigPath returns the config file path under configHome.
func ConfigPath(configHome string) string {
	return filepath.Join(ConfigDir(configHome), ConfigFileName)
}

// StateDir returns the directory for logs. stateHome is XDG_STATE_HOME or ~/.local/state.
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppName)
}

// LogPath returns the log file path under a state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", AppName+".log")
}

// NotesCachePath returns the release notes cache file under cacheHome.
func NotesCachePath(cacheHome string) string {
	return filepath.Join(cacheHome, AppName, "notes.json")
}

// templateData holds the values rendered into the config template.
type templateData struct {
	RegistryURL     string
	GitHubAPIURL    string
	TokenEnv        string
	NotesStyle      string
	CacheTTL        string
	LogLevel        string
	Ignore          string
	Concurrency     int
	ScrollStep      int
	LeftColumnWidth int
	RenderMarkdown  bool
	Cache           bool
}

// RenderConfigTemplate renders a commented config file populated from cfg.
func RenderConfigTemplate(cfg *Config) string {
	quoted := make([]string, len(cfg.Filter.Ignore))
	for i, p := range cfg.Filter.Ignore {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	data := templateData{
		RegistryURL:     cfg.Registry.URL,
		Concurrency:     cfg.Registry.Concurrency,
		GitHubAPIURL:    cfg.GitHub.APIURL,
		TokenEnv:        cfg.GitHub.TokenEnv,
		RenderMarkdown:  cfg.Notes.RenderMarkdown,
		NotesStyle:      cfg.Notes.Style,
		Cache:           cfg.Notes.Cache,
		CacheTTL:        cfg.Notes.CacheTTL,
		ScrollStep:      cfg.Review.ScrollStep,
		LeftColumnWidth: cfg.Review.LeftColumnWidth,
		Ignore:          "[" + strings.Join(quoted, ", ") + "]",
		LogLevel:        cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
