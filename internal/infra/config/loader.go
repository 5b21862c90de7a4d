// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/deputui/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// knownKeys lists the accepted keys of every section.
var knownKeys = map[string][]string{
	"registry": {"url", "concurrency"},
	"github":   {"api_url", "token_env"},
	"notes":    {"render_markdown", "style", "cache", "cache_ttl"},
	"review":   {"scroll_step", "left_column_width"},
	"filter":   {"ignore"},
	"log":      {"level"},
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml; empty means defaults only
}

// NewLoader creates a Loader for the default location.
// DEPUTUI_CONFIG overrides the XDG location.
func NewLoader() *Loader {
	return &Loader{path: DefaultPath()}
}

// NewLoaderWithPath creates a Loader for a specific file.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// DefaultPath returns $DEPUTUI_CONFIG, or config.toml under the XDG config home.
func DefaultPath() string {
	if p := os.Getenv(domain.ConfigEnv); p != "" {
		return p
	}
	home := configHome()
	if home == "" {
		return ""
	}
	return domain.ConfigPath(home)
}

// configHome returns XDG_CONFIG_HOME or ~/.config.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// Path returns the config file location.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the default config merged with the config file, if any.
// The result is validated; unknown keys are reported in Config.Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := decodeInto(cfg, data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return cfg, nil
}

// decodeInto overlays the TOML document onto cfg and records unknown keys.
// Keys absent from the document keep their current (default) values.
func decodeInto(cfg *domain.Config, data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.Warnings = collectWarnings(raw)
	return nil
}

// collectWarnings returns sorted warnings for unknown sections and keys.
func collectWarnings(raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		keys, known := knownKeys[section]
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s must be a table", section))
			continue
		}
		for k := range m {
			if !contains(keys, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}

	sort.Strings(warnings)
	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
