package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/home/user/.config/deputui", ConfigDir("/home/user/.config"))
	assert.Equal(t, "/home/user/.config/deputui/config.toml", ConfigPath("/home/user/.config"))
}

func TestStatePaths(t *testing.T) {
	dir := StateDir("/home/user/.local/state")
	assert.Equal(t, "/home/user/.local/state/deputui", dir)
	assert.Equal(t, "/home/user/.local/state/deputui/logs/deputui.log", LogPath(dir))
	assert.Equal(t, "/home/user/.cache/deputui/notes.json", NotesCachePath("/home/user/.cache"))
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, DefaultConcurrency, cfg.Registry.Concurrency)
	assert.Equal(t, DefaultTokenEnv, cfg.GitHub.TokenEnv)
	assert.Equal(t, DefaultScrollStep, cfg.Review.ScrollStep)
	assert.Equal(t, DefaultLeftColumnWidth, cfg.Review.LeftColumnWidth)
	assert.True(t, cfg.Notes.RenderMarkdown)
	assert.True(t, cfg.Notes.Cache)
	assert.Equal(t, DefaultCacheTTL, cfg.Notes.CacheTTLDuration())
	assert.NotNil(t, cfg.Filter.Ignore)
}

func TestNotesConfig_CacheTTLDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, NotesConfig{CacheTTL: "1h30m"}.CacheTTLDuration())
	assert.Equal(t, DefaultCacheTTL, NotesConfig{CacheTTL: "soon"}.CacheTTLDuration())
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Filter.Ignore = []string{"@types/**", "eslint-*"}
	cfg.Registry.Concurrency = 3

	content := RenderConfigTemplate(cfg)

	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(content), &decoded))
	assert.Equal(t, cfg.Registry, decoded.Registry)
	assert.Equal(t, cfg.GitHub, decoded.GitHub)
	assert.Equal(t, cfg.Notes, decoded.Notes)
	assert.Equal(t, cfg.Review, decoded.Review)
	assert.Equal(t, cfg.Filter.Ignore, decoded.Filter.Ignore)
	assert.Equal(t, cfg.Log, decoded.Log)
	assert.True(t, strings.HasPrefix(content, "# deputui configuration"))
}
