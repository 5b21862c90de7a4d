package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(domain.ConfigEnv, "")
	return dir
}

func TestRun_Version(t *testing.T) {
	isolate(t)

	assert.NoError(t, run([]string{"--version"}))
}

func TestRun_ConfigInitThenBrokenConfig(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, run([]string{"config", "init"}))
	path := filepath.Join(dir, "config", "deputui", domain.ConfigFileName)
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[registry]\nconcurrency = 0\n"), 0o600))
	err = run([]string{"resolve", "--file", filepath.Join(dir, "missing.json")})
	assert.ErrorContains(t, err, "invalid config")
}
