package cli

import (
	"encoding/json"
	"testing"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const outdatedReport = `{
  "zod": {"current": "3.21.4", "latest": "3.23.0", "wanted": "3.21.4", "dependencyType": "dependencies"},
  "axios": {"current": "1.5.1", "latest": "1.6.0"}
}`

func resolveRegistry() *testutil.MockRegistry {
	registry := testutil.NewMockRegistry()
	registry.Add("zod", "https://github.com/colinhacks/zod", "3.22.0", "3.23.0")
	registry.Add("axios", "https://github.com/axios/axios", "1.6.0")
	return registry
}

func TestResolveCommand_JSON(t *testing.T) {
	stdout, _, err := execute(newTestContainer(resolveRegistry()), outdatedReport, "resolve")

	require.NoError(t, err)
	var got []domain.Release
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []domain.Release{
		{Package: "axios", Semver: "1.6.0", RepositoryURL: "https://github.com/axios/axios"},
		{Package: "zod", Semver: "3.22.0", RepositoryURL: "https://github.com/colinhacks/zod"},
		{Package: "zod", Semver: "3.23.0", RepositoryURL: "https://github.com/colinhacks/zod"},
	}, got)
	assert.Contains(t, stdout, `"repository_url"`)
}

func TestResolveCommand_YAML(t *testing.T) {
	stdout, _, err := execute(newTestContainer(resolveRegistry()), outdatedReport, "resolve", "--format", "yaml")

	require.NoError(t, err)
	var got []domain.Release
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "axios@1.6.0", got[0].String())
	assert.Contains(t, stdout, "- package: axios")
}

func TestResolveCommand_EmptyIsArray(t *testing.T) {
	stdout, _, err := execute(newTestContainer(testutil.NewMockRegistry()), `{}`, "resolve")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestResolveCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(newTestContainer(resolveRegistry()), outdatedReport, "resolve", "--format", "xml")

	assert.ErrorContains(t, err, `unknown format "xml"`)
}
