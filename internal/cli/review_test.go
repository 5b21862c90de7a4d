package cli

import (
	"testing"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommand(t *testing.T) {
	t.Run("reviews the list sorted", func(t *testing.T) {
		// Setup
		calls := stubReview(t, confirmAll)
		input := `[
  {"package": "b", "semver": "2.1.0", "repository_url": "https://github.com/acme/b"},
  {"package": "a", "semver": "1.2.0", "repository_url": ""},
  {"package": "a", "semver": "1.1.0", "repository_url": ""}
]`

		// Execute
		stdout, _, err := execute(newTestContainer(testutil.NewMockRegistry()), input, "review")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "a@1.1.0 a@1.2.0 b@2.1.0\n", stdout)
		require.Len(t, *calls, 1)
		assert.Equal(t, "a", (*calls)[0][0].Package)
		assert.Equal(t, "1.1.0", (*calls)[0][0].Semver)
	})

	t.Run("prints only the confirmed subset", func(t *testing.T) {
		stubReview(t, func(rs []domain.Release) ([]domain.Release, error) { return rs[1:], nil })
		input := `[
  {"package": "b", "semver": "2.1.0", "repository_url": "https://github.com/acme/b"},
  {"package": "a", "semver": "1.1.0", "repository_url": ""}
]`

		stdout, _, err := execute(newTestContainer(testutil.NewMockRegistry()), input, "review")

		require.NoError(t, err)
		assert.Equal(t, "b@2.1.0\n", stdout)
	})

	t.Run("empty list", func(t *testing.T) {
		stubReview(t, confirmAll)

		_, _, err := execute(newTestContainer(testutil.NewMockRegistry()), `[]`, "review")

		assert.ErrorIs(t, err, domain.ErrNoCandidates)
	})

	t.Run("invalid entries", func(t *testing.T) {
		calls := stubReview(t, confirmAll)

		_, _, err := execute(newTestContainer(testutil.NewMockRegistry()), `[{"package": "", "semver": "1.0.0-rc.1"}]`, "review")

		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid release list")
		assert.Empty(t, *calls)
	})
}

func TestValidateReleases(t *testing.T) {
	assert.NoError(t, validateReleases([]domain.Release{{Package: "a", Semver: "1.1.0"}}))
	assert.Error(t, validateReleases([]domain.Release{{Package: "a", Semver: "latest"}}))
}
