package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_String(t *testing.T) {
	r := Release{Package: "@scope/pkg", Semver: "1.2.0", RepositoryURL: "https://github.com/a/b"}
	assert.Equal(t, "@scope/pkg@1.2.0", r.String())
}

func TestSortReleases(t *testing.T) {
	releases := []Release{
		{Package: "b", Semver: "1.1.0"},
		{Package: "a", Semver: "1.2.0"},
		{Package: "a", Semver: "1.1.0"},
		{Package: "@x/y", Semver: "3.1.0"},
	}

	SortReleases(releases)

	got := make([]string, len(releases))
	for i, r := range releases {
		got[i] = r.String()
	}
	assert.Equal(t, []string{"@x/y@3.1.0", "a@1.1.0", "a@1.2.0", "b@1.1.0"}, got)
}

func TestCompareReleases_SemverIsStringOrdered(t *testing.T) {
	a := Release{Package: "p", Semver: "1.10.0"}
	b := Release{Package: "p", Semver: "1.9.0"}

	assert.Equal(t, -1, CompareReleases(a, b))
	assert.Equal(t, 1, CompareReleases(b, a))
	assert.Equal(t, 0, CompareReleases(a, a))
}

func TestFormatSelection(t *testing.T) {
	tests := []struct {
		name     string
		releases []Release
		want     string
	}{
		{name: "empty", releases: nil, want: ""},
		{name: "single", releases: []Release{{Package: "a", Semver: "1.1.0"}}, want: "a@1.1.0"},
		{
			name:     "multiple",
			releases: []Release{{Package: "a", Semver: "1.1.0"}, {Package: "a", Semver: "1.2.0"}},
			want:     "a@1.1.0 a@1.2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSelection(tt.releases))
		})
	}
}

func TestRelease_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Release{Package: "a", Semver: "1.1.0", RepositoryURL: "u"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"package":"a","semver":"1.1.0","repository_url":"u"}`, string(data))
}

func TestOutdatedPackages_DecodeIgnoresExtraFields(t *testing.T) {
	input := `{"a":{"current":"1.0.0","latest":"1.2.0","wanted":"1.0.0","dependencyType":"dependencies"}}`

	var outdated OutdatedPackages
	require.NoError(t, json.Unmarshal([]byte(input), &outdated))

	assert.Equal(t, OutdatedPackage{Current: "1.0.0", Latest: "1.2.0"}, outdated["a"])
}

func TestOutdatedPackages_Names(t *testing.T) {
	o := OutdatedPackages{"c": {}, "a": {}, "b": {}}
	assert.Equal(t, []string{"a", "b", "c"}, o.Names())
}
