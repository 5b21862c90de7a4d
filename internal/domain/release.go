package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Release is one candidate upgrade: a package at a specific version.
type Release struct {
	Package       string `json:"package" yaml:"package"`
	Semver        string `json:"semver" yaml:"semver"`
	RepositoryURL string `json:"repository_url" yaml:"repository_url"`
}

// String returns the identity "package@semver".
func (r Release) String() string {
	return r.Package + "@" + r.Semver
}

// CompareReleases orders by package name, then by semver string.
func CompareReleases(a, b Release) int {
	if c := cmp.Compare(a.Package, b.Package); c != 0 {
		return c
	}
	return cmp.Compare(a.Semver, b.Semver)
}

// SortReleases sorts releases in place using CompareReleases.
func SortReleases(releases []Release) {
	slices.SortStableFunc(releases, CompareReleases)
}

// FormatSelection joins release identities with single spaces,
// the form consumed by package manager install commands.
func FormatSelection(releases []Release) string {
	ids := make([]string, len(releases))
	for i, r := range releases {
		ids[i] = r.String()
	}
	return strings.Join(ids, " ")
}

// OutdatedPackage is one entry of the package manager's outdated report.
type OutdatedPackage struct {
	Current string `json:"current"`
	Latest  string `json:"latest"`
}

// OutdatedPackages maps package name to its outdated entry.
type OutdatedPackages map[string]OutdatedPackage

// Names returns the package names in sorted order.
func (o OutdatedPackages) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PackageMetadata is the subset of registry metadata used for resolution.
type PackageMetadata struct {
	Name          string
	RepositoryURL string
	Versions      []string
}
