package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Semver is a plain major.minor.patch version.
// Pre-release and build metadata are not representable.
type Semver struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// ParseSemver parses "X.Y.Z" where each part is a non-negative integer.
func ParseSemver(s string) (Semver, error) {
	if strings.Contains(s, "-") {
		return Semver{}, fmt.Errorf("%q: %w", s, ErrPrereleaseUnsupported)
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Semver{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	var nums [3]uint32
	for i, name := range [3]string{"major", "minor", "patch"} {
		n, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return Semver{}, &SemverNumberError{Part: name, Value: parts[i]}
		}
		nums[i] = uint32(n)
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParseSemver is like ParseSemver but panics on error.
// Intended for tests and constants.
func MustParseSemver(s string) Semver {
	v, err := ParseSemver(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats the version as "X.Y.Z".
func (v Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Canonical returns the "vX.Y.Z" form understood by golang.org/x/mod/semver.
func (v Semver) Canonical() string {
	return "v" + v.String()
}

// Compare returns -1, 0 or +1 ordering by major, minor then patch.
func (v Semver) Compare(other Semver) int {
	return semver.Compare(v.Canonical(), other.Canonical())
}

// IsMinorUpdateOf reports whether v is a new minor release on the same
// major line as base: equal major, greater minor, zero patch.
func (v Semver) IsMinorUpdateOf(base Semver) bool {
	return v.Major == base.Major && v.Minor > base.Minor && v.Patch == 0
}

// IsAtMost reports whether v <= limit.
func (v Semver) IsAtMost(limit Semver) bool {
	return v.Compare(limit) <= 0
}
