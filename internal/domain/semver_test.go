package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemver(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   string
		want    Semver
	}{
		{name: "simple", input: "1.2.3", want: Semver{1, 2, 3}},
		{name: "zeros", input: "0.0.0", want: Semver{0, 0, 0}},
		{name: "multi digit", input: "10.20.30", want: Semver{10, 20, 30}},
		{name: "prerelease", input: "1.2.3-beta.1", wantErr: ErrPrereleaseUnsupported},
		{name: "two parts", input: "1.2", wantErr: ErrInvalidFormat},
		{name: "four parts", input: "1.2.3.4", wantErr: ErrInvalidFormat},
		{name: "empty", input: "", wantErr: ErrInvalidFormat},
		{name: "non numeric", input: "1.x.3", wantErr: ErrInvalidNumber},
		{name: "empty part", input: "1..3", wantErr: ErrInvalidNumber},
		{name: "negative looking", input: "1.2.+3", wantErr: ErrInvalidNumber},
		{name: "build metadata", input: "1.2.3+build", wantErr: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSemver(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSemver_NumberErrorNamesPart(t *testing.T) {
	tests := []struct {
		input string
		part  string
	}{
		{"a.2.3", "major"},
		{"1.b.3", "minor"},
		{"1.2.c", "patch"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSemver(tt.input)

			var numErr *SemverNumberError
			require.True(t, errors.As(err, &numErr))
			assert.Equal(t, tt.part, numErr.Part)
			assert.Contains(t, err.Error(), tt.part)
		})
	}
}

func TestSemver_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.0.0", "1.2.3", "4294967295.0.1", "12.0.0"} {
		v, err := ParseSemver(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestSemver_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.10.0", "1.9.0", 1},
		{"2.0.0", "1.99.99", 1},
		{"0.1.0", "0.0.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseSemver(tt.a).Compare(MustParseSemver(tt.b)))
		})
	}
}

func TestSemver_IsMinorUpdateOf(t *testing.T) {
	base := MustParseSemver("1.2.0")

	tests := []struct {
		version string
		want    bool
	}{
		{"1.3.0", true},
		{"1.10.0", true},
		{"1.3.1", false}, // non-zero patch
		{"1.2.0", false}, // same minor
		{"1.1.0", false}, // older minor
		{"2.3.0", false}, // different major
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseSemver(tt.version).IsMinorUpdateOf(base))
		})
	}
}

func TestSemver_IsMinorUpdateOf_PatchedBase(t *testing.T) {
	base := MustParseSemver("1.2.5")

	assert.True(t, MustParseSemver("1.3.0").IsMinorUpdateOf(base))
	assert.False(t, MustParseSemver("1.2.6").IsMinorUpdateOf(base))
}

func TestSemver_IsAtMost(t *testing.T) {
	limit := MustParseSemver("1.5.0")

	assert.True(t, MustParseSemver("1.4.0").IsAtMost(limit))
	assert.True(t, MustParseSemver("1.5.0").IsAtMost(limit))
	assert.False(t, MustParseSemver("1.5.1").IsAtMost(limit))
	assert.False(t, MustParseSemver("2.0.0").IsAtMost(limit))
}

func TestMustParseSemver_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseSemver("nope") })
}
