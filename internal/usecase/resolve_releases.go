// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/runoshun/deputui/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ResolveReleasesInput contains the parameters for resolving releases.
type ResolveReleasesInput struct {
	Outdated    domain.OutdatedPackages // Outdated report from the package manager (required)
	Concurrency int                     // Overrides the configured concurrency when > 0
}

// Validate checks that every entry has a name and both versions.
func (in ResolveReleasesInput) Validate() error {
	var errs criterio.FieldErrorsBuilder
	for _, name := range in.Outdated.Names() {
		pkg := in.Outdated[name]
		if name == "" {
			errs = errs.Append("outdated", errors.New("empty package name"))
			continue
		}
		if pkg.Current == "" {
			errs = errs.Append(name+".current", errors.New("missing current version"))
		}
		if pkg.Latest == "" {
			errs = errs.Append(name+".latest", errors.New("missing latest version"))
		}
	}
	return errs.ToError()
}

// ResolveReleasesOutput contains the result of resolving releases.
type ResolveReleasesOutput struct {
	Releases []domain.Release // Candidate releases in display order
	Skipped  []string         // Packages excluded by filter.ignore
}

// ResolveReleases expands an outdated report into every minor release
// between the current and latest versions of each package.
type ResolveReleases struct {
	registry    domain.Registry
	logger      domain.Logger
	ignore      []string
	concurrency int
}

// NewResolveReleases creates a new ResolveReleases use case.
// Malformed ignore globs are dropped with a warning.
func NewResolveReleases(registry domain.Registry, logger domain.Logger, ignore []string, concurrency int) *ResolveReleases {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	patterns := make([]string, 0, len(ignore))
	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			logger.Warn("resolve", fmt.Sprintf("invalid ignore pattern %q: %v", pattern, doublestar.ErrBadPattern))
			continue
		}
		patterns = append(patterns, pattern)
	}

	return &ResolveReleases{
		registry:    registry,
		logger:      logger,
		ignore:      patterns,
		concurrency: concurrency,
	}
}

// Execute resolves the releases. The first failing package cancels the
// remaining lookups and fails the whole resolution.
func (uc *ResolveReleases) Execute(ctx context.Context, in ResolveReleasesInput) (*ResolveReleasesOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid outdated report: %w", err)
	}

	var names, skipped []string
	for _, name := range in.Outdated.Names() {
		if uc.ignored(name) {
			skipped = append(skipped, name)
			continue
		}
		names = append(names, name)
	}
	if len(skipped) > 0 {
		uc.logger.Info("resolve", fmt.Sprintf("skipped %d ignored packages", len(skipped)))
	}

	limit := uc.concurrency
	if in.Concurrency > 0 {
		limit = in.Concurrency
	}
	if limit < 1 {
		limit = domain.DefaultConcurrency
	}

	// Each worker writes only its own slot.
	perPackage := make([][]domain.Release, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, name := range names {
		g.Go(func() error {
			releases, err := uc.resolvePackage(gctx, name, in.Outdated[name])
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			perPackage[i] = releases
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("resolve", err.Error())
		return nil, err
	}

	var releases []domain.Release
	for _, rs := range perPackage {
		releases = append(releases, rs...)
	}
	domain.SortReleases(releases)

	uc.logger.Info("resolve", fmt.Sprintf("resolved %d releases from %d packages", len(releases), len(names)))
	return &ResolveReleasesOutput{
		Releases: releases,
		Skipped:  skipped,
	}, nil
}

func (uc *ResolveReleases) resolvePackage(ctx context.Context, name string, pkg domain.OutdatedPackage) ([]domain.Release, error) {
	current, err := domain.ParseSemver(pkg.Current)
	if err != nil {
		return nil, fmt.Errorf("current version: %w", err)
	}
	latest, err := domain.ParseSemver(pkg.Latest)
	if err != nil {
		return nil, fmt.Errorf("latest version: %w", err)
	}

	meta, err := uc.registry.FetchPackage(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("registry", fmt.Sprintf("%s: %d versions", name, len(meta.Versions)))

	var releases []domain.Release
	for _, v := range meta.Versions {
		candidate, err := domain.ParseSemver(v)
		if err != nil {
			// Prereleases and odd tags never qualify.
			continue
		}
		if !candidate.IsMinorUpdateOf(current) || !candidate.IsAtMost(latest) {
			continue
		}
		releases = append(releases, domain.Release{
			Package:       name,
			Semver:        candidate.String(),
			RepositoryURL: meta.RepositoryURL,
		})
	}
	return releases, nil
}

func (uc *ResolveReleases) ignored(name string) bool {
	for _, pattern := range uc.ignore {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}
	return false
}
