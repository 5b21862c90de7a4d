package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/deputui/internal/domain"
)

// FetchReleaseNotes retrieves release notes through an ordered chain of
// sources, consulting an optional cache first.
type FetchReleaseNotes struct {
	cache   domain.NotesCache
	clock   domain.Clock
	logger  domain.Logger
	sources []domain.NotesSource
	ttl     time.Duration
}

// FetchReleaseNotesOption configures FetchReleaseNotes.
type FetchReleaseNotesOption func(*FetchReleaseNotes)

// WithNotesCache enables caching of fetched notes for ttl.
func WithNotesCache(cache domain.NotesCache, ttl time.Duration) FetchReleaseNotesOption {
	return func(uc *FetchReleaseNotes) {
		uc.cache = cache
		uc.ttl = ttl
	}
}

// WithClock overrides the clock used for cache expiry.
func WithClock(clock domain.Clock) FetchReleaseNotesOption {
	return func(uc *FetchReleaseNotes) {
		uc.clock = clock
	}
}

// NewFetchReleaseNotes creates a new FetchReleaseNotes use case.
func NewFetchReleaseNotes(sources []domain.NotesSource, logger domain.Logger, opts ...FetchReleaseNotesOption) *FetchReleaseNotes {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	uc := &FetchReleaseNotes{
		sources: sources,
		logger:  logger,
		clock:   domain.RealClock{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the notes for release. Cache failures are logged and
// otherwise ignored.
func (uc *FetchReleaseNotes) Execute(ctx context.Context, release domain.Release) (string, error) {
	key := release.String()

	if notes, ok := uc.cached(key); ok {
		uc.logger.Debug("cache", "hit "+key)
		return notes, nil
	}

	notes, err := uc.fetch(ctx, release)
	if err != nil {
		uc.logger.Warn("notes", fmt.Sprintf("%s: %v", key, err))
		return "", err
	}

	if uc.cache != nil {
		entry := domain.CachedNotes{FetchedAt: uc.clock.Now(), Notes: notes}
		if err := uc.cache.Put(key, entry); err != nil {
			uc.logger.Warn("cache", fmt.Sprintf("store %s: %v", key, err))
		}
	}
	return notes, nil
}

func (uc *FetchReleaseNotes) cached(key string) (string, bool) {
	if uc.cache == nil {
		return "", false
	}
	entry, ok, err := uc.cache.Get(key)
	if err != nil {
		uc.logger.Warn("cache", fmt.Sprintf("read %s: %v", key, err))
		return "", false
	}
	if !ok || uc.clock.Now().Sub(entry.FetchedAt) >= uc.ttl {
		return "", false
	}
	return entry.Notes, true
}

// fetch tries each source in order. A source reporting ErrUnsupportedSource
// hands over to the next one; any other outcome is final.
func (uc *FetchReleaseNotes) fetch(ctx context.Context, release domain.Release) (string, error) {
	lastErr := fmt.Errorf("%s: %w", release, domain.ErrUnsupportedSource)
	for _, src := range uc.sources {
		notes, err := src.FetchNotes(ctx, release)
		if err == nil {
			uc.logger.Debug("notes", fmt.Sprintf("%s from %s", release, src.Name()))
			return notes, nil
		}
		if !errors.Is(err, domain.ErrUnsupportedSource) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// PruneNotesCache drops cache entries older than the TTL.
// It is a no-op without a cache.
func (uc *FetchReleaseNotes) PruneNotesCache() (int, error) {
	if uc.cache == nil {
		return 0, nil
	}
	n, err := uc.cache.Prune(uc.clock.Now().Add(-uc.ttl))
	if err != nil {
		return 0, fmt.Errorf("prune notes cache: %w", err)
	}
	if n > 0 {
		uc.logger.Info("cache", fmt.Sprintf("pruned %d expired entries", n))
	}
	return n, nil
}
