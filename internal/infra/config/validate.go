package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/infra/logging"
)

// Validate checks cfg for values that would fail at runtime.
func Validate(cfg *domain.Config) error {
	return criterio.ValidateStruct(
		criterio.Run("registry.url", cfg.Registry.URL, httpURL),
		criterio.Run("registry.concurrency", cfg.Registry.Concurrency, atLeastOne),
		criterio.Run("github.api_url", cfg.GitHub.APIURL, httpURL),
		criterio.Run("notes.cache_ttl", cfg.Notes.CacheTTL, positiveDuration),
		criterio.Run("review.scroll_step", cfg.Review.ScrollStep, atLeastOne),
		criterio.Run("review.left_column_width", cfg.Review.LeftColumnWidth, columnWidth),
		criterio.Run("log.level", cfg.Log.Level, logLevel),
		validateIgnore(cfg.Filter.Ignore),
	)
}

func httpURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) url, got %q", s)
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

func positiveDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", s)
	}
	return nil
}

func columnWidth(n int) error {
	if n < domain.MinLeftColumnWidth || n > domain.MaxLeftColumnWidth {
		return fmt.Errorf("must be between %d and %d, got %d", domain.MinLeftColumnWidth, domain.MaxLeftColumnWidth, n)
	}
	return nil
}

func logLevel(s string) error {
	if !logging.ValidLevel(s) {
		return fmt.Errorf("unknown level %q (want debug, info, warn or error)", s)
	}
	return nil
}

func validateIgnore(patterns []string) error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("filter.ignore[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}
	return errs.ToError()
}
