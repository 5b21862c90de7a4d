// Package cli provides the command-line interface for deputui.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/deputui/internal/app"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupPipeline = "pipeline"
	groupSetup    = "setup"
)

// NewRootCommand creates the root command for deputui.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var input jsonInput[domain.OutdatedPackages]
	var concurrency int

	root := &cobra.Command{
		Use:   "deputui",
		Short: "Review minor dependency upgrades with their release notes",
		Long: `deputui reads the JSON report of "pnpm outdated --format json", finds every
minor release between the installed and the latest version of each package,
and opens a review screen showing the GitHub release notes of each candidate.

Confirmed releases are printed to stdout as "pkg@version pkg@version", ready for:

  pnpm outdated --format json | deputui | xargs pnpm add`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			// config path/init must work with a broken file
			if inConfigCommand(cmd) && cmd.Name() != "show" {
				return nil
			}
			if c.ConfigErr != nil {
				return c.ConfigErr
			}

			if cmd.Name() != "show" {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			outdated, err := input.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			releases, err := resolve(cmd.Context(), c, outdated, concurrency)
			if err != nil {
				return err
			}
			if len(releases) == 0 {
				return domain.ErrNoCandidates
			}

			return reviewAndPrint(cmd.Context(), cmd.OutOrStdout(), c, releases)
		},
	}

	input.bind(root, "path to the pnpm outdated JSON report")
	root.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "max concurrent registry requests (default from config)")

	root.AddGroup(
		&cobra.Group{ID: groupPipeline, Title: "Pipeline Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	resolveCmd := newResolveCommand(c)
	resolveCmd.GroupID = groupPipeline

	reviewCmd := newReviewCommand(c)
	reviewCmd.GroupID = groupPipeline

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		resolveCmd,
		reviewCmd,
		configCmd,
	)

	return root
}

// inConfigCommand reports whether cmd is the config command or one of its subcommands.
func inConfigCommand(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		if p.Name() == "config" {
			return true
		}
	}
	return false
}

// resolve runs the resolver with an optional concurrency override.
func resolve(ctx context.Context, c *app.Container, outdated domain.OutdatedPackages, concurrency int) ([]domain.Release, error) {
	if concurrency < 0 {
		return nil, fmt.Errorf("--concurrency must not be negative, got %d", concurrency)
	}

	out, err := c.ResolveReleasesUseCase().Execute(ctx, usecase.ResolveReleasesInput{
		Outdated:    outdated,
		Concurrency: concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve releases: %w", err)
	}
	return out.Releases, nil
}

// reviewAndPrint opens the review screen and prints the confirmed selection.
// An aborted review prints nothing and returns domain.ErrAborted.
func reviewAndPrint(ctx context.Context, w io.Writer, c *app.Container, releases []domain.Release) error {
	selected, err := launchReviewFunc(ctx, c, releases)
	if err != nil {
		if errors.Is(err, domain.ErrAborted) {
			c.Logger.Info("review", "aborted")
		}
		return err
	}

	c.Logger.Info("review", fmt.Sprintf("confirmed %d of %d releases", len(selected), len(releases)))
	_, err = fmt.Fprintln(w, domain.FormatSelection(selected))
	return err
}
