package cli

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/runoshun/deputui/internal/app"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/spf13/cobra"
)

// newReviewCommand creates the review command.
func newReviewCommand(c *app.Container) *cobra.Command {
	var input jsonInput[[]domain.Release]

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a release list produced by resolve",
		Long: `Open the review screen for a JSON release list, as printed by "deputui resolve".
The releases are sorted by package name and version before review.

  deputui resolve -f outdated.json > releases.json
  deputui review -f releases.json | xargs pnpm add`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			releases, err := input.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := validateReleases(releases); err != nil {
				return fmt.Errorf("invalid release list: %w", err)
			}
			if len(releases) == 0 {
				return domain.ErrNoCandidates
			}
			domain.SortReleases(releases)

			return reviewAndPrint(cmd.Context(), cmd.OutOrStdout(), c, releases)
		},
	}

	input.bind(cmd, "path to the release list JSON")

	return cmd
}

// validateReleases checks that every release has a package and a version.
func validateReleases(releases []domain.Release) error {
	var errs criterio.FieldErrorsBuilder
	for i, r := range releases {
		field := fmt.Sprintf("releases[%d]", i)
		if r.Package == "" {
			errs = errs.Append(field+".package", errors.New("is required"))
		}
		if _, err := domain.ParseSemver(r.Semver); err != nil {
			errs = errs.Append(field+".semver", err)
		}
	}
	return errs.ToError()
}
