package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/deputui/internal/app"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the resolve command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// newResolveCommand creates the resolve command.
func newResolveCommand(c *app.Container) *cobra.Command {
	var input jsonInput[domain.OutdatedPackages]
	var concurrency int
	var format string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "List candidate minor releases without reviewing",
		Long: `Resolve the pnpm outdated report into the sorted list of candidate releases
and print it. The JSON output is accepted by "deputui review".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			outdated, err := input.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			releases, err := resolve(cmd.Context(), c, outdated, concurrency)
			if err != nil {
				return err
			}

			return writeReleases(cmd.OutOrStdout(), releases, format)
		},
	}

	input.bind(cmd, "path to the pnpm outdated JSON report")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "max concurrent registry requests (default from config)")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")

	return cmd
}

// writeReleases encodes releases. An empty list is written as an empty
// array, never as null.
func writeReleases(w io.Writer, releases []domain.Release, format string) error {
	if releases == nil {
		releases = []domain.Release{}
	}

	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(releases); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(releases); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
