package cli

import (
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/intake"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var pointsPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check every entry of a points file and report invalid ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := os.ReadFile(pointsPath)
			if err != nil {
				return fmt.Errorf("validate: read %q: %w", pointsPath, err)
			}

			var seeds []repositories.PointSeed
			if err := json.Unmarshal(b, &seeds); err != nil {
				return fmt.Errorf("validate: parse json: %w", err)
			}

			invalid := validateSeeds(cmd.OutOrStdout(), seeds)
			if invalid > 0 {
				return fmt.Errorf("validate: %d invalid point(s)", invalid)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d point(s)\n", len(seeds))
			return nil
		},
	}

	c.Flags().StringVarP(&pointsPath, "points", "p", "", "JSON file with delivery points (required)")
	_ = c.MarkFlagRequired("points")
	return c
}

// validateSeeds prints one line per rejected entry and returns how many were rejected.
func validateSeeds(w io.Writer, seeds []repositories.PointSeed) int {
	invalid := 0
	seen := make(map[string]int, len(seeds))

	for i, s := range seeds {
		p, err := intake.ParsePoint(s.Raw())
		if err != nil {
			fmt.Fprintf(w, "#%d: %v\n", i+1, err)
			invalid++
			continue
		}
		if s.ID == "" {
			continue
		}
		if first, ok := seen[p.ID]; ok {
			fmt.Fprintf(w, "#%d: id %q duplicates entry #%d\n", i+1, p.ID, first)
			invalid++
			continue
		}
		seen[p.ID] = i + 1
	}

	return invalid
}
