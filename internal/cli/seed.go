package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/staffgraph/staffgraph/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML fixture into the graph",
	Long: `Load skills, people, RFPs, projects and assignments from a YAML
fixture file. Existing records with the same ids are overwritten.

Example:
  staffgraph seed --file examples/demo.yaml`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (required)")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixture, err := seed.Load(seedFile)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := fixture.Apply(ctx, dbClient); err != nil {
		return fmt.Errorf("apply fixture: %w", err)
	}

	fmt.Printf("Seeded %d skills, %d people, %d RFPs, %d projects, %d assignments.\n",
		len(fixture.Skills), len(fixture.People), len(fixture.RFPs),
		len(fixture.Projects), len(fixture.Assignments))
	return nil
}
