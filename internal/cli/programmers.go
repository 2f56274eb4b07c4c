package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/staffgraph/staffgraph/internal/models"
)

var programmersStatus string

// Statuses that make a person count as assigned in the listing view. Wider
// than the matcher's set: a person parked on an on-hold project is not
// free either.
var listingStatuses = []string{"active", "planned", "on_hold"}

var programmersCmd = &cobra.Command{
	Use:   "programmers",
	Short: "List people with skills and assignment status",
	Long: `List every person with their skills, whether they are currently
assigned, and the project they are on.

Examples:
  staffgraph programmers
  staffgraph programmers --status available
  staffgraph programmers --status assigned`,
	RunE: runListProgrammers,
}

func init() {
	programmersCmd.Flags().StringVarP(&programmersStatus, "status", "s", "",
		"filter: available or assigned")
}

func runListProgrammers(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	programmers, err := dbClient.ListProgrammers(ctx, listingStatuses)
	if err != nil {
		return fmt.Errorf("list programmers: %w", err)
	}

	// Filter client-side; the typed rows are already decoded.
	switch programmersStatus {
	case "":
	case "available":
		programmers = filterProgrammers(programmers, false)
	case "assigned":
		programmers = filterProgrammers(programmers, true)
	default:
		return fmt.Errorf("unknown status %q (want available or assigned)", programmersStatus)
	}

	if len(programmers) == 0 {
		fmt.Println("No programmers found.")
		return nil
	}

	for _, p := range programmers {
		fmt.Printf("%s  %s", p.ID, p.Name)
		if p.Role != nil {
			fmt.Printf("  (%s)", *p.Role)
		}
		if p.IsAssigned && p.CurrentProject != nil {
			fmt.Printf("  on %s", *p.CurrentProject)
		}
		fmt.Println()
		if len(p.Skills) > 0 {
			fmt.Printf("    %s\n", strings.Join(p.Skills, ", "))
		}
	}
	return nil
}

func filterProgrammers(programmers []models.Programmer, assigned bool) []models.Programmer {
	out := programmers[:0]
	for _, p := range programmers {
		if p.IsAssigned == assigned {
			out = append(out, p)
		}
	}
	return out
}
