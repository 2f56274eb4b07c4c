package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rfpsCmd = &cobra.Command{
	Use:   "rfps",
	Short: "List open RFPs with their needed skills",
	RunE:  runListRFPs,
}

var rfpsNextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Print the next free RFP id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		id, err := dbClient.NextRFPID(ctx)
		if err != nil {
			return fmt.Errorf("next rfp id: %w", err)
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	rfpsCmd.AddCommand(rfpsNextIDCmd)
}

func runListRFPs(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	rfps, err := dbClient.ListRFPs(ctx)
	if err != nil {
		return fmt.Errorf("list rfps: %w", err)
	}

	if len(rfps) == 0 {
		fmt.Println("No RFPs found.")
		return nil
	}

	for _, r := range rfps {
		title := ""
		if r.Title != nil {
			title = *r.Title
		}
		fmt.Printf("%s  %s", r.ID, title)
		if r.Client != nil {
			fmt.Printf("  (%s)", *r.Client)
		}
		fmt.Println()
		for _, s := range r.NeededSkills {
			marker := "optional"
			if s.Mandatory {
				marker = "mandatory"
			}
			if s.Level != nil {
				fmt.Printf("    %s  %s, %s\n", s.Name, marker, *s.Level)
			} else {
				fmt.Printf("    %s  %s\n", s.Name, marker)
			}
		}
	}
	return nil
}
