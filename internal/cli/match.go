package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/staffgraph/staffgraph/internal/models"
)

var matchMaxDelayMonths int

var (
	bucketStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	perfectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787"))
	futureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF00"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true)
)

var matchCmd = &cobra.Command{
	Use:   "match <rfp-id>",
	Short: "Find candidates for an RFP",
	Long: `Score every person against the RFP's skill requirements and bucket
them by availability.

Mandatory skills score 10 points, optional ones 5. Candidates missing a
mandatory skill land in partial matches regardless of availability.

Examples:
  staffgraph match RFP-007
  staffgraph match RFP-007 --max-delay-months 2`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&matchMaxDelayMonths, "max-delay-months", "m", 1,
		"how many months of delay still counts as available soon")
}

func runMatch(cmd *cobra.Command, args []string) error {
	rfpID := args[0]
	ctx, cancel := requestContext()
	defer cancel()

	resp, err := getService().FindCandidates(ctx, rfpID, matchMaxDelayMonths)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	total := len(resp.PerfectMatches) + len(resp.FutureMatches) + len(resp.PartialMatches)
	if total == 0 {
		fmt.Println("No qualified candidates found.")
		return nil
	}

	printBucket("Perfect matches", perfectStyle, resp.PerfectMatches)
	printBucket("Future matches", futureStyle, resp.FutureMatches)
	printBucket("Partial matches", partialStyle, resp.PartialMatches)
	return nil
}

func printBucket(title string, style lipgloss.Style, matches []models.CandidateMatch) {
	if len(matches) == 0 {
		return
	}
	fmt.Println(bucketStyle.Render(fmt.Sprintf("%s (%d)", title, len(matches))))
	for _, m := range matches {
		line := fmt.Sprintf("  %s  score %.0f  %.1f%% skills", m.ProgrammerName, m.TotalScore, m.SkillMatchPercent)
		fmt.Println(style.Render(line))

		var details []string
		if m.Role != nil && *m.Role != "" {
			details = append(details, *m.Role)
		}
		if m.DaysUntilAvailable > 0 {
			details = append(details, fmt.Sprintf("free in %d days", m.DaysUntilAvailable))
		}
		if m.CurrentProjectEndDate != nil {
			details = append(details, "current project ends "+*m.CurrentProjectEndDate)
		}
		if len(m.MissingMandatorySkills) > 0 {
			details = append(details, "missing: "+strings.Join(m.MissingMandatorySkills, ", "))
		}
		if len(details) > 0 {
			fmt.Println(hintStyle.Render("    " + strings.Join(details, " · ")))
		}
	}
	fmt.Println()
}
