package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/staffgraph/staffgraph/internal/db"
)

var convertCmd = &cobra.Command{
	Use:   "convert <rfp-id> <programmer-id>...",
	Short: "Convert an accepted RFP into a staffed project",
	Long: `Create a project from an RFP, copy its skill requirements, assign the
given people at full allocation and delete the RFP.

The conversion is a single transaction and consumes the RFP exactly once;
converting the same RFP twice fails with a not-found error.

Example:
  staffgraph convert RFP-007 P1 P2`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	rfpID := args[0]
	programmerIDs := args[1:]

	ctx, cancel := requestContext()
	defer cancel()

	projectID, err := getService().ConvertRFPToProject(ctx, rfpID, programmerIDs)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w (already converted?)", err)
		}
		return fmt.Errorf("convert: %w", err)
	}

	fmt.Printf("Created project %s with %d assignment(s); RFP %s removed.\n",
		projectID, len(programmerIDs), rfpID)
	return nil
}
