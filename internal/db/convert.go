package db

import (
	"context"
	"fmt"

	"github.com/staffgraph/staffgraph/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// convertSQL turns an accepted RFP into an active project in one
// transaction. The THROW statements abort the whole block, so either every
// step applies or none does. The existence guard also decides races:
// of two concurrent conversions only the first finds the RFP.
const convertSQL = `
	BEGIN TRANSACTION;

	LET $rfp = (SELECT * FROM ONLY type::record("rfp", $rfp_id));
	IF $rfp == NONE {
		THROW "rfp not found: " + $rfp_id
	};

	LET $people = (SELECT * FROM person WHERE record::id(id) IN $person_ids);
	IF array::len($people) != array::len($person_ids) {
		THROW "person not found"
	};

	LET $project = (CREATE ONLY type::record("project", $project_id) SET
		title = $rfp.title,
		description = $rfp.description,
		client = $rfp.client,
		budget = $rfp.budget,
		start_date = $rfp.start_date,
		end_date = $end_date,
		status = 'active',
		team_size = $rfp.team_size);

	FOR $need IN (SELECT out, mandatory, experience_level FROM type::record("rfp", $rfp_id)->needs) {
		RELATE $project->requires->($need.out) SET
			mandatory = $need.mandatory,
			minimum_level = $need.experience_level;
	};

	FOR $person IN $people {
		RELATE $person->assigned_to->$project SET
			start_date = $project.start_date,
			end_date = $project.end_date,
			allocation_percentage = 100;
	};

	DELETE type::record("rfp", $rfp_id)->needs;
	DELETE type::record("rfp", $rfp_id);

	COMMIT TRANSACTION;
`

// ConvertRFPToProject atomically creates a project from an RFP, copies its
// requirement edges, assigns the given people at 100% allocation and
// deletes the RFP. Returns ErrNotFound when the RFP (or a person) does not
// exist, which is also what a retry after success sees.
func (c *Client) ConvertRFPToProject(ctx context.Context, plan models.ConversionPlan) error {
	_, err := surrealdb.Query[any](ctx, c.db, convertSQL, map[string]any{
		"rfp_id":     plan.RFPID,
		"project_id": plan.ProjectID,
		"end_date":   plan.EndDate,
		"person_ids": plan.PersonIDs,
	})
	if err != nil {
		return fmt.Errorf("convert rfp: %w", wrapQueryError(err))
	}
	return nil
}

// GetProject retrieves a project by id. Returns nil when it does not exist.
func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	results, err := surrealdb.Query[[]models.Project](ctx, c.db, `
		SELECT record::id(id) AS id, title, description, client, budget,
		       start_date, end_date, status, team_size
		FROM type::record("project", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, nil
	}
	return &(*results)[0].Result[0], nil
}
