package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/staffgraph/staffgraph/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// GetRFP retrieves an RFP by id. Returns nil when it does not exist.
func (c *Client) GetRFP(ctx context.Context, id string) (*models.RFP, error) {
	results, err := surrealdb.Query[[]models.RFP](ctx, c.db, `
		SELECT record::id(id) AS id, title, description, client, budget,
		       start_date, deadline, duration_months, team_size
		FROM type::record("rfp", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get rfp: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, nil
	}
	return &(*results)[0].Result[0], nil
}

// Requirements returns the skills an RFP needs. Ordered by skill id so the
// requirement order (and with it the missing-mandatory order) is stable
// across runs.
func (c *Client) Requirements(ctx context.Context, rfpID string) ([]models.SkillRequirement, error) {
	results, err := surrealdb.Query[[]models.SkillRequirement](ctx, c.db, `
		SELECT record::id(out) AS skill_id, mandatory, experience_level
		FROM type::record("rfp", $id)->needs
		ORDER BY skill_id
	`, map[string]any{"id": rfpID})
	if err != nil {
		return nil, fmt.Errorf("rfp requirements: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.SkillRequirement{}, nil
	}
	return (*results)[0].Result, nil
}

// CandidateSkills returns every person with the ids of the skills they
// hold, ordered by person id ascending. The order matters: the scorer's
// tie-break for equal scores is this query order.
func (c *Client) CandidateSkills(ctx context.Context) ([]models.CandidateSkills, error) {
	results, err := surrealdb.Query[[]models.CandidateSkills](ctx, c.db, `
		SELECT record::id(id) AS id, name, role,
		       array::map(->has_skill->skill, |$s| record::id($s)) AS skills
		FROM person
		ORDER BY id
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("candidate skills: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.CandidateSkills{}, nil
	}
	return (*results)[0].Result, nil
}

// AssignmentEnds returns the end dates of assignments held by the given
// people on projects in the given statuses. One row per edge; the caller
// folds them into per-person maxima.
func (c *Client) AssignmentEnds(ctx context.Context, personIDs []string, statuses []string) ([]models.AssignmentEnd, error) {
	results, err := surrealdb.Query[[]models.AssignmentEnd](ctx, c.db, `
		SELECT record::id(in) AS person_id, end_date
		FROM assigned_to
		WHERE record::id(in) IN $people AND out.status IN $statuses
	`, map[string]any{"people": personIDs, "statuses": statuses})
	if err != nil {
		return nil, fmt.Errorf("assignment ends: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.AssignmentEnd{}, nil
	}
	return (*results)[0].Result, nil
}

// ResolvePersonIDs returns the subset of the given ids that exist as
// person records.
func (c *Client) ResolvePersonIDs(ctx context.Context, ids []string) ([]string, error) {
	type idRow struct {
		ID string `json:"id"`
	}
	results, err := surrealdb.Query[[]idRow](ctx, c.db, `
		SELECT record::id(id) AS id FROM person WHERE record::id(id) IN $ids
	`, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("resolve person ids: %w", err)
	}

	resolved := []string{}
	if results != nil && len(*results) > 0 {
		for _, row := range (*results)[0].Result {
			resolved = append(resolved, row.ID)
		}
	}
	return resolved, nil
}

// ListRFPs returns all RFPs with their needed skills, ordered by id.
func (c *Client) ListRFPs(ctx context.Context) ([]models.RFPSummary, error) {
	results, err := surrealdb.Query[[]models.RFPSummary](ctx, c.db, `
		SELECT record::id(id) AS id, title, client, budget,
		       (SELECT record::id(out) AS name, experience_level AS level, mandatory
		        FROM $parent->needs ORDER BY name) AS needed_skills
		FROM rfp
		ORDER BY id
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("list rfps: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.RFPSummary{}, nil
	}
	return (*results)[0].Result, nil
}

// NextRFPID returns the next free RFP-NNN id, RFP-001 on an empty graph.
func (c *Client) NextRFPID(ctx context.Context) (string, error) {
	type idRow struct {
		ID string `json:"id"`
	}
	results, err := surrealdb.Query[[]idRow](ctx, c.db, `
		SELECT record::id(id) AS id FROM rfp ORDER BY id DESC LIMIT 1
	`, nil)
	if err != nil {
		return "", fmt.Errorf("next rfp id: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return "RFP-001", nil
	}

	last := (*results)[0].Result[0].ID // e.g. "RFP-042"
	parts := strings.Split(last, "-")
	num, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("next rfp id: malformed id %q", last)
	}
	return fmt.Sprintf("RFP-%03d", num+1), nil
}

// ListProgrammers returns every person with skills and assignment status.
// A person counts as assigned when linked to a project in any of the given
// statuses; the current project is the first such title.
func (c *Client) ListProgrammers(ctx context.Context, statuses []string) ([]models.Programmer, error) {
	type programmerRow struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Role           *string  `json:"role,omitempty"`
		Location       *string  `json:"location,omitempty"`
		Skills         []string `json:"skills"`
		ActiveProjects []string `json:"active_projects"`
	}

	results, err := surrealdb.Query[[]programmerRow](ctx, c.db, `
		SELECT record::id(id) AS id, name, role, location,
		       array::map(->has_skill->skill, |$s| record::id($s)) AS skills,
		       (SELECT VALUE title FROM $parent->assigned_to->project
		        WHERE status IN $statuses) AS active_projects
		FROM person
		ORDER BY id
	`, map[string]any{"statuses": statuses})
	if err != nil {
		return nil, fmt.Errorf("list programmers: %w", err)
	}

	programmers := []models.Programmer{}
	if results == nil || len(*results) == 0 {
		return programmers, nil
	}
	for _, row := range (*results)[0].Result {
		p := models.Programmer{
			ID:         row.ID,
			Name:       row.Name,
			Role:       row.Role,
			Location:   row.Location,
			Skills:     row.Skills,
			IsAssigned: len(row.ActiveProjects) > 0,
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		if len(row.ActiveProjects) > 0 {
			title := row.ActiveProjects[0]
			p.CurrentProject = &title
		}
		programmers = append(programmers, p)
	}
	return programmers, nil
}
