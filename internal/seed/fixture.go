// Package seed loads YAML fixtures into the staffing graph for demos and
// local development.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/staffgraph/staffgraph/internal/db"
	"gopkg.in/yaml.v3"
)

// Fixture is a full demo dataset. Records without an explicit id get a
// generated short id on load.
type Fixture struct {
	Skills      []Skill      `yaml:"skills"`
	People      []Person     `yaml:"people"`
	RFPs        []RFP        `yaml:"rfps"`
	Projects    []Project    `yaml:"projects"`
	Assignments []Assignment `yaml:"assignments"`
}

type Skill struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type Person struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Role     string        `yaml:"role"`
	Location string        `yaml:"location"`
	Skills   []PersonSkill `yaml:"skills"`
}

type PersonSkill struct {
	Skill string `yaml:"skill"`
	Level string `yaml:"level"`
}

type RFP struct {
	ID             string     `yaml:"id"`
	Title          string     `yaml:"title"`
	Description    string     `yaml:"description"`
	Client         string     `yaml:"client"`
	Budget         string     `yaml:"budget"`
	StartDate      string     `yaml:"start_date"`
	Deadline       string     `yaml:"deadline"`
	DurationMonths *int       `yaml:"duration_months"`
	TeamSize       *int       `yaml:"team_size"`
	Needs          []RFPSkill `yaml:"needs"`
}

type RFPSkill struct {
	Skill     string `yaml:"skill"`
	Mandatory bool   `yaml:"mandatory"`
	Level     string `yaml:"level"`
}

type Project struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Client    string `yaml:"client"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Status    string `yaml:"status"`
}

type Assignment struct {
	Person     string `yaml:"person"`
	Project    string `yaml:"project"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date"`
	Allocation int    `yaml:"allocation"`
}

// Load parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse parses fixture YAML and fills in missing ids.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	for i := range f.Skills {
		if f.Skills[i].ID == "" {
			// Skills are keyed by name so graph edges stay readable.
			f.Skills[i].ID = f.Skills[i].Name
		}
	}
	for i := range f.People {
		if f.People[i].ID == "" {
			f.People[i].ID = shortID()
		}
	}
	for i := range f.RFPs {
		if f.RFPs[i].ID == "" {
			f.RFPs[i].ID = shortID()
		}
	}
	for i := range f.Projects {
		if f.Projects[i].ID == "" {
			f.Projects[i].ID = shortID()
		}
	}
	return &f, nil
}

// Apply writes the fixture into the graph. Existing records with the same
// ids are overwritten; edges deduplicate via their unique keys.
func (f *Fixture) Apply(ctx context.Context, client *db.Client) error {
	for _, s := range f.Skills {
		_, err := client.Query(ctx, `
			UPSERT type::record("skill", $id) SET name = $name, category = $category
		`, map[string]any{"id": s.ID, "name": s.Name, "category": orNil(s.Category)})
		if err != nil {
			return fmt.Errorf("seed skill %s: %w", s.ID, err)
		}
	}

	for _, p := range f.People {
		_, err := client.Query(ctx, `
			UPSERT type::record("person", $id) SET name = $name, role = $role, location = $location
		`, map[string]any{"id": p.ID, "name": p.Name, "role": orNil(p.Role), "location": orNil(p.Location)})
		if err != nil {
			return fmt.Errorf("seed person %s: %w", p.ID, err)
		}
		for _, ps := range p.Skills {
			_, err := client.Query(ctx, `
				RELATE type::record("person", $person)->has_skill->type::record("skill", $skill)
				SET level = $level
			`, map[string]any{"person": p.ID, "skill": ps.Skill, "level": orNil(ps.Level)})
			if err != nil {
				return fmt.Errorf("seed skill edge %s->%s: %w", p.ID, ps.Skill, err)
			}
		}
	}

	for _, r := range f.RFPs {
		_, err := client.Query(ctx, `
			UPSERT type::record("rfp", $id) SET
				title = $title, description = $description, client = $client,
				budget = $budget, start_date = $start_date, deadline = $deadline,
				duration_months = $duration_months, team_size = $team_size
		`, map[string]any{
			"id": r.ID, "title": orNil(r.Title), "description": orNil(r.Description),
			"client": orNil(r.Client), "budget": orNil(r.Budget),
			"start_date": orNil(r.StartDate), "deadline": orNil(r.Deadline),
			"duration_months": r.DurationMonths, "team_size": r.TeamSize,
		})
		if err != nil {
			return fmt.Errorf("seed rfp %s: %w", r.ID, err)
		}
		for _, n := range r.Needs {
			_, err := client.Query(ctx, `
				RELATE type::record("rfp", $rfp)->needs->type::record("skill", $skill)
				SET mandatory = $mandatory, experience_level = $level
			`, map[string]any{"rfp": r.ID, "skill": n.Skill, "mandatory": n.Mandatory, "level": orNil(n.Level)})
			if err != nil {
				return fmt.Errorf("seed needs edge %s->%s: %w", r.ID, n.Skill, err)
			}
		}
	}

	for _, p := range f.Projects {
		status := p.Status
		if status == "" {
			status = "active"
		}
		_, err := client.Query(ctx, `
			UPSERT type::record("project", $id) SET
				title = $title, client = $client, start_date = $start_date,
				end_date = $end_date, status = $status
		`, map[string]any{
			"id": p.ID, "title": orNil(p.Title), "client": orNil(p.Client),
			"start_date": orNil(p.StartDate), "end_date": orNil(p.EndDate), "status": status,
		})
		if err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}

	for _, a := range f.Assignments {
		allocation := a.Allocation
		if allocation == 0 {
			allocation = 100
		}
		_, err := client.Query(ctx, `
			RELATE type::record("person", $person)->assigned_to->type::record("project", $project)
			SET start_date = $start_date, end_date = $end_date, allocation_percentage = $allocation
		`, map[string]any{
			"person": a.Person, "project": a.Project,
			"start_date": orNil(a.StartDate), "end_date": orNil(a.EndDate), "allocation": allocation,
		})
		if err != nil {
			return fmt.Errorf("seed assignment %s->%s: %w", a.Person, a.Project, err)
		}
	}

	return nil
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func shortID() string {
	return uuid.New().String()[:8]
}
