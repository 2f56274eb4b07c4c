package seed

import (
	"testing"
)

const fixtureYAML = `
skills:
  - name: Python
    category: language
  - name: Docker
people:
  - id: P1
    name: Ada Byron
    role: Senior Engineer
    skills:
      - skill: Python
        level: Expert
  - name: Grace Hopper
    skills:
      - skill: Docker
rfps:
  - id: RFP-001
    title: Data platform
    client: Acme
    start_date: "2026-01-01"
    duration_months: 3
    needs:
      - skill: Python
        mandatory: true
      - skill: Docker
projects:
  - id: PROJ-X
    title: Legacy rewrite
    status: active
assignments:
  - person: P1
    project: PROJ-X
    end_date: "2026-02-01"
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(f.Skills) != 2 || len(f.People) != 2 || len(f.RFPs) != 1 {
		t.Fatalf("unexpected counts: %d skills, %d people, %d rfps",
			len(f.Skills), len(f.People), len(f.RFPs))
	}

	// Skills without an id are keyed by name.
	if f.Skills[0].ID != "Python" {
		t.Errorf("skill id = %q, want Python", f.Skills[0].ID)
	}

	// Explicit ids are preserved, missing ones generated.
	if f.People[0].ID != "P1" {
		t.Errorf("person id = %q, want P1", f.People[0].ID)
	}
	if f.People[1].ID == "" {
		t.Error("expected generated id for second person")
	}

	rfp := f.RFPs[0]
	if rfp.DurationMonths == nil || *rfp.DurationMonths != 3 {
		t.Errorf("duration_months = %v, want 3", rfp.DurationMonths)
	}
	if len(rfp.Needs) != 2 || !rfp.Needs[0].Mandatory || rfp.Needs[1].Mandatory {
		t.Errorf("unexpected needs: %+v", rfp.Needs)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("skills: {not: a list}")); err == nil {
		t.Error("expected error for malformed fixture")
	}
}
