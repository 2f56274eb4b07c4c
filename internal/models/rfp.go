package models

// SkillRequirement is one skill an RFP needs, resolved from a needs edge.
type SkillRequirement struct {
	SkillID         string  `json:"skill_id"`
	Mandatory       bool    `json:"mandatory"`
	ExperienceLevel *string `json:"experience_level,omitempty"`
}

// RFP is an open work request. Date fields stay in wire format until the
// matching engine parses them; either may be absent in ingested data.
type RFP struct {
	ID             string  `json:"id"`
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Client         *string `json:"client,omitempty"`
	Budget         *string `json:"budget,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	Deadline       *string `json:"deadline,omitempty"`
	DurationMonths *int    `json:"duration_months,omitempty"`
	TeamSize       *int    `json:"team_size,omitempty"`
}

// NeededSkill is a requirement as shown in RFP listings.
type NeededSkill struct {
	Name      string  `json:"name"`
	Level     *string `json:"level,omitempty"`
	Mandatory bool    `json:"mandatory"`
}

// RFPSummary is the listing view of an RFP with its requirements inlined.
type RFPSummary struct {
	ID           string        `json:"id"`
	Title        *string       `json:"title,omitempty"`
	Client       *string       `json:"client,omitempty"`
	Budget       *string       `json:"budget,omitempty"`
	NeededSkills []NeededSkill `json:"needed_skills"`
}
