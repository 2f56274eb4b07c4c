package models

// CandidateSkills is the scorer's input row: a person with the ids of the
// skills they hold. Rows arrive in deterministic store order (person id
// ascending), which doubles as the tie-break for equal scores.
type CandidateSkills struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   *string  `json:"role,omitempty"`
	Skills []string `json:"skills"`
}

// AssignmentEnd is one assignment edge's end date for a person. EndDate is
// nil when the edge carries no date, which the estimator treats as
// unconstrained.
type AssignmentEnd struct {
	PersonID string  `json:"person_id"`
	EndDate  *string `json:"end_date,omitempty"`
}

// Programmer is the listing view of a person with skills and current
// assignment status.
type Programmer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           *string  `json:"role,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Skills         []string `json:"skills"`
	IsAssigned     bool     `json:"is_assigned"`
	CurrentProject *string  `json:"current_project,omitempty"`
}
