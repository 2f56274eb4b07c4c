package models

// Project is an active engagement created from an accepted RFP.
type Project struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Client      *string `json:"client,omitempty"`
	Budget      *string `json:"budget,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      string  `json:"status"`
	TeamSize    *int    `json:"team_size,omitempty"`
}

// ConversionPlan carries the precomputed parts of an RFP conversion into
// the store transaction: the deterministic project id, the projected end
// date, and the resolved person record ids to assign.
type ConversionPlan struct {
	RFPID     string
	ProjectID string
	EndDate   *string
	PersonIDs []string
}
