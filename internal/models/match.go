package models

// AvailabilityStatus classifies how soon a candidate can start.
type AvailabilityStatus string

const (
	StatusAvailable     AvailabilityStatus = "available"
	StatusAvailableSoon AvailabilityStatus = "available_soon"
	StatusUnavailable   AvailabilityStatus = "unavailable"
)

// CandidateMatch is one ranked candidate in a match response.
// DaysUntilAvailable is always >= 0; status "available" implies 0.
type CandidateMatch struct {
	ProgrammerID           string             `json:"programmer_id"`
	ProgrammerName         string             `json:"programmer_name"`
	Role                   *string            `json:"role,omitempty"`
	TotalScore             float64            `json:"total_score"`
	SkillMatchPercent      float64            `json:"skill_match_percent"`
	MissingMandatorySkills []string           `json:"missing_mandatory_skills"`
	Status                 AvailabilityStatus `json:"status"`
	DaysUntilAvailable     int                `json:"days_until_available"`
	CurrentProjectEndDate  *string            `json:"current_project_end_date,omitempty"`
}

// MatchResponse groups candidates for one RFP into three ordered buckets.
// A person appears in at most one bucket; each is ordered by score descending.
type MatchResponse struct {
	RFPID          string           `json:"rfp_id"`
	PerfectMatches []CandidateMatch `json:"perfect_matches"`
	FutureMatches  []CandidateMatch `json:"future_matches"`
	PartialMatches []CandidateMatch `json:"partial_matches"`
}
