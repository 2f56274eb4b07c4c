package matching

import (
	"time"

	"github.com/staffgraph/staffgraph/internal/models"
)

// daysPerMonth is a deliberate flat approximation. The availability
// threshold has always been computed this way; switching to calendar
// months would silently re-bucket existing candidates.
const daysPerMonth = 30

// StatusFor classifies a delay against the caller's tolerance window.
func StatusFor(d Delay, maxDelayMonths int) models.AvailabilityStatus {
	switch {
	case !d.Constrained || d.Days <= 0:
		return models.StatusAvailable
	case d.Days <= maxDelayMonths*daysPerMonth:
		return models.StatusAvailableSoon
	default:
		return models.StatusUnavailable
	}
}

// Categorize buckets scored candidates into perfect, future and partial
// matches. Missing mandatory skills always win over availability: such a
// candidate lands in partial_matches even if free today. Candidates who
// hold every mandatory skill but are unavailable beyond the threshold are
// surfaced in no bucket at all; hiding them is intentional product
// behavior, not an oversight.
//
// A person missing from windows holds no qualifying assignment and counts
// as available now.
func Categorize(rfpID string, scored []ScoredCandidate, windows map[string]Window, reference Reference, maxDelayMonths int) *models.MatchResponse {
	resp := &models.MatchResponse{
		RFPID:          rfpID,
		PerfectMatches: []models.CandidateMatch{},
		FutureMatches:  []models.CandidateMatch{},
		PartialMatches: []models.CandidateMatch{},
	}

	for _, sc := range scored {
		w := windows[sc.PersonID]

		var delay Delay
		if reference.Known {
			delay = DelayFor(reference.Date, w)
		}
		status := StatusFor(delay, maxDelayMonths)

		var endDate *string
		if w.LastProjectEnd != nil {
			s := models.FormatDate(*w.LastProjectEnd)
			endDate = &s
		}

		match := models.CandidateMatch{
			ProgrammerID:           sc.PersonID,
			ProgrammerName:         sc.Name,
			Role:                   sc.Role,
			TotalScore:             sc.TotalScore,
			SkillMatchPercent:      sc.SkillMatchPercent,
			MissingMandatorySkills: sc.MissingMandatory,
			Status:                 status,
			DaysUntilAvailable:     delay.DaysUntilAvailable(),
			CurrentProjectEndDate:  endDate,
		}

		switch {
		case len(sc.MissingMandatory) > 0:
			resp.PartialMatches = append(resp.PartialMatches, match)
		case status == models.StatusAvailable:
			resp.PerfectMatches = append(resp.PerfectMatches, match)
		case status == models.StatusAvailableSoon:
			resp.FutureMatches = append(resp.FutureMatches, match)
		}
	}

	return resp
}

// Reference is the RFP date candidates are measured against. Known is
// false when the RFP carries no usable date; every candidate is then
// treated as unconstrained.
type Reference struct {
	Date  time.Time
	Known bool
}
