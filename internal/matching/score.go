// Package matching implements candidate scoring, availability estimation
// and categorization for open RFPs, plus the RFP-to-project conversion.
package matching

import (
	"math"
	"sort"

	"github.com/staffgraph/staffgraph/internal/models"
)

// Scoring weights. A mandatory requirement is worth twice an optional one.
const (
	mandatoryPoints = 10
	optionalPoints  = 5
)

// ScoredCandidate is a person ranked against one RFP's requirement set.
type ScoredCandidate struct {
	PersonID          string
	Name              string
	Role              *string
	TotalScore        float64
	MatchedCount      int
	TotalRequirements int
	SkillMatchPercent float64
	MissingMandatory  []string
}

// Score ranks candidates against a requirement set. People with no skill
// overlap at all (score 0) are excluded entirely, not just ranked last.
// The result is ordered by score descending; candidates with equal scores
// keep their input order, which the store guarantees to be person id
// ascending.
func Score(requirements []models.SkillRequirement, candidates []models.CandidateSkills) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))

	for _, c := range candidates {
		held := make(map[string]bool, len(c.Skills))
		for _, s := range c.Skills {
			held[s] = true
		}

		var total float64
		matched := 0
		missing := []string{}
		for _, req := range requirements {
			if held[req.SkillID] {
				matched++
				if req.Mandatory {
					total += mandatoryPoints
				} else {
					total += optionalPoints
				}
			} else if req.Mandatory {
				missing = append(missing, req.SkillID)
			}
		}

		if total == 0 {
			continue
		}

		scored = append(scored, ScoredCandidate{
			PersonID:          c.ID,
			Name:              c.Name,
			Role:              c.Role,
			TotalScore:        total,
			MatchedCount:      matched,
			TotalRequirements: len(requirements),
			SkillMatchPercent: matchPercent(matched, len(requirements)),
			MissingMandatory:  missing,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	return scored
}

// matchPercent returns the matched share as a percentage rounded to one
// decimal place. An empty requirement set yields 0, not a division error.
func matchPercent(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*1000) / 10
}
