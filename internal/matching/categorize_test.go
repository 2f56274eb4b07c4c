package matching

import (
	"testing"

	"github.com/staffgraph/staffgraph/internal/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name           string
		delay          Delay
		maxDelayMonths int
		want           models.AvailabilityStatus
	}{
		{"unconstrained", Delay{}, 1, models.StatusAvailable},
		{"ended in the past", Delay{Days: -10, Constrained: true}, 1, models.StatusAvailable},
		{"ends today", Delay{Days: 0, Constrained: true}, 1, models.StatusAvailable},
		{"within one month", Delay{Days: 20, Constrained: true}, 1, models.StatusAvailableSoon},
		{"exactly at threshold", Delay{Days: 30, Constrained: true}, 1, models.StatusAvailableSoon},
		{"beyond threshold", Delay{Days: 31, Constrained: true}, 1, models.StatusUnavailable},
		{"two month tolerance", Delay{Days: 60, Constrained: true}, 2, models.StatusAvailableSoon},
		{"zero tolerance", Delay{Days: 1, Constrained: true}, 0, models.StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.delay, tt.maxDelayMonths); got != tt.want {
				t.Errorf("StatusFor(%+v, %d) = %s, want %s", tt.delay, tt.maxDelayMonths, got, tt.want)
			}
		})
	}
}

func window(t *testing.T, end string) Window {
	t.Helper()
	d := mustDate(t, end)
	return Window{LastProjectEnd: &d}
}

func TestCategorizeBuckets(t *testing.T) {
	reference := Reference{Date: mustDate(t, "2026-03-01"), Known: true}
	scored := []ScoredCandidate{
		{PersonID: "free", Name: "Free", TotalScore: 20, MissingMandatory: []string{}},
		{PersonID: "soon", Name: "Soon", TotalScore: 20, MissingMandatory: []string{}},
		{PersonID: "busy", Name: "Busy", TotalScore: 20, MissingMandatory: []string{}},
		{PersonID: "gap", Name: "Gap", TotalScore: 10, MissingMandatory: []string{"go"}},
	}
	windows := map[string]Window{
		"soon": window(t, "2026-03-21"), // 20 days out
		"busy": window(t, "2026-04-30"), // 60 days out
		"gap":  {},
	}

	resp := Categorize("RFP-001", scored, windows, reference, 1)

	if len(resp.PerfectMatches) != 1 || resp.PerfectMatches[0].ProgrammerID != "free" {
		t.Errorf("perfect matches = %+v, want only free", resp.PerfectMatches)
	}
	if len(resp.FutureMatches) != 1 || resp.FutureMatches[0].ProgrammerID != "soon" {
		t.Errorf("future matches = %+v, want only soon", resp.FutureMatches)
	}
	if len(resp.PartialMatches) != 1 || resp.PartialMatches[0].ProgrammerID != "gap" {
		t.Errorf("partial matches = %+v, want only gap", resp.PartialMatches)
	}

	if got := resp.FutureMatches[0].DaysUntilAvailable; got != 20 {
		t.Errorf("soon days until available = %d, want 20", got)
	}
	if got := resp.FutureMatches[0].CurrentProjectEndDate; got == nil || *got != "2026-03-21" {
		t.Errorf("soon project end = %v, want 2026-03-21", got)
	}
}

// A candidate with every mandatory skill but unavailable beyond the
// threshold is surfaced nowhere.
func TestCategorizeDropsUnavailableCompleteMatch(t *testing.T) {
	reference := Reference{Date: mustDate(t, "2026-03-01"), Known: true}
	scored := []ScoredCandidate{
		{PersonID: "busy", Name: "Busy", TotalScore: 20, MissingMandatory: []string{}},
	}
	windows := map[string]Window{"busy": window(t, "2026-04-30")}

	resp := Categorize("RFP-001", scored, windows, reference, 1)
	total := len(resp.PerfectMatches) + len(resp.FutureMatches) + len(resp.PartialMatches)
	if total != 0 {
		t.Errorf("expected the candidate in no bucket, got %d entries", total)
	}
}

// Missing mandatory skills override availability: a partial candidate
// stays partial whether free today or booked for months.
func TestCategorizeMandatoryGapWinsOverAvailability(t *testing.T) {
	reference := Reference{Date: mustDate(t, "2026-03-01"), Known: true}
	scored := []ScoredCandidate{
		{PersonID: "gap-free", Name: "A", TotalScore: 5, MissingMandatory: []string{"go"}},
		{PersonID: "gap-busy", Name: "B", TotalScore: 5, MissingMandatory: []string{"go"}},
	}
	windows := map[string]Window{"gap-busy": window(t, "2027-01-01")}

	resp := Categorize("RFP-001", scored, windows, reference, 1)
	if len(resp.PartialMatches) != 2 {
		t.Fatalf("partial matches = %d, want 2", len(resp.PartialMatches))
	}
	if len(resp.PerfectMatches)+len(resp.FutureMatches) != 0 {
		t.Error("partial candidates must not appear in other buckets")
	}
	if got := resp.PartialMatches[1].Status; got != models.StatusUnavailable {
		t.Errorf("busy partial status = %s, want unavailable", got)
	}
}

func TestCategorizeUnknownReferenceTreatsAllAsFree(t *testing.T) {
	scored := []ScoredCandidate{
		{PersonID: "busy", Name: "Busy", TotalScore: 20, MissingMandatory: []string{}},
	}
	windows := map[string]Window{"busy": window(t, "2030-01-01")}

	resp := Categorize("RFP-001", scored, windows, Reference{}, 1)
	if len(resp.PerfectMatches) != 1 {
		t.Fatalf("expected the candidate in perfect matches, got %+v", resp)
	}
	if got := resp.PerfectMatches[0].DaysUntilAvailable; got != 0 {
		t.Errorf("days until available = %d, want 0 without a reference date", got)
	}
}

func TestCategorizeEmptyBucketsAreNonNil(t *testing.T) {
	resp := Categorize("RFP-001", nil, nil, Reference{}, 1)
	if resp.PerfectMatches == nil || resp.FutureMatches == nil || resp.PartialMatches == nil {
		t.Error("empty buckets must serialize as [], not null")
	}
}
