package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffgraph/staffgraph/internal/db"
	"github.com/staffgraph/staffgraph/internal/metrics"
	"github.com/staffgraph/staffgraph/internal/models"
)

// Statuses of projects that block a person's availability. The
// programmer-listing view additionally counts on_hold projects, but for
// match scoring only work that will actually run matters.
var blockingStatuses = []string{"active", "planned"}

// DefaultDurationMonths is the project length assumed when an RFP does not
// specify one.
const DefaultDurationMonths = 6

// projectIDPrefix makes the conversion target id a deterministic function
// of the RFP id, so retries cannot mint duplicate projects.
const projectIDPrefix = "PROJ-"

// Store is the graph capability the matching engine needs. *db.Client
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	// GetRFP returns nil (not an error) when the RFP does not exist.
	GetRFP(ctx context.Context, id string) (*models.RFP, error)
	// Requirements returns the RFP's needed skills in deterministic order.
	Requirements(ctx context.Context, rfpID string) ([]models.SkillRequirement, error)
	// CandidateSkills returns every person with their skill ids, ordered
	// by person id ascending.
	CandidateSkills(ctx context.Context) ([]models.CandidateSkills, error)
	// AssignmentEnds returns assignment end dates for the given people,
	// restricted to projects in the given statuses.
	AssignmentEnds(ctx context.Context, personIDs []string, statuses []string) ([]models.AssignmentEnd, error)
	// ResolvePersonIDs returns the subset of the given ids that exist as
	// person records.
	ResolvePersonIDs(ctx context.Context, ids []string) ([]string, error)
	// ConvertRFPToProject executes the conversion transaction and returns
	// db.ErrNotFound when the RFP is already gone.
	ConvertRFPToProject(ctx context.Context, plan models.ConversionPlan) error
}

// Service exposes the matching pipeline and the conversion commit.
// It holds no mutable state; every call derives its result from the
// graph snapshot it reads.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewService creates a matching service. logger and collector may be nil.
func NewService(store Store, logger *slog.Logger, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, metrics: collector}
}

// FindCandidates scores every person against the RFP's requirements,
// estimates their availability and returns them bucketed. Re-running
// against an unchanged graph yields an identical response.
func (s *Service) FindCandidates(ctx context.Context, rfpID string, maxDelayMonths int) (*models.MatchResponse, error) {
	start := time.Now()
	log := s.logger.With("match_id", shortID(), "rfp", rfpID)

	rfp, err := s.store.GetRFP(ctx, rfpID)
	if err != nil {
		return nil, fmt.Errorf("load rfp: %w", err)
	}
	if rfp == nil {
		return nil, fmt.Errorf("rfp %s: %w", rfpID, db.ErrNotFound)
	}

	requirements, err := s.store.Requirements(ctx, rfpID)
	if err != nil {
		return nil, fmt.Errorf("resolve requirements: %w", err)
	}

	candidates, err := s.store.CandidateSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	scored := Score(requirements, candidates)
	if len(scored) == 0 {
		log.Info("no qualified candidates", "requirements", len(requirements))
		return &models.MatchResponse{
			RFPID:          rfpID,
			PerfectMatches: []models.CandidateMatch{},
			FutureMatches:  []models.CandidateMatch{},
			PartialMatches: []models.CandidateMatch{},
		}, nil
	}

	ids := make([]string, len(scored))
	for i, sc := range scored {
		ids[i] = sc.PersonID
	}
	ends, err := s.store.AssignmentEnds(ctx, ids, blockingStatuses)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	windows := CollectWindows(ends, func(row models.AssignmentEnd, err error) {
		log.Warn("skipping malformed assignment record", "person", row.PersonID, "error", err)
	})

	var reference Reference
	if refDate, err := ReferenceDate(*rfp); err != nil {
		// Data inconsistency: without a reference date every candidate is
		// treated as free now, which masks real scheduling conflicts.
		log.Warn("rfp has no usable schedule date, treating candidates as unconstrained", "error", err)
	} else {
		reference = Reference{Date: refDate, Known: true}
	}

	resp := Categorize(rfpID, scored, windows, reference, maxDelayMonths)

	if s.metrics != nil {
		s.metrics.Record(metrics.OpMatch, time.Since(start))
	}
	log.Info("matched candidates",
		"perfect", len(resp.PerfectMatches),
		"future", len(resp.FutureMatches),
		"partial", len(resp.PartialMatches),
		"scored", len(scored))
	return resp, nil
}

// ConvertRFPToProject commits an accepted match: it creates a project from
// the RFP, copies its requirements, assigns the given people at 100%
// allocation and deletes the RFP, all in one store transaction. The
// operation consumes the RFP exactly once; a second call fails with
// db.ErrNotFound.
func (s *Service) ConvertRFPToProject(ctx context.Context, rfpID string, programmerIDs []string) (string, error) {
	start := time.Now()
	log := s.logger.With("rfp", rfpID)

	rfp, err := s.store.GetRFP(ctx, rfpID)
	if err != nil {
		return "", fmt.Errorf("load rfp: %w", err)
	}
	if rfp == nil {
		return "", fmt.Errorf("rfp %s: %w", rfpID, db.ErrNotFound)
	}

	personIDs, err := s.store.ResolvePersonIDs(ctx, normalizeIDs(programmerIDs))
	if err != nil {
		return "", fmt.Errorf("resolve programmers: %w", err)
	}
	if missing := unmatchedIDs(programmerIDs, personIDs); len(missing) > 0 {
		return "", fmt.Errorf("programmer %s: %w", strings.Join(missing, ", "), db.ErrNotFound)
	}

	plan := models.ConversionPlan{
		RFPID:     rfpID,
		ProjectID: projectIDPrefix + rfpID,
		EndDate:   projectEndDate(*rfp, log),
		PersonIDs: personIDs,
	}

	if err := s.store.ConvertRFPToProject(ctx, plan); err != nil {
		if errors.Is(err, db.ErrTransactionConflict) {
			// A concurrent commit won the race. Re-check: if the RFP is
			// gone the winner consumed it and this caller sees NotFound.
			if rfp, checkErr := s.store.GetRFP(ctx, rfpID); checkErr == nil && rfp == nil {
				return "", fmt.Errorf("rfp %s: %w", rfpID, db.ErrNotFound)
			}
		}
		return "", fmt.Errorf("convert rfp %s: %w", rfpID, err)
	}

	if s.metrics != nil {
		s.metrics.Record(metrics.OpConvert, time.Since(start))
	}
	log.Info("converted rfp to project", "project", plan.ProjectID, "assigned", len(personIDs))
	return plan.ProjectID, nil
}

// projectEndDate projects the engagement end from the RFP start date and
// duration. An RFP without a parsable start date yields a project without
// an end date, mirroring what the data allows.
func projectEndDate(rfp models.RFP, log *slog.Logger) *string {
	if rfp.StartDate == nil || *rfp.StartDate == "" {
		log.Warn("rfp has no start date, creating project without end date")
		return nil
	}
	start, err := models.ParseDate(*rfp.StartDate)
	if err != nil {
		log.Warn("rfp start date is malformed, creating project without end date", "error", err)
		return nil
	}
	months := DefaultDurationMonths
	if rfp.DurationMonths != nil {
		months = *rfp.DurationMonths
	}
	end := models.FormatDate(start.AddDate(0, months, 0))
	return &end
}

// unmatchedIDs reports requested ids that resolved to no person record,
// accepting a numeric-equivalent id as a match.
func unmatchedIDs(requested, resolved []string) []string {
	found := make(map[string]bool, len(resolved))
	for _, id := range resolved {
		found[id] = true
	}
	var missing []string
	for _, id := range requested {
		if found[id] {
			continue
		}
		if n, err := strconv.Atoi(id); err == nil && found[strconv.Itoa(n)] {
			continue
		}
		missing = append(missing, id)
	}
	return missing
}

// normalizeIDs expands requested ids with their numeric-equivalent form.
// Some data loads key people by plain numbers, so a request for "007"
// must also match person 7.
func normalizeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range ids {
		add(id)
		if n, err := strconv.Atoi(id); err == nil {
			add(strconv.Itoa(n))
		}
	}
	return out
}

func shortID() string {
	return uuid.New().String()[:8]
}
