package matching

import (
	"testing"
	"time"

	"github.com/staffgraph/staffgraph/internal/models"
)

func strPtr(s string) *string { return &s }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestReferenceDatePrefersStartDate(t *testing.T) {
	r := models.RFP{ID: "RFP-001", StartDate: strPtr("2026-03-01"), Deadline: strPtr("2026-02-15")}
	got, err := ReferenceDate(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(mustDate(t, "2026-03-01")) {
		t.Errorf("reference = %v, want start date", got)
	}
}

func TestReferenceDateFallsBackToDeadline(t *testing.T) {
	r := models.RFP{ID: "RFP-001", Deadline: strPtr("2026-02-15")}
	got, err := ReferenceDate(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(mustDate(t, "2026-02-15")) {
		t.Errorf("reference = %v, want deadline", got)
	}
}

func TestReferenceDateSkipsEmptyStartDate(t *testing.T) {
	r := models.RFP{ID: "RFP-001", StartDate: strPtr(""), Deadline: strPtr("2026-02-15")}
	got, err := ReferenceDate(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(mustDate(t, "2026-02-15")) {
		t.Errorf("reference = %v, want deadline", got)
	}
}

func TestReferenceDateMissingBoth(t *testing.T) {
	if _, err := ReferenceDate(models.RFP{ID: "RFP-001"}); err == nil {
		t.Fatal("expected an error for an RFP with no dates")
	}
}

func TestReferenceDateMalformed(t *testing.T) {
	r := models.RFP{ID: "RFP-001", StartDate: strPtr("03/01/2026")}
	if _, err := ReferenceDate(r); err == nil {
		t.Fatal("expected an error for a malformed start date")
	}
}

func TestDelayFor(t *testing.T) {
	reference := mustDate(t, "2026-03-01")

	t.Run("no assignment", func(t *testing.T) {
		d := DelayFor(reference, Window{})
		if d.Constrained {
			t.Error("unassigned candidate must be unconstrained")
		}
		if d.DaysUntilAvailable() != 0 {
			t.Errorf("days = %d, want 0", d.DaysUntilAvailable())
		}
	})

	t.Run("ends after reference", func(t *testing.T) {
		end := mustDate(t, "2026-03-21")
		d := DelayFor(reference, Window{LastProjectEnd: &end})
		if !d.Constrained || d.Days != 20 {
			t.Errorf("delay = %+v, want constrained 20 days", d)
		}
		if d.DaysUntilAvailable() != 20 {
			t.Errorf("days until available = %d, want 20", d.DaysUntilAvailable())
		}
	})

	t.Run("ended before reference", func(t *testing.T) {
		end := mustDate(t, "2026-02-01")
		d := DelayFor(reference, Window{LastProjectEnd: &end})
		if !d.Constrained || d.Days != -28 {
			t.Errorf("delay = %+v, want constrained -28 days", d)
		}
		// Negative gaps never surface to callers.
		if d.DaysUntilAvailable() != 0 {
			t.Errorf("days until available = %d, want 0", d.DaysUntilAvailable())
		}
	})
}

func TestCollectWindowsKeepsMaxEnd(t *testing.T) {
	ends := []models.AssignmentEnd{
		{PersonID: "p1", EndDate: strPtr("2026-04-01")},
		{PersonID: "p1", EndDate: strPtr("2026-06-15")},
		{PersonID: "p1", EndDate: strPtr("2026-05-01")},
		{PersonID: "p2", EndDate: strPtr("2026-03-01")},
	}

	windows := CollectWindows(ends, nil)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if got := windows["p1"].LastProjectEnd; got == nil || !got.Equal(mustDate(t, "2026-06-15")) {
		t.Errorf("p1 window = %v, want 2026-06-15", got)
	}
}

func TestCollectWindowsSkipsBadRows(t *testing.T) {
	ends := []models.AssignmentEnd{
		{PersonID: "p1", EndDate: strPtr("not-a-date")},
		{PersonID: "p1", EndDate: strPtr("2026-05-01")},
	}

	var reported []models.AssignmentEnd
	windows := CollectWindows(ends, func(row models.AssignmentEnd, err error) {
		reported = append(reported, row)
	})

	if len(reported) != 1 {
		t.Fatalf("expected 1 bad row reported, got %d", len(reported))
	}
	if got := windows["p1"].LastProjectEnd; got == nil || !got.Equal(mustDate(t, "2026-05-01")) {
		t.Errorf("p1 window = %v, want 2026-05-01 despite the bad row", got)
	}
}

func TestCollectWindowsDatelessEdge(t *testing.T) {
	ends := []models.AssignmentEnd{
		{PersonID: "p1", EndDate: nil},
	}
	windows := CollectWindows(ends, nil)
	w, ok := windows["p1"]
	if !ok {
		t.Fatal("expected a window entry for p1")
	}
	if w.LastProjectEnd != nil {
		t.Errorf("dateless edge must not constrain, got %v", w.LastProjectEnd)
	}
}
