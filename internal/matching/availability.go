package matching

import (
	"fmt"
	"time"

	"github.com/staffgraph/staffgraph/internal/models"
)

// Window is a person's commitment horizon: the latest end date among their
// assignments to active or planned projects. A nil LastProjectEnd means the
// person holds no qualifying assignment.
type Window struct {
	LastProjectEnd *time.Time
}

// Delay is the signed gap in days between an RFP's reference date and a
// candidate's commitment end. Constrained is false when the candidate has
// no qualifying assignment; Days is meaningless then.
type Delay struct {
	Days        int
	Constrained bool
}

// DaysUntilAvailable normalizes a delay for exposure: never negative,
// zero for unconstrained candidates.
func (d Delay) DaysUntilAvailable() int {
	if d.Constrained && d.Days > 0 {
		return d.Days
	}
	return 0
}

// ReferenceDate returns the date availability is measured against: the
// RFP's start date, falling back to its deadline. An RFP carrying neither
// is a data inconsistency; callers treat every candidate as unconstrained
// then and log the condition.
func ReferenceDate(r models.RFP) (time.Time, error) {
	for _, field := range []*string{r.StartDate, r.Deadline} {
		if field == nil || *field == "" {
			continue
		}
		t, err := models.ParseDate(*field)
		if err != nil {
			return time.Time{}, fmt.Errorf("rfp %s: malformed date %q: %w", r.ID, *field, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("rfp %s has neither start_date nor deadline", r.ID)
}

// DelayFor computes the delay of one candidate relative to the RFP's
// reference date. The result may be negative when the candidate's last
// assignment already ended.
func DelayFor(reference time.Time, w Window) Delay {
	if w.LastProjectEnd == nil {
		return Delay{}
	}
	return Delay{Days: models.DaysBetween(reference, *w.LastProjectEnd), Constrained: true}
}

// CollectWindows folds assignment rows into one Window per person, keeping
// the maximum end date. Rows with malformed dates are reported through
// onBadRow and skipped; a bad record never aborts the batch.
func CollectWindows(ends []models.AssignmentEnd, onBadRow func(models.AssignmentEnd, error)) map[string]Window {
	windows := make(map[string]Window, len(ends))
	for _, row := range ends {
		if row.EndDate == nil || *row.EndDate == "" {
			// Edge without a date constrains nothing.
			if _, seen := windows[row.PersonID]; !seen {
				windows[row.PersonID] = Window{}
			}
			continue
		}
		end, err := models.ParseDate(*row.EndDate)
		if err != nil {
			if onBadRow != nil {
				onBadRow(row, err)
			}
			continue
		}
		w := windows[row.PersonID]
		if w.LastProjectEnd == nil || end.After(*w.LastProjectEnd) {
			w.LastProjectEnd = &end
		}
		windows[row.PersonID] = w
	}
	return windows
}
