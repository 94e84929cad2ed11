package domain

import (
	"time"

	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/record"
)

// TimeRecord represents one logged task.
// The ID is assigned by the backend and is zero for unsaved records. The
// invariant EndTime >= StartTime always holds for records built through the
// reconciliation path; violations coming in over the wire are treated as
// zero-duration spans rather than surfaced as errors.
type TimeRecord struct {
	ID          int64
	ProjectID   int64
	ProjectName string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// NewTimeRecord creates an unsaved TimeRecord for the given project and
// reconciled endpoint pair.
func NewTimeRecord(projectID int64, description string, start, end time.Time) TimeRecord {
	triple := record.NewTriple(start, end)
	return TimeRecord{
		ProjectID:   projectID,
		Description: description,
		StartTime:   triple.StartTime(),
		EndTime:     triple.EndTime(),
	}
}

// Duration returns the record's derived duration, EndTime minus StartTime.
func (r TimeRecord) Duration() duration.Duration {
	return duration.Between(r.StartTime, r.EndTime)
}

// DurationDisplay returns the derived duration in canonical "HH:MM:SS" form.
func (r TimeRecord) DurationDisplay() string {
	return duration.Format(r.Duration())
}

// Triple returns the record's reconciled (start, end, duration) state for
// edit-in-place flows.
func (r TimeRecord) Triple() record.Triple {
	return record.NewTriple(r.StartTime, r.EndTime)
}

// IsValid checks if the time record has valid data.
func (r TimeRecord) IsValid() bool {
	if r.ProjectID <= 0 {
		return false
	}
	if r.StartTime.IsZero() {
		return false
	}
	if r.EndTime.Before(r.StartTime) {
		return false
	}
	return true
}
