package domain

import (
	"time-tracker-client/internal/duration"
)

// Project represents a project time records are logged against.
// The record digests are owned by the backend; the client treats them as a
// read-only aggregate for reporting.
type Project struct {
	ID      int64
	Name    string
	Records []ProjectRecord
}

// ProjectRecord is the per-record duration digest nested in a project.
type ProjectRecord struct {
	ID       int64
	Duration duration.Duration
}

// NewProject creates a new Project with the given name.
func NewProject(name string) Project {
	return Project{
		Name: name,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != ""
}

// TotalDuration sums the durations of all records logged against the
// project. An empty record list yields the zero duration.
func (p Project) TotalDuration() duration.Duration {
	total := duration.Zero
	for _, r := range p.Records {
		total = duration.Add(total, r.Duration)
	}
	return total
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
