// Package report aggregates time records into week-based reporting buckets
// and per-project summaries.
package report

import (
	"sort"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/week"
)

// WeekGroup is one reporting bucket: the Sunday-start window, the summed
// duration of its records, and the records themselves ordered newest start
// time first.
type WeekGroup struct {
	Bucket  week.Bucket
	Total   duration.Duration
	Records []*domain.TimeRecord
}

// TotalDisplay returns the group total in canonical "HH:MM:SS" form.
func (g WeekGroup) TotalDisplay() string {
	return duration.Format(g.Total)
}

// Weekly groups records by the week bucket of their start time. Groups are
// ordered most recent week first; within a group, records are ordered newest
// start time first. Totals are summed with carry-propagating duration
// addition, so they cannot drift the way float arithmetic would.
func Weekly(records []*domain.TimeRecord) []WeekGroup {
	grouped := make(map[string]*WeekGroup)
	for _, r := range records {
		bucket := week.Of(r.StartTime)
		group, exists := grouped[bucket.Key()]
		if !exists {
			group = &WeekGroup{Bucket: bucket}
			grouped[bucket.Key()] = group
		}
		group.Records = append(group.Records, r)
		group.Total = duration.Add(group.Total, r.Duration())
	}

	groups := make([]WeekGroup, 0, len(grouped))
	for _, group := range grouped {
		sort.SliceStable(group.Records, func(i, j int) bool {
			return group.Records[j].StartTime.Before(group.Records[i].StartTime)
		})
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[j].Bucket.Before(groups[i].Bucket)
	})
	return groups
}

// WeekTotal sums the durations of the given records and returns the
// canonical "HH:MM:SS" form. An empty input yields "00:00:00", not an error.
func WeekTotal(records []*domain.TimeRecord) string {
	total := duration.Zero
	for _, r := range records {
		total = duration.Add(total, r.Duration())
	}
	return duration.Format(total)
}

// ProjectSummary is the per-project reporting line: total logged time in
// human form and the number of records behind it.
type ProjectSummary struct {
	Project     *domain.Project
	TotalTime   string
	RecordCount int
}

// Projects builds a summary per project, reusing the duration-sum step
// without week bucketing. A project with no records totals "00h 00m 00s".
func Projects(projects []*domain.Project) []*ProjectSummary {
	summaries := make([]*ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = &ProjectSummary{
			Project:     p,
			TotalTime:   duration.HumanString(p.TotalDuration()),
			RecordCount: len(p.Records),
		}
	}
	return summaries
}
