// Package week computes the Sunday-start 7-day reporting windows that time
// records are grouped into.
package week

import (
	"sort"
	"time"
)

// dayFormat is the calendar-date key used for bucket identity.
const dayFormat = "2006-01-02"

// Bucket is a derived, non-persisted grouping key spanning Sunday through
// Saturday. Two dates belong to the same bucket iff their FirstDay values are
// the same calendar date.
type Bucket struct {
	FirstDay time.Time
	LastDay  time.Time
}

// Of returns the bucket containing the given date. FirstDay is the most
// recent Sunday at or before the date and LastDay is FirstDay plus six days.
// Boundaries are normalized to midnight in the date's location so that
// time-of-day never shifts bucket identity. Behavior for a DST transition
// landing exactly on the Sunday boundary is unspecified upstream and is not
// adjusted here.
func Of(date time.Time) Bucket {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	first := day.AddDate(0, 0, -int(day.Weekday()))
	return Bucket{
		FirstDay: first,
		LastDay:  first.AddDate(0, 0, 6),
	}
}

// Same reports whether two dates fall in the same bucket.
func Same(a, b time.Time) bool {
	return Of(a).Key() == Of(b).Key()
}

// Key returns the calendar date of FirstDay, suitable for map grouping.
func (b Bucket) Key() string {
	return b.FirstDay.Format(dayFormat)
}

// Contains reports whether the given date falls inside the bucket.
func (b Bucket) Contains(date time.Time) bool {
	return Of(date).Key() == b.Key()
}

// Label renders the bucket's span for report headings, e.g.
// "January 07 - January 13".
func (b Bucket) Label() string {
	return b.FirstDay.Format("January 02") + " - " + b.LastDay.Format("January 02")
}

// Before reports whether b starts before other. Used for newest-first report
// ordering.
func (b Bucket) Before(other Bucket) bool {
	return b.FirstDay.Before(other.FirstDay)
}

// SortNewestFirst orders buckets descending by FirstDay, most recent week
// first.
func SortNewestFirst(buckets []Bucket) {
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[j].Before(buckets[i])
	})
}
