// Package record keeps a time record's start time, end time, and duration
// display mutually consistent. Every mutation has exactly one driving field;
// the other two are derived in the same call, so feedback loops cannot occur
// by construction.
package record

import (
	"time"

	"time-tracker-client/internal/duration"
)

// Field identifies one member of the reconciled triple.
type Field string

const (
	FieldStartTime Field = "start_time"
	FieldEndTime   Field = "end_time"
	FieldDuration  Field = "duration"
)

// ChangeSet lists the fields whose values changed during a reconciliation
// step, in a fixed order. Callers use it to build partial updates covering
// only the touched fields.
type ChangeSet []Field

// Contains reports whether the given field changed.
func (c ChangeSet) Contains(field Field) bool {
	for _, f := range c {
		if f == field {
			return true
		}
	}
	return false
}

// Empty reports whether the reconciliation step was a no-op.
func (c ChangeSet) Empty() bool {
	return len(c) == 0
}

// Triple holds the reconciled (startTime, endTime, durationDisplay) state of
// one time record. The invariant endTime >= startTime and
// durationDisplay == Format(endTime - startTime) holds after every mutation.
type Triple struct {
	start time.Time
	end   time.Time
	dur   duration.Duration
}

// NewTriple builds a Triple from a start/end pair. An end before start is
// clamped to start so the invariant holds from the outset.
func NewTriple(start, end time.Time) Triple {
	if end.Before(start) {
		end = start
	}
	return Triple{
		start: start,
		end:   end,
		dur:   duration.Between(start, end),
	}
}

// StartTime returns the reconciled start time.
func (t *Triple) StartTime() time.Time {
	return t.start
}

// EndTime returns the reconciled end time.
func (t *Triple) EndTime() time.Time {
	return t.end
}

// Duration returns the reconciled duration.
func (t *Triple) Duration() duration.Duration {
	return t.dur
}

// DurationDisplay returns the duration in canonical "HH:MM:SS" form.
func (t *Triple) DurationDisplay() string {
	return duration.Format(t.dur)
}

// EditStartTime applies a start-time edit. Start is the driving field: if the
// new start is after the current end, the end collapses to the new start
// (zero-duration clamp) rather than rejecting the edit. The duration is
// recomputed from the resulting pair.
func (t *Triple) EditStartTime(newStart time.Time) ChangeSet {
	var changes ChangeSet

	if !newStart.Equal(t.start) {
		t.start = newStart
		changes = append(changes, FieldStartTime)
	}
	if t.end.Before(t.start) {
		t.end = t.start
		changes = append(changes, FieldEndTime)
	}

	return t.recomputeDuration(changes)
}

// EditEndTime applies an end-time edit. End is the driving field: if the new
// end is before the current start, the start collapses to the new end. The
// duration is recomputed from the resulting pair.
func (t *Triple) EditEndTime(newEnd time.Time) ChangeSet {
	var changes ChangeSet

	if !newEnd.Equal(t.end) {
		t.end = newEnd
		changes = append(changes, FieldEndTime)
	}
	if t.end.Before(t.start) {
		t.start = t.end
		changes = append(changes, FieldStartTime)
	}

	return t.recomputeDuration(changes)
}

// EditDuration applies a duration edit, the inverse of the endpoint edits:
// the string is parsed leniently, the start time is held fixed, and the end
// time moves to start plus the parsed duration.
func (t *Triple) EditDuration(durationString string) ChangeSet {
	var changes ChangeSet

	parsed := duration.Parse(durationString)
	newEnd := t.start.Add(parsed.Elapsed())
	if !newEnd.Equal(t.end) {
		t.end = newEnd
		changes = append(changes, FieldEndTime)
	}

	return t.recomputeDuration(changes)
}

// recomputeDuration re-derives the duration from the endpoint pair and
// records it in the change set when it moved.
func (t *Triple) recomputeDuration(changes ChangeSet) ChangeSet {
	recomputed := duration.Between(t.start, t.end)
	if recomputed != t.dur {
		t.dur = recomputed
		changes = append(changes, FieldDuration)
	}
	return changes
}
