package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.January, 10, hour, minute, 0, 0, time.UTC)
}

func TestNewTriple(t *testing.T) {
	t.Run("should derive the duration from the endpoint pair", func(t *testing.T) {
		triple := NewTriple(at(10, 0), at(11, 30))

		assert.Equal(t, "01:30:00", triple.DurationDisplay())
	})

	t.Run("should clamp an inverted pair to zero duration", func(t *testing.T) {
		triple := NewTriple(at(11, 0), at(10, 0))

		assert.True(t, triple.EndTime().Equal(at(11, 0)))
		assert.Equal(t, "00:00:00", triple.DurationDisplay())
	})
}

func TestEditStartTime(t *testing.T) {
	tests := []struct {
		name             string
		newStart         time.Time
		expectedStart    time.Time
		expectedEnd      time.Time
		expectedDuration string
		expectedChanges  ChangeSet
	}{
		{
			name:             "should shrink the duration when start moves forward",
			newStart:         at(10, 30),
			expectedStart:    at(10, 30),
			expectedEnd:      at(11, 0),
			expectedDuration: "00:30:00",
			expectedChanges:  ChangeSet{FieldStartTime, FieldDuration},
		},
		{
			name:             "should grow the duration when start moves back",
			newStart:         at(9, 0),
			expectedStart:    at(9, 0),
			expectedEnd:      at(11, 0),
			expectedDuration: "02:00:00",
			expectedChanges:  ChangeSet{FieldStartTime, FieldDuration},
		},
		{
			name:             "should collapse end to start when start passes end",
			newStart:         at(12, 0),
			expectedStart:    at(12, 0),
			expectedEnd:      at(12, 0),
			expectedDuration: "00:00:00",
			expectedChanges:  ChangeSet{FieldStartTime, FieldEndTime, FieldDuration},
		},
		{
			name:             "should report no changes for an identical start",
			newStart:         at(10, 0),
			expectedStart:    at(10, 0),
			expectedEnd:      at(11, 0),
			expectedDuration: "01:00:00",
			expectedChanges:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// start=10:00, end=11:00
			triple := NewTriple(at(10, 0), at(11, 0))

			changes := triple.EditStartTime(tt.newStart)

			assert.True(t, triple.StartTime().Equal(tt.expectedStart))
			assert.True(t, triple.EndTime().Equal(tt.expectedEnd))
			assert.Equal(t, tt.expectedDuration, triple.DurationDisplay())
			assert.Equal(t, tt.expectedChanges, changes)
			assert.False(t, triple.EndTime().Before(triple.StartTime()))
		})
	}
}

func TestEditEndTime(t *testing.T) {
	tests := []struct {
		name             string
		newEnd           time.Time
		expectedStart    time.Time
		expectedEnd      time.Time
		expectedDuration string
		expectedChanges  ChangeSet
	}{
		{
			name:             "should grow the duration when end moves forward",
			newEnd:           at(12, 15),
			expectedStart:    at(10, 0),
			expectedEnd:      at(12, 15),
			expectedDuration: "02:15:00",
			expectedChanges:  ChangeSet{FieldEndTime, FieldDuration},
		},
		{
			name:             "should collapse start to end when end passes start",
			newEnd:           at(9, 0),
			expectedStart:    at(9, 0),
			expectedEnd:      at(9, 0),
			expectedDuration: "00:00:00",
			expectedChanges:  ChangeSet{FieldEndTime, FieldStartTime, FieldDuration},
		},
		{
			name:             "should report no changes for an identical end",
			newEnd:           at(11, 0),
			expectedStart:    at(10, 0),
			expectedEnd:      at(11, 0),
			expectedDuration: "01:00:00",
			expectedChanges:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triple := NewTriple(at(10, 0), at(11, 0))

			changes := triple.EditEndTime(tt.newEnd)

			assert.True(t, triple.StartTime().Equal(tt.expectedStart))
			assert.True(t, triple.EndTime().Equal(tt.expectedEnd))
			assert.Equal(t, tt.expectedDuration, triple.DurationDisplay())
			assert.Equal(t, tt.expectedChanges, changes)
			assert.False(t, triple.EndTime().Before(triple.StartTime()))
		})
	}
}

func TestEditDuration(t *testing.T) {
	tests := []struct {
		name             string
		durationString   string
		expectedEnd      time.Time
		expectedDuration string
		expectedChanges  ChangeSet
	}{
		{
			name:             "should move the end time forward from a fixed start",
			durationString:   "02:00:00",
			expectedEnd:      at(11, 0),
			expectedDuration: "02:00:00",
			expectedChanges:  ChangeSet{FieldEndTime, FieldDuration},
		},
		{
			name:             "should collapse the record on a zero duration",
			durationString:   "00:00:00",
			expectedEnd:      at(9, 0),
			expectedDuration: "00:00:00",
			expectedChanges:  ChangeSet{FieldEndTime, FieldDuration},
		},
		{
			name:             "should parse malformed input leniently",
			durationString:   "xx:30:yy",
			expectedEnd:      at(9, 30),
			expectedDuration: "00:30:00",
			expectedChanges:  ChangeSet{FieldEndTime, FieldDuration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// start=09:00, end=09:45
			triple := NewTriple(at(9, 0), at(9, 45))

			changes := triple.EditDuration(tt.durationString)

			assert.True(t, triple.StartTime().Equal(at(9, 0)), "start must be held fixed")
			assert.True(t, triple.EndTime().Equal(tt.expectedEnd))
			assert.Equal(t, tt.expectedDuration, triple.DurationDisplay())
			assert.Equal(t, tt.expectedChanges, changes)
		})
	}
}

func TestEditDuration_NoOp(t *testing.T) {
	triple := NewTriple(at(9, 0), at(10, 0))

	changes := triple.EditDuration("01:00:00")

	assert.True(t, changes.Empty())
}

func TestChangeSet(t *testing.T) {
	changes := ChangeSet{FieldStartTime, FieldDuration}

	assert.True(t, changes.Contains(FieldStartTime))
	assert.True(t, changes.Contains(FieldDuration))
	assert.False(t, changes.Contains(FieldEndTime))
	assert.False(t, changes.Empty())
	assert.True(t, ChangeSet{}.Empty())
}
