package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/duration"
)

func parse(s string) duration.Duration {
	return duration.Parse(s)
}

func recordAt(t *testing.T, start time.Time, d time.Duration) *domain.TimeRecord {
	t.Helper()
	return &domain.TimeRecord{
		ID:        1,
		ProjectID: 1,
		StartTime: start,
		EndTime:   start.Add(d),
	}
}

func TestWeekly(t *testing.T) {
	// Jan 7 2024 is a Sunday; Jan 8 and Jan 12 share its week, Jan 17 does not.
	monday := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)
	friday := time.Date(2024, time.January, 12, 14, 0, 0, 0, time.UTC)
	nextWeek := time.Date(2024, time.January, 17, 10, 0, 0, 0, time.UTC)

	t.Run("should merge same-week records into one bucket", func(t *testing.T) {
		groups := Weekly([]*domain.TimeRecord{
			recordAt(t, monday, 45*time.Minute),
			recordAt(t, friday, 30*time.Minute),
		})

		require.Len(t, groups, 1)
		assert.Equal(t, "2024-01-07", groups[0].Bucket.Key())
		assert.Equal(t, "01:15:00", groups[0].TotalDisplay())
		assert.Len(t, groups[0].Records, 2)
	})

	t.Run("should order buckets most recent week first", func(t *testing.T) {
		groups := Weekly([]*domain.TimeRecord{
			recordAt(t, monday, time.Hour),
			recordAt(t, nextWeek, time.Hour),
		})

		require.Len(t, groups, 2)
		assert.Equal(t, "2024-01-14", groups[0].Bucket.Key())
		assert.Equal(t, "2024-01-07", groups[1].Bucket.Key())
	})

	t.Run("should order records newest start time first within a bucket", func(t *testing.T) {
		groups := Weekly([]*domain.TimeRecord{
			recordAt(t, monday, time.Hour),
			recordAt(t, friday, time.Hour),
		})

		require.Len(t, groups, 1)
		assert.True(t, groups[0].Records[0].StartTime.Equal(friday))
		assert.True(t, groups[0].Records[1].StartTime.Equal(monday))
	})

	t.Run("should yield no buckets for no records", func(t *testing.T) {
		assert.Empty(t, Weekly(nil))
	})
}

func TestWeekTotal(t *testing.T) {
	monday := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []*domain.TimeRecord
		expected string
	}{
		{
			name:     "should return the zero display for no records",
			records:  nil,
			expected: "00:00:00",
		},
		{
			name: "should sum durations with carry propagation",
			records: []*domain.TimeRecord{
				recordAt(t, monday, 45*time.Second),
				recordAt(t, monday.Add(time.Hour), 30*time.Second),
			},
			expected: "00:01:15",
		},
		{
			name: "should sum past the hour boundary",
			records: []*domain.TimeRecord{
				recordAt(t, monday, 45*time.Minute),
				recordAt(t, monday.Add(2*time.Hour), 30*time.Minute),
			},
			expected: "01:15:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekTotal(tt.records))
		})
	}
}

func TestProjects(t *testing.T) {
	t.Run("should summarize durations and counts per project", func(t *testing.T) {
		projects := []*domain.Project{
			{
				ID:   1,
				Name: "Internal tooling",
				Records: []domain.ProjectRecord{
					{Duration: parse("00:45:00")},
					{Duration: parse("01:30:30")},
				},
			},
			{ID: 2, Name: "Side quests"},
		}

		summaries := Projects(projects)

		require.Len(t, summaries, 2)
		assert.Equal(t, "02h 15m 30s", summaries[0].TotalTime)
		assert.Equal(t, 2, summaries[0].RecordCount)
		assert.Equal(t, "00h 00m 00s", summaries[1].TotalTime)
		assert.Equal(t, 0, summaries[1].RecordCount)
	})
}
