package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-tracker-client/internal/errors"
)

func TestReportCommand(t *testing.T) {
	t.Run("should say so when there are no records", func(t *testing.T) {
		app, _, out := setupTestApp("")

		require.NoError(t, NewReportCommand(app).Execute(context.Background()))
		assert.Contains(t, out.String(), "No records yet.")
	})

	t.Run("should print newest week first with totals", func(t *testing.T) {
		app, mock, out := setupTestApp("")
		ctx := context.Background()
		_, err := mock.CreateProject(ctx, "Website Redesign")
		require.NoError(t, err)

		older := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)
		_, err = mock.CreateRecord(ctx, 1, "wireframes", older, older.Add(time.Hour))
		require.NoError(t, err)
		_, err = mock.CreateRecord(ctx, 1, "mockups", newer, newer.Add(30*time.Minute))
		require.NoError(t, err)

		require.NoError(t, NewReportCommand(app).Execute(ctx))

		output := out.String()
		assert.Contains(t, output, "total 00:30:00")
		assert.Contains(t, output, "total 01:00:00")
		assert.Less(t, strings.Index(output, "mockups"), strings.Index(output, "wireframes"),
			"newer week should be printed first")
	})

	t.Run("should surface backend failures with the retryable message", func(t *testing.T) {
		app, mock, _ := setupTestApp("")
		mock.failWith = errors.NewNetworkError("list time records", nil)

		err := NewReportCommand(app).Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "try again")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, 10, len([]rune(truncate("a string that is far too long", 10))))
}
