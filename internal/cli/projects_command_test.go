package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsCommand_List(t *testing.T) {
	t.Run("should suggest creating a project when none exist", func(t *testing.T) {
		app, _, out := setupTestApp("")

		err := NewProjectsCommand(app).Execute(context.Background(), nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No projects yet")
	})

	t.Run("should list projects with totals and record counts", func(t *testing.T) {
		app, mock, out := setupTestApp("")
		ctx := context.Background()

		project, err := mock.CreateProject(ctx, "Website Redesign")
		require.NoError(t, err)

		start := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
		_, err = mock.CreateRecord(ctx, project.ID, "wireframes", start, start.Add(90*time.Minute))
		require.NoError(t, err)

		err = NewProjectsCommand(app).Execute(ctx, nil)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "Website Redesign")
	})
}

func TestProjectsCommand_New(t *testing.T) {
	app, mock, out := setupTestApp("")

	err := NewProjectsCommand(app).Execute(context.Background(), []string{"new", "Website", "Redesign"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Created project 1: Website Redesign")
	assert.Len(t, mock.projects, 1)
}

func TestProjectsCommand_Rename(t *testing.T) {
	app, mock, out := setupTestApp("")
	ctx := context.Background()

	project, err := mock.CreateProject(ctx, "Website Redesign")
	require.NoError(t, err)

	err = NewProjectsCommand(app).Execute(ctx, []string{"rename", "1", "Relaunch"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Renamed project 1 to: Relaunch")
	assert.Equal(t, "Relaunch", mock.projects[project.ID].Name)
}

func TestProjectsCommand_InvalidInput(t *testing.T) {
	app, _, _ := setupTestApp("")
	ctx := context.Background()

	assert.Error(t, NewProjectsCommand(app).Execute(ctx, []string{"frobnicate"}))
	assert.Error(t, NewProjectsCommand(app).Execute(ctx, []string{"new"}))
	assert.Error(t, NewProjectsCommand(app).Execute(ctx, []string{"rename", "abc", "Name"}))
}
