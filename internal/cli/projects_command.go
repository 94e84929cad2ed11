package cli

import (
	"context"
	"fmt"
	"strings"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/errors"
)

// ProjectsCommand handles the projects command and its subactions
type ProjectsCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewProjectsCommand creates a new projects command handler
func NewProjectsCommand(app *App) *ProjectsCommand {
	return &ProjectsCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the projects command
func (c *ProjectsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.listProjects(ctx)
	}

	switch args[0] {
	case "new":
		if len(args) < 2 {
			return errors.NewInvalidInputError("command", "projects new",
				"usage: ttc projects new \"project name\"")
		}
		return c.createProject(ctx, strings.Join(args[1:], " "))
	case "rename":
		if len(args) < 3 {
			return errors.NewInvalidInputError("command", "projects rename",
				"usage: ttc projects rename <id> \"new name\"")
		}
		return c.renameProject(ctx, args[1], strings.Join(args[2:], " "))
	default:
		return errors.NewInvalidInputError("action", args[0], "expected 'new' or 'rename'")
	}
}

// listProjects prints all projects with their totals
func (c *ProjectsCommand) listProjects(ctx context.Context) error {
	summaries, err := c.api.ProjectSummaries(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(c.app.out, "No projects yet. Create one with 'ttc projects new \"name\"'.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(c.app.out, "%4d  %-30s %s (%d records)\n",
			s.Project.ID, s.Project.Name, s.TotalTime, s.RecordCount)
	}
	return nil
}

// createProject creates a new project
func (c *ProjectsCommand) createProject(ctx context.Context, name string) error {
	project, err := c.api.CreateProject(ctx, name)
	if err != nil {
		return c.errorHandler.Handle("create project", err)
	}

	fmt.Fprintf(c.app.out, "Created project %d: %s\n", project.ID, project.Name)
	return nil
}

// renameProject renames an existing project
func (c *ProjectsCommand) renameProject(ctx context.Context, idArg, name string) error {
	id, err := parseID("project-id", idArg)
	if err != nil {
		return err
	}

	project, err := c.api.RenameProject(ctx, id, name)
	if err != nil {
		return c.errorHandler.Handle("rename project", err)
	}

	fmt.Fprintf(c.app.out, "Renamed project %d to: %s\n", project.ID, project.Name)
	return nil
}
