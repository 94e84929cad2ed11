package api

import (
	"context"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/report"
)

// ListProjects returns all projects visible to the authenticated user.
func (a *apiImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	wireProjects, err := a.backend.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	return a.mapper.Project.FromWireSlice(wireProjects), nil
}

// CreateProject creates a new project with the given name.
func (a *apiImpl) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	cleanedName, err := a.projectValidator.GetValidProjectName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err)
	}

	wireProject, err := a.backend.CreateProject(ctx, cleanedName)
	if err != nil {
		return nil, err
	}

	project := a.mapper.Project.FromWire(*wireProject)
	return &project, nil
}

// RenameProject updates the name of an existing project.
func (a *apiImpl) RenameProject(ctx context.Context, id int64, name string) (*domain.Project, error) {
	if err := a.projectValidator.ValidateProjectID(id); err != nil {
		return nil, errors.NewValidationError("invalid project ID", err)
	}

	cleanedName, err := a.projectValidator.GetValidProjectName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid project name", err)
	}

	wireProject, err := a.backend.UpdateProject(ctx, id, cleanedName)
	if err != nil {
		return nil, err
	}

	project := a.mapper.Project.FromWire(*wireProject)
	return &project, nil
}

// ProjectSummaries returns per-project totals derived from the backend's
// record digests.
func (a *apiImpl) ProjectSummaries(ctx context.Context) ([]*report.ProjectSummary, error) {
	projects, err := a.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	return report.Projects(projects), nil
}
