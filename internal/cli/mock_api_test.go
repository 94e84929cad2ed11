package cli

import (
	"bytes"
	"context"
	"strings"
	"time"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/config"
	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/report"
)

// mockAPI implements the api.API interface in memory for command tests
type mockAPI struct {
	user          *domain.User
	authenticated bool
	projects      map[int64]*domain.Project
	records       map[int64]*domain.TimeRecord
	nextProjectID int64
	nextRecordID  int64
	failWith      error // When set, every backend-touching call fails with it
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		projects:      make(map[int64]*domain.Project),
		records:       make(map[int64]*domain.TimeRecord),
		nextProjectID: 1,
		nextRecordID:  1,
	}
}

// setupTestApp wires a mock API into an App with captured output and the
// given stdin contents.
func setupTestApp(input string) (*App, *mockAPI, *bytes.Buffer) {
	mock := newMockAPI()
	out := &bytes.Buffer{}
	app := &App{
		api:    mock,
		config: config.NewConfig(),
		out:    out,
		in:     strings.NewReader(input),
	}
	return app, mock, out
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.user = &domain.User{ID: 1, Username: email, Email: email, FirstName: "Ada", LastName: "Lovelace"}
	m.authenticated = true
	return m.user, nil
}

func (m *mockAPI) Register(ctx context.Context, input api.RegistrationInput) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return &domain.User{
		ID:        2,
		Username:  input.Email,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, nil
}

func (m *mockAPI) Logout() error {
	m.user = nil
	m.authenticated = false
	return nil
}

func (m *mockAPI) CurrentUser() (*domain.User, bool) {
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

func (m *mockAPI) IsAuthenticated() bool {
	return m.authenticated
}

func (m *mockAPI) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	projects := make([]*domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (m *mockAPI) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	project := &domain.Project{ID: m.nextProjectID, Name: strings.TrimSpace(name)}
	m.projects[project.ID] = project
	m.nextProjectID++
	return project, nil
}

func (m *mockAPI) RenameProject(ctx context.Context, id int64, name string) (*domain.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	project, exists := m.projects[id]
	if !exists {
		return nil, errors.NewNotFoundError("project", "")
	}
	project.Name = strings.TrimSpace(name)
	return project, nil
}

func (m *mockAPI) ProjectSummaries(ctx context.Context) ([]*report.ProjectSummary, error) {
	projects, err := m.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return report.Projects(projects), nil
}

func (m *mockAPI) ListRecords(ctx context.Context) ([]*domain.TimeRecord, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	records := make([]*domain.TimeRecord, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}
	return records, nil
}

func (m *mockAPI) GetRecord(ctx context.Context, id int64) (*domain.TimeRecord, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	rec, exists := m.records[id]
	if !exists {
		return nil, errors.NewNotFoundError("time record", "")
	}
	return rec, nil
}

func (m *mockAPI) CreateRecord(ctx context.Context, projectID int64, description string, startTime, endTime time.Time) (*domain.TimeRecord, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	rec := domain.NewTimeRecord(projectID, description, startTime, endTime)
	rec.ID = m.nextRecordID
	if project, exists := m.projects[projectID]; exists {
		rec.ProjectName = project.Name
	}
	m.records[rec.ID] = &rec
	m.nextRecordID++
	return &rec, nil
}

func (m *mockAPI) UpdateRecord(ctx context.Context, id int64, edit api.RecordEdit) (*domain.TimeRecord, error) {
	rec, err := m.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	triple := rec.Triple()
	if edit.StartTime != nil {
		triple.EditStartTime(*edit.StartTime)
	}
	if edit.EndTime != nil {
		triple.EditEndTime(*edit.EndTime)
	}
	if edit.Duration != nil {
		triple.EditDuration(*edit.Duration)
	}

	rec.StartTime = triple.StartTime()
	rec.EndTime = triple.EndTime()
	if edit.Description != nil {
		rec.Description = *edit.Description
	}
	if edit.ProjectID != nil {
		rec.ProjectID = *edit.ProjectID
	}
	return rec, nil
}

func (m *mockAPI) DeleteRecord(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, exists := m.records[id]; !exists {
		return errors.NewNotFoundError("time record", "")
	}
	delete(m.records, id)
	return nil
}

func (m *mockAPI) WeeklyReport(ctx context.Context) ([]report.WeekGroup, error) {
	records, err := m.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return report.Weekly(records), nil
}
