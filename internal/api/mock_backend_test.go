package api

import (
	"context"

	"time-tracker-client/internal/client"
	"time-tracker-client/internal/errors"
)

// mockBackend is a hand-written test double for client.Backend. Each method
// delegates to an optional function field; unset methods fail the request the
// way an unreachable backend would.
type mockBackend struct {
	loginFunc            func(ctx context.Context, email, password string) (*client.Credentials, error)
	registerFunc         func(ctx context.Context, req client.RegisterRequest) (*client.User, error)
	listProjectsFunc     func(ctx context.Context) ([]*client.Project, error)
	createProjectFunc    func(ctx context.Context, name string) (*client.Project, error)
	updateProjectFunc    func(ctx context.Context, id int64, name string) (*client.Project, error)
	listTimeRecordsFunc  func(ctx context.Context) ([]*client.TimeRecord, error)
	createTimeRecordFunc func(ctx context.Context, rec client.NewTimeRecord) (*client.TimeRecord, error)
	patchTimeRecordFunc  func(ctx context.Context, id int64, patch client.RecordPatch) (*client.TimeRecord, error)
	deleteTimeRecordFunc func(ctx context.Context, id int64) error
}

func errNotWired(operation string) error {
	return errors.NewNetworkError(operation, nil)
}

func (m *mockBackend) Login(ctx context.Context, email, password string) (*client.Credentials, error) {
	if m.loginFunc == nil {
		return nil, errNotWired("login")
	}
	return m.loginFunc(ctx, email, password)
}

func (m *mockBackend) Register(ctx context.Context, req client.RegisterRequest) (*client.User, error) {
	if m.registerFunc == nil {
		return nil, errNotWired("register")
	}
	return m.registerFunc(ctx, req)
}

func (m *mockBackend) ListProjects(ctx context.Context) ([]*client.Project, error) {
	if m.listProjectsFunc == nil {
		return nil, errNotWired("list projects")
	}
	return m.listProjectsFunc(ctx)
}

func (m *mockBackend) CreateProject(ctx context.Context, name string) (*client.Project, error) {
	if m.createProjectFunc == nil {
		return nil, errNotWired("create project")
	}
	return m.createProjectFunc(ctx, name)
}

func (m *mockBackend) UpdateProject(ctx context.Context, id int64, name string) (*client.Project, error) {
	if m.updateProjectFunc == nil {
		return nil, errNotWired("update project")
	}
	return m.updateProjectFunc(ctx, id, name)
}

func (m *mockBackend) ListTimeRecords(ctx context.Context) ([]*client.TimeRecord, error) {
	if m.listTimeRecordsFunc == nil {
		return nil, errNotWired("list time records")
	}
	return m.listTimeRecordsFunc(ctx)
}

func (m *mockBackend) CreateTimeRecord(ctx context.Context, rec client.NewTimeRecord) (*client.TimeRecord, error) {
	if m.createTimeRecordFunc == nil {
		return nil, errNotWired("create time record")
	}
	return m.createTimeRecordFunc(ctx, rec)
}

func (m *mockBackend) PatchTimeRecord(ctx context.Context, id int64, patch client.RecordPatch) (*client.TimeRecord, error) {
	if m.patchTimeRecordFunc == nil {
		return nil, errNotWired("patch time record")
	}
	return m.patchTimeRecordFunc(ctx, id, patch)
}

func (m *mockBackend) DeleteTimeRecord(ctx context.Context, id int64) error {
	if m.deleteTimeRecordFunc == nil {
		return errNotWired("delete time record")
	}
	return m.deleteTimeRecordFunc(ctx, id)
}
