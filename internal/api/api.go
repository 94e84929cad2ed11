package api

import (
	"context"
	"time"

	"time-tracker-client/internal/client"
	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/report"
	"time-tracker-client/internal/storage"
	"time-tracker-client/internal/validation"
)

// RegistrationInput carries the fields of a registration form.
type RegistrationInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// RecordEdit carries the fields of an edit to an existing time record.
// Nil fields were not touched by the user. Each non-nil time field is
// applied through the record's reconciliation triple, so the resulting
// PATCH carries exactly the fields the edit actually changed.
type RecordEdit struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *string
	Description *string
	ProjectID   *int64
}

// API defines the interface for all time tracking client operations.
type API interface {
	// Authentication operations
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, input RegistrationInput) (*domain.User, error)
	Logout() error
	CurrentUser() (*domain.User, bool)
	IsAuthenticated() bool

	// Project operations
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	CreateProject(ctx context.Context, name string) (*domain.Project, error)
	RenameProject(ctx context.Context, id int64, name string) (*domain.Project, error)
	ProjectSummaries(ctx context.Context) ([]*report.ProjectSummary, error)

	// Time record operations
	ListRecords(ctx context.Context) ([]*domain.TimeRecord, error)
	GetRecord(ctx context.Context, id int64) (*domain.TimeRecord, error)
	CreateRecord(ctx context.Context, projectID int64, description string, startTime, endTime time.Time) (*domain.TimeRecord, error)
	UpdateRecord(ctx context.Context, id int64, edit RecordEdit) (*domain.TimeRecord, error)
	DeleteRecord(ctx context.Context, id int64) error

	// Reporting operations
	WeeklyReport(ctx context.Context) ([]report.WeekGroup, error)
}

type apiImpl struct {
	backend              client.Backend
	session              *storage.Session
	mapper               *domain.Mapper
	projectValidator     *validation.ProjectValidator
	recordValidator      *validation.RecordValidator
	credentialsValidator *validation.CredentialsValidator
}

// New creates a new API instance over the given backend and session store.
func New(backend client.Backend, session *storage.Session) API {
	validator := validation.NewValidator()
	return &apiImpl{
		backend:              backend,
		session:              session,
		mapper:               domain.NewMapper(),
		projectValidator:     validation.NewProjectValidatorWith(validator),
		recordValidator:      validation.NewRecordValidatorWith(validator),
		credentialsValidator: validation.NewCredentialsValidatorWith(validator),
	}
}

// NewWithValidator creates a new API instance with a configured validator.
func NewWithValidator(backend client.Backend, session *storage.Session, validator *validation.Validator) API {
	return &apiImpl{
		backend:              backend,
		session:              session,
		mapper:               domain.NewMapper(),
		projectValidator:     validation.NewProjectValidatorWith(validator),
		recordValidator:      validation.NewRecordValidatorWith(validator),
		credentialsValidator: validation.NewCredentialsValidatorWith(validator),
	}
}
