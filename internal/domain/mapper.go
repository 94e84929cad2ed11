package domain

import (
	"time"

	"time-tracker-client/internal/client"
	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/record"
)

// Timestamp layouts accepted from the backend. The primary layout is
// ISO-8601 with offset; the fallback covers timezone-naive timestamps, which
// the backend emits in practice.
const (
	wireTimeLayout      = time.RFC3339
	wireTimeLayoutNaive = "2006-01-02T15:04:05"
)

// WireFieldNames is the single bidirectional mapping table between domain
// record fields and the wire schema. Every collaborator that crosses the
// boundary uses it; no call site renames fields ad hoc. The duration field
// has no wire name because the backend derives it from the endpoints.
var WireFieldNames = map[record.Field]string{
	record.FieldStartTime: "time_started",
	record.FieldEndTime:   "time_ended",
}

// formatWireTime renders a timestamp in the wire layout.
func formatWireTime(t time.Time) string {
	return t.Format(wireTimeLayout)
}

// parseWireTime parses a wire timestamp, accepting both offset and naive
// layouts.
func parseWireTime(field, value string) (time.Time, error) {
	if t, err := time.Parse(wireTimeLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(wireTimeLayoutNaive, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(field, value, "not an ISO-8601 timestamp")
	}
	return t, nil
}

// TimeRecordMapper handles conversion between domain and wire TimeRecord models.
type TimeRecordMapper struct{}

// NewTimeRecordMapper creates a new TimeRecordMapper instance.
func NewTimeRecordMapper() *TimeRecordMapper {
	return &TimeRecordMapper{}
}

// FromWire converts a wire TimeRecord to a domain TimeRecord.
func (m *TimeRecordMapper) FromWire(wireRecord client.TimeRecord) (TimeRecord, error) {
	start, err := parseWireTime(WireFieldNames[record.FieldStartTime], wireRecord.TimeStarted)
	if err != nil {
		return TimeRecord{}, err
	}
	end, err := parseWireTime(WireFieldNames[record.FieldEndTime], wireRecord.TimeEnded)
	if err != nil {
		return TimeRecord{}, err
	}

	return TimeRecord{
		ID:          wireRecord.ID,
		ProjectID:   wireRecord.Project,
		ProjectName: wireRecord.ProjectName,
		Description: wireRecord.Description,
		StartTime:   start,
		EndTime:     end,
	}, nil
}

// FromWireSlice converts a slice of wire TimeRecords to domain TimeRecords.
func (m *TimeRecordMapper) FromWireSlice(wireRecords []*client.TimeRecord) ([]*TimeRecord, error) {
	domainRecords := make([]*TimeRecord, len(wireRecords))
	for i, wireRecord := range wireRecords {
		domainRecord, err := m.FromWire(*wireRecord)
		if err != nil {
			return nil, err
		}
		domainRecords[i] = &domainRecord
	}
	return domainRecords, nil
}

// ToWireNew converts an unsaved domain TimeRecord to the wire shape used for
// creation.
func (m *TimeRecordMapper) ToWireNew(domainRecord TimeRecord) client.NewTimeRecord {
	return client.NewTimeRecord{
		Project:     domainRecord.ProjectID,
		Description: domainRecord.Description,
		TimeStarted: formatWireTime(domainRecord.StartTime),
		TimeEnded:   formatWireTime(domainRecord.EndTime),
	}
}

// ToWirePatch builds the partial update for a reconciliation step. Only
// endpoint fields that actually changed are included, keyed by the mapping
// table; description and project changes ride along when provided. An empty
// result means nothing needs to be persisted.
func (m *TimeRecordMapper) ToWirePatch(triple *record.Triple, changes record.ChangeSet, description *string, projectID *int64) client.RecordPatch {
	patch := client.RecordPatch{}

	if changes.Contains(record.FieldStartTime) {
		patch[WireFieldNames[record.FieldStartTime]] = formatWireTime(triple.StartTime())
	}
	if changes.Contains(record.FieldEndTime) {
		patch[WireFieldNames[record.FieldEndTime]] = formatWireTime(triple.EndTime())
	}
	if description != nil {
		patch["description"] = *description
	}
	if projectID != nil {
		patch["project"] = *projectID
	}

	return patch
}

// ProjectMapper handles conversion between domain and wire Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// FromWire converts a wire Project to a domain Project. Record digest
// durations are parsed leniently; malformed values collapse to zero.
func (m *ProjectMapper) FromWire(wireProject client.Project) Project {
	records := make([]ProjectRecord, len(wireProject.Records))
	for i, r := range wireProject.Records {
		records[i] = ProjectRecord{
			ID:       r.ID,
			Duration: duration.Parse(r.Duration),
		}
	}
	return Project{
		ID:      wireProject.ID,
		Name:    wireProject.Name,
		Records: records,
	}
}

// FromWireSlice converts a slice of wire Projects to domain Projects.
func (m *ProjectMapper) FromWireSlice(wireProjects []*client.Project) []*Project {
	domainProjects := make([]*Project, len(wireProjects))
	for i, wireProject := range wireProjects {
		domainProject := m.FromWire(*wireProject)
		domainProjects[i] = &domainProject
	}
	return domainProjects
}

// UserMapper handles conversion between domain and wire User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// FromWire converts a wire User to a domain User.
func (m *UserMapper) FromWire(wireUser client.User) User {
	return User{
		ID:        wireUser.ID,
		Username:  wireUser.Username,
		Email:     wireUser.Email,
		FirstName: wireUser.FirstName,
		LastName:  wireUser.LastName,
	}
}

// ToWireRegistration converts sign-up details to the wire shape.
func (m *UserMapper) ToWireRegistration(firstName, lastName, email, password string) client.RegisterRequest {
	return client.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeRecord *TimeRecordMapper
	Project    *ProjectMapper
	User       *UserMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeRecord: NewTimeRecordMapper(),
		Project:    NewProjectMapper(),
		User:       NewUserMapper(),
	}
}
