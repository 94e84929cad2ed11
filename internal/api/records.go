package api

import (
	"context"
	"strconv"
	"time"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/record"
	"time-tracker-client/internal/report"
)

// ListRecords returns all time records for the authenticated user.
func (a *apiImpl) ListRecords(ctx context.Context) ([]*domain.TimeRecord, error) {
	wireRecords, err := a.backend.ListTimeRecords(ctx)
	if err != nil {
		return nil, err
	}

	return a.mapper.TimeRecord.FromWireSlice(wireRecords)
}

// GetRecord returns a single time record by ID. The backend exposes
// records as a list resource, so this is a lookup over ListRecords.
func (a *apiImpl) GetRecord(ctx context.Context, id int64) (*domain.TimeRecord, error) {
	if err := a.recordValidator.ValidateRecordID(id); err != nil {
		return nil, errors.NewValidationError("invalid record ID", err)
	}

	records, err := a.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return nil, errors.NewNotFoundError("time record", strconv.FormatInt(id, 10))
}

// CreateRecord creates a new time record for the given project. The start
// and end times are reconciled before sending, so an end before start is
// stored as a zero-duration span at the start time.
func (a *apiImpl) CreateRecord(ctx context.Context, projectID int64, description string, startTime, endTime time.Time) (*domain.TimeRecord, error) {
	if err := a.recordValidator.ValidateProjectAssignment(projectID); err != nil {
		return nil, errors.NewValidationError("invalid project ID", err)
	}
	if err := a.recordValidator.ValidateRecordTimes(startTime, endTime); err != nil {
		return nil, errors.NewValidationError("invalid record times", err)
	}

	domainRecord := domain.NewTimeRecord(projectID, description, startTime, endTime)

	wireRecord, err := a.backend.CreateTimeRecord(ctx, a.mapper.TimeRecord.ToWireNew(domainRecord))
	if err != nil {
		return nil, err
	}

	created, err := a.mapper.TimeRecord.FromWire(*wireRecord)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRecord applies an edit to an existing record and PATCHes only the
// fields the edit actually changed. Time fields run through the record's
// reconciliation triple, so editing one endpoint can legitimately move the
// other. An edit that changes nothing skips the backend call entirely.
func (a *apiImpl) UpdateRecord(ctx context.Context, id int64, edit RecordEdit) (*domain.TimeRecord, error) {
	current, err := a.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	triple := current.Triple()
	changes := record.ChangeSet{}

	if edit.StartTime != nil {
		changes = mergeChanges(changes, triple.EditStartTime(*edit.StartTime))
	}
	if edit.EndTime != nil {
		changes = mergeChanges(changes, triple.EditEndTime(*edit.EndTime))
	}
	if edit.Duration != nil {
		changes = mergeChanges(changes, triple.EditDuration(*edit.Duration))
	}

	description := edit.Description
	if description != nil && *description == current.Description {
		description = nil
	}
	projectID := edit.ProjectID
	if projectID != nil {
		if err := a.recordValidator.ValidateProjectAssignment(*projectID); err != nil {
			return nil, errors.NewValidationError("invalid project ID", err)
		}
		if *projectID == current.ProjectID {
			projectID = nil
		}
	}

	patch := a.mapper.TimeRecord.ToWirePatch(&triple, changes, description, projectID)
	if len(patch) == 0 {
		return current, nil
	}

	wireRecord, err := a.backend.PatchTimeRecord(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	updated, err := a.mapper.TimeRecord.FromWire(*wireRecord)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRecord removes a time record.
func (a *apiImpl) DeleteRecord(ctx context.Context, id int64) error {
	if err := a.recordValidator.ValidateRecordID(id); err != nil {
		return errors.NewValidationError("invalid record ID", err)
	}

	return a.backend.DeleteTimeRecord(ctx, id)
}

// WeeklyReport returns all records grouped into Sunday-start week buckets,
// newest week first.
func (a *apiImpl) WeeklyReport(ctx context.Context) ([]report.WeekGroup, error) {
	records, err := a.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	return report.Weekly(records), nil
}

// mergeChanges unions two change sets, preserving first-seen order.
func mergeChanges(into, from record.ChangeSet) record.ChangeSet {
	for _, field := range from {
		if !into.Contains(field) {
			into = append(into, field)
		}
	}
	return into
}
