package validation

import (
	"time"
)

// RecordValidator provides validation for time-record operations
type RecordValidator struct {
	validator *Validator
}

// NewRecordValidator creates a new time-record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		validator: NewValidator(),
	}
}

// NewRecordValidatorWith creates a record validator sharing an existing Validator
func NewRecordValidatorWith(validator *Validator) *RecordValidator {
	return &RecordValidator{validator: validator}
}

// ValidateRecordID validates a time record ID
func (rv *RecordValidator) ValidateRecordID(id int64) error {
	if !rv.validator.IsValidRecordID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("record_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateProjectAssignment validates the project a record is tracked against
func (rv *RecordValidator) ValidateProjectAssignment(projectID int64) error {
	if !rv.validator.IsValidProjectID(projectID) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("project_id", projectID, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateRecordTimes validates user-supplied start and end times for a record.
// Start after end is not rejected here; the edit flow clamps the pair instead.
func (rv *RecordValidator) ValidateRecordTimes(startTime, endTime time.Time) error {
	validationError := NewValidationError()

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !rv.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidRangeError("start_time", startTime,
			"must be within the last 10 years and no more than 1 year ahead")
	}

	if endTime.IsZero() {
		validationError.AddRequiredError("end_time")
	} else if !rv.validator.IsReasonableDate(endTime) {
		validationError.AddInvalidRangeError("end_time", endTime,
			"must be within the last 10 years and no more than 1 year ahead")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
