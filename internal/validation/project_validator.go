package validation

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// NewProjectValidatorWith creates a project validator sharing an existing Validator
func NewProjectValidatorWith(validator *Validator) *ProjectValidator {
	return &ProjectValidator{validator: validator}
}

// ValidateProjectName validates a project name for creation or rename
func (pv *ProjectValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	trimmedName := pv.validator.TrimAndValidateString(name)

	if !pv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("project_name")
		return validationError
	}

	if !pv.validator.IsValidProjectNameLength(trimmedName) {
		validationError.AddInvalidLengthError("project_name", trimmedName,
			pv.validator.projectNameMinLength(), pv.validator.projectNameMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project ID
func (pv *ProjectValidator) ValidateProjectID(id int64) error {
	if !pv.validator.IsValidProjectID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("project_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidProjectName returns a cleaned project name if valid
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	if err := pv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return pv.validator.TrimAndValidateString(name), nil
}
