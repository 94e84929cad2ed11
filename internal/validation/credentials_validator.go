package validation

// CredentialsValidator provides validation for login and registration input
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// NewCredentialsValidatorWith creates a credentials validator sharing an existing Validator
func NewCredentialsValidatorWith(validator *Validator) *CredentialsValidator {
	return &CredentialsValidator{validator: validator}
}

// ValidateLogin validates email and password for a login attempt
func (cv *CredentialsValidator) ValidateLogin(email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "name@example.com")
	}

	if password == "" {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRegistration validates a full registration form
func (cv *CredentialsValidator) ValidateRegistration(email, password, confirmPassword, firstName, lastName string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "name@example.com")
	}

	if password == "" {
		validationError.AddRequiredError("password")
	} else if !cv.validator.IsValidPasswordLength(password) {
		validationError.AddInvalidLengthError("password", nil, cv.validator.passwordMinLength(), 0)
	}

	if password != "" && password != confirmPassword {
		validationError.AddInvalidValueError("confirm_password", nil, "passwords do not match")
	}

	if !cv.validator.IsNonEmptyString(firstName) {
		validationError.AddRequiredError("first_name")
	}
	if !cv.validator.IsNonEmptyString(lastName) {
		validationError.AddRequiredError("last_name")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
