package validation

import (
	"regexp"
	"strings"
	"time"

	"time-tracker-client/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
	config     *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		emailRegex: regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
		config:     nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		emailRegex: regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
		config:     cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidProjectNameLength checks if a project name length is within configured limits
func (v *Validator) IsValidProjectNameLength(name string) bool {
	return v.IsValidStringLength(name, v.projectNameMinLength(), v.projectNameMaxLength())
}

// IsValidEmail checks if a string looks like an email address
func (v *Validator) IsValidEmail(email string) bool {
	return v.emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidPasswordLength checks if a password meets the configured minimum length
func (v *Validator) IsValidPasswordLength(password string) bool {
	return len(password) >= v.passwordMinLength()
}

// IsValidTimeRange checks if start time is not after end time
func (v *Validator) IsValidTimeRange(startTime, endTime time.Time) bool {
	return !startTime.After(endTime)
}

// IsValidRecordID checks if a time record ID is valid (positive)
func (v *Validator) IsValidRecordID(id int64) bool {
	return id > 0
}

// IsValidProjectID checks if a project ID is valid (positive)
func (v *Validator) IsValidProjectID(id int64) bool {
	return id > 0
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// projectNameMinLength returns the configured minimum project name length or default
func (v *Validator) projectNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.ProjectNameMinLength
	}
	return 1
}

// projectNameMaxLength returns the configured maximum project name length or default
func (v *Validator) projectNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.ProjectNameMaxLength
	}
	return 255
}

// passwordMinLength returns the configured minimum password length or default
func (v *Validator) passwordMinLength() int {
	if v.config != nil {
		return v.config.Validation.PasswordMinLength
	}
	return 8
}
