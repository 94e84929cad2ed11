package domain

import "fmt"

// User represents the authenticated user's profile.
// This is a pure domain model without wire-format concerns.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Email != ""
}
