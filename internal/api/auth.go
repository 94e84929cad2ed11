package api

import (
	"context"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/errors"
)

// Login authenticates against the backend and persists the returned token
// and user profile in the session store.
func (a *apiImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := a.credentialsValidator.ValidateLogin(email, password); err != nil {
		return nil, errors.NewValidationError("invalid login input", err)
	}

	credentials, err := a.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(credentials.User)
	if err := a.session.SaveCredentials(credentials.Token, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Register creates a new account. The caller is not logged in afterwards;
// registration and login are separate backend operations.
func (a *apiImpl) Register(ctx context.Context, input RegistrationInput) (*domain.User, error) {
	err := a.credentialsValidator.ValidateRegistration(
		input.Email, input.Password, input.ConfirmPassword, input.FirstName, input.LastName)
	if err != nil {
		return nil, errors.NewValidationError("invalid registration input", err)
	}

	wireUser, err := a.backend.Register(ctx, a.mapper.User.ToWireRegistration(
		input.FirstName, input.LastName, input.Email, input.Password))
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(*wireUser)
	return &user, nil
}

// Logout clears the persisted token and user profile.
func (a *apiImpl) Logout() error {
	return a.session.Clear()
}

// CurrentUser returns the locally stored user profile, if any.
func (a *apiImpl) CurrentUser() (*domain.User, bool) {
	return a.session.User()
}

// IsAuthenticated reports whether a token is stored locally. The token is
// not checked against the backend; a stale token surfaces as an auth error
// on the next request.
func (a *apiImpl) IsAuthenticated() bool {
	return a.session.Authenticated()
}
