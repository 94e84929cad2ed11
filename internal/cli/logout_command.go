package cli

import (
	"fmt"

	"time-tracker-client/internal/api"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute() error {
	if !c.api.IsAuthenticated() {
		fmt.Fprintln(c.app.out, "Not logged in.")
		return nil
	}

	if err := c.api.Logout(); err != nil {
		return c.errorHandler.Handle("log out", err)
	}

	fmt.Fprintln(c.app.out, "Logged out.")
	return nil
}
