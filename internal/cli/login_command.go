package cli

import (
	"context"
	"fmt"

	"time-tracker-client/internal/api"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	email := args[0]

	var password string
	if len(args) > 1 {
		password = args[1]
	} else {
		var err error
		password, err = c.app.prompt("Password: ")
		if err != nil {
			return err
		}
	}

	user, err := c.api.Login(ctx, email, password)
	if err != nil {
		return c.errorHandler.Handle("log in", err)
	}

	fmt.Fprintf(c.app.out, "Logged in as %s\n", user.FullName())
	return nil
}
