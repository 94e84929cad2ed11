package cli

import (
	"fmt"

	"time-tracker-client/internal/api"
)

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app *App
	api api.API
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{
		app: app,
		api: app.api,
	}
}

// Execute runs the whoami command
func (c *WhoamiCommand) Execute() error {
	user, ok := c.api.CurrentUser()
	if !ok {
		fmt.Fprintln(c.app.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(c.app.out, "%s <%s>\n", user.FullName(), user.Email)
	return nil
}
