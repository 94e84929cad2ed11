package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"time-tracker-client/internal/api"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the register command, prompting for each field
func (c *RegisterCommand) Execute(ctx context.Context) error {
	// One shared reader so buffered input is not lost between prompts.
	reader := bufio.NewReader(c.app.in)
	readField := func(label string) (string, error) {
		fmt.Fprint(c.app.out, label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	input := api.RegistrationInput{}
	var err error

	if input.FirstName, err = readField("First name: "); err != nil {
		return err
	}
	if input.LastName, err = readField("Last name: "); err != nil {
		return err
	}
	if input.Email, err = readField("Email: "); err != nil {
		return err
	}
	if input.Password, err = readField("Password: "); err != nil {
		return err
	}
	if input.ConfirmPassword, err = readField("Confirm password: "); err != nil {
		return err
	}

	user, err := c.api.Register(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("register", err)
	}

	fmt.Fprintf(c.app.out, "Account created for %s. Run 'ttc login %s' to log in.\n",
		user.FullName(), user.Email)
	return nil
}
